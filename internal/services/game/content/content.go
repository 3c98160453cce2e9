// Package content loads adventures written as Lua scripts.
//
// A script returns a table describing the hero and the objects placed on
// the map:
//
//	return {
//	  name = "...",
//	  hero = { sprite = "@", strength = 3, endurance = 4, luck = 2, intelligence = 2 },
//	  objects = {
//	    { kind = "enemy", name = "rat", sprite = "r", x = 3, y = 1, xp = 20, endurance = 1 },
//	    { kind = "ally", name = "merchant", sprite = "m", x = 5, y = 1,
//	      action = function(engine, hero) hero.add_gold(15) end },
//	  },
//	}
//
// Ally actions run inside the script's Lua state with an engine table
// (notify, score, add_score) and a hero table (gold, add_gold, hp, set_hp,
// max_hp, exp, add_exp, level, stat).
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "github.com/louisbranch/tilequest/internal/platform/errors"
	"github.com/louisbranch/tilequest/internal/services/game/domain/entity"
	"github.com/louisbranch/tilequest/internal/services/game/domain/stats"
)

//go:embed default.lua
var defaultScript string

// actionKeyPrefix prefixes the registry keys that hold ally action functions.
const actionKeyPrefix = "tilequest.action."

// Object kinds accepted in scripts.
const (
	KindEnemy = "enemy"
	KindAlly  = "ally"
)

// Placement is a named object on the map.
type Placement struct {
	Name   string
	Kind   string
	Object entity.Object
}

// Adventure is a loaded content script.
type Adventure struct {
	Name       string
	HeroSprite entity.Sprite
	HeroStats  stats.Block
	Placements []Placement

	state  *lua.State
	logger *log.Logger
}

// Options configures loading.
type Options struct {
	// Logger receives ally action failures. Nil discards them.
	Logger *log.Logger
}

// Default loads the embedded adventure.
func Default(opts Options) (*Adventure, error) {
	return Load("default.lua", defaultScript, opts)
}

// Load runs source and builds the adventure it returns.
func Load(name, source string, opts Options) (*Adventure, error) {
	state := newState()
	if err := lua.LoadBuffer(state, source, name, "t"); err != nil {
		return nil, invalid(name, "load lua", err)
	}
	return build(state, name, opts)
}

// LoadFile runs the script at path and builds the adventure it returns.
func LoadFile(path string, opts Options) (*Adventure, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("content %s not found", path), err)
	}
	state := newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, invalid(path, "load lua", err)
	}
	return build(state, path, opts)
}

// NewHero creates a fresh hero from the adventure's hero definition.
func (a *Adventure) NewHero() *entity.Hero {
	return entity.NewHero(a.HeroStats, a.HeroSprite)
}

// Objects returns the placed objects in declaration order.
func (a *Adventure) Objects() []entity.Object {
	objects := make([]entity.Object, len(a.Placements))
	for i, p := range a.Placements {
		objects[i] = p.Object
	}
	return objects
}

func newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)
	return state
}

func invalid(source, message string, cause error) error {
	return apperrors.Wrap(apperrors.CodeContentInvalid, fmt.Sprintf("%s %s", message, source), cause)
}

func build(state *lua.State, source string, opts Options) (*Adventure, error) {
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, invalid(source, "run lua", err)
	}
	if state.TypeOf(-1) != lua.TypeTable {
		state.Pop(1)
		return nil, invalid(source, "read content", fmt.Errorf("script must return a table"))
	}
	defer state.Pop(1)
	root := state.AbsIndex(-1)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	adventure := &Adventure{state: state, logger: logger}

	adventure.Name = titleCase(fieldString(state, root, "name"))
	if adventure.Name == "" {
		adventure.Name = titleCase(strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)))
	}

	state.Field(root, "hero")
	if state.TypeOf(-1) != lua.TypeTable {
		state.Pop(1)
		return nil, invalid(source, "read content", fmt.Errorf("hero table is required"))
	}
	hero := state.AbsIndex(-1)
	adventure.HeroSprite = entity.Sprite(fieldString(state, hero, "sprite"))
	if adventure.HeroSprite == "" {
		adventure.HeroSprite = "@"
	}
	adventure.HeroStats = readStats(state, hero)
	state.Pop(1)

	state.Field(root, "objects")
	defer state.Pop(1)
	if state.IsNil(-1) {
		return adventure, nil
	}
	if state.TypeOf(-1) != lua.TypeTable {
		return nil, invalid(source, "read content", fmt.Errorf("objects must be a list"))
	}
	objects := state.AbsIndex(-1)
	for i := 1; ; i++ {
		state.RawGetInt(objects, i)
		if state.IsNil(-1) {
			state.Pop(1)
			break
		}
		placement, err := adventure.readPlacement(state, i)
		state.Pop(1)
		if err != nil {
			return nil, invalid(source, fmt.Sprintf("read object %d in", i), err)
		}
		adventure.Placements = append(adventure.Placements, placement)
	}
	return adventure, nil
}

// readPlacement reads the object table on top of the stack.
func (a *Adventure) readPlacement(state *lua.State, index int) (Placement, error) {
	if state.TypeOf(-1) != lua.TypeTable {
		return Placement{}, fmt.Errorf("object must be a table")
	}
	obj := state.AbsIndex(-1)
	name := titleCase(fieldString(state, obj, "name"))
	if name == "" {
		return Placement{}, apperrors.New(apperrors.CodeContentEmptyName, "object name is required")
	}
	sprite := entity.Sprite(fieldString(state, obj, "sprite"))
	pos := entity.Position{X: fieldInt(state, obj, "x", 0), Y: fieldInt(state, obj, "y", 0)}

	kind := strings.ToLower(fieldString(state, obj, "kind"))
	switch kind {
	case KindEnemy:
		xp := fieldInt(state, obj, "xp", 0)
		enemy := entity.NewEnemy(sprite, readStats(state, obj), xp, pos)
		return Placement{Name: name, Kind: kind, Object: enemy}, nil
	case KindAlly:
		state.Field(obj, "action")
		hasAction := !state.IsNil(-1)
		isFunction := state.IsFunction(-1)
		state.Pop(1)
		if hasAction && !isFunction {
			return Placement{}, fmt.Errorf("ally %q action must be a function", name)
		}
		var action entity.Action
		if hasAction {
			key := fmt.Sprintf("%s%d", actionKeyPrefix, index)
			state.Field(obj, "action")
			state.SetField(lua.RegistryIndex, key)
			action = a.luaAction(name, key)
		}
		return Placement{Name: name, Kind: kind, Object: entity.NewAlly(sprite, action, pos)}, nil
	default:
		return Placement{}, fmt.Errorf("object %q has unsupported kind %q", name, kind)
	}
}

func readStats(state *lua.State, index int) stats.Block {
	block := stats.Block{}
	for _, name := range stats.Attributes {
		block.Set(name, fieldInt(state, index, string(name), 0))
	}
	return block
}

func fieldString(state *lua.State, index int, name string) string {
	state.Field(index, name)
	defer state.Pop(1)
	if state.TypeOf(-1) != lua.TypeString {
		return ""
	}
	value, _ := state.ToString(-1)
	return strings.TrimSpace(value)
}

func fieldInt(state *lua.State, index int, name string, fallback int) int {
	state.Field(index, name)
	defer state.Pop(1)
	value, ok := state.ToInteger(-1)
	if !ok {
		return fallback
	}
	return value
}

func titleCase(value string) string {
	return cases.Title(language.English).String(strings.TrimSpace(value))
}
