// Package effect wraps a hero in a temporary stat modifier.
//
// An Effect owns a modified copy of the hero's stats and forwards every
// other piece of hero state to the wrapped hero, so moves, damage and gold
// made through the effect land on the hero itself. Only one effect is
// active at a time: wrapping an effect replaces it.
package effect

import (
	"iter"

	apperrors "github.com/louisbranch/tilequest/internal/platform/errors"
	"github.com/louisbranch/tilequest/internal/services/game/domain/entity"
	"github.com/louisbranch/tilequest/internal/services/game/domain/stats"
)

var (
	// ErrMissingBase indicates an effect was built without a hero.
	ErrMissingBase = apperrors.New(apperrors.CodeEffectMissingBase, "effect requires a base hero")
	// ErrMissingModifier indicates an effect was built without a modifier.
	ErrMissingModifier = apperrors.New(apperrors.CodeEffectMissingModifier, "effect requires a modifier")
	// ErrUnknownEffect indicates an unsupported effect name.
	ErrUnknownEffect = apperrors.New(apperrors.CodeEffectUnknown, "effect is not supported")
)

// Effect is a hero view with modified stats.
type Effect struct {
	base     *entity.Hero
	modifier Modifier
	stats    stats.Block
}

// New wraps base with modifier. When base is itself an effect the new
// effect applies to the underlying hero instead of stacking.
func New(modifier Modifier, base entity.Character) (*Effect, error) {
	if modifier == nil {
		return nil, ErrMissingModifier
	}
	hero, err := rootHero(base)
	if err != nil {
		return nil, err
	}
	block := hero.Stats().Copy()
	modifier.Apply(block)
	return &Effect{base: hero, modifier: modifier, stats: block}, nil
}

// NewKind wraps base with the modifier registered for kind.
func NewKind(kind Kind, base entity.Character) (*Effect, error) {
	modifier, err := ModifierFor(kind)
	if err != nil {
		return nil, err
	}
	return New(modifier, base)
}

// NewBerserk wraps base in Berserk.
func NewBerserk(base entity.Character) (*Effect, error) { return New(Berserk{}, base) }

// NewBlessing wraps base in Blessing.
func NewBlessing(base entity.Character) (*Effect, error) { return New(Blessing{}, base) }

// NewWeakness wraps base in Weakness.
func NewWeakness(base entity.Character) (*Effect, error) { return New(Weakness{}, base) }

func rootHero(base entity.Character) (*entity.Hero, error) {
	switch b := base.(type) {
	case *entity.Hero:
		if b != nil {
			return b, nil
		}
	case *Effect:
		if b != nil && b.base != nil {
			return b.base, nil
		}
	}
	return nil, ErrMissingBase
}

// Base returns the wrapped hero.
func (e *Effect) Base() *entity.Hero { return e.base }

// Kind returns the active modifier kind.
func (e *Effect) Kind() Kind { return e.modifier.Kind() }

// Stats returns the effect's modified stat block.
func (e *Effect) Stats() stats.Block { return e.stats }

// Draw draws the wrapped hero.
func (e *Effect) Draw(display entity.Display) { e.base.Draw(display) }

// Sprite returns the hero's sprite.
func (e *Effect) Sprite() entity.Sprite { return e.base.Sprite() }

// Position returns the hero's tile.
func (e *Effect) Position() entity.Position { return e.base.Position() }

// SetPosition moves the hero.
func (e *Effect) SetPosition(pos entity.Position) { e.base.SetPosition(pos) }

// Level returns the hero's level.
func (e *Effect) Level() int { return e.base.Level() }

// SetLevel assigns the hero's level.
func (e *Effect) SetLevel(level int) { e.base.SetLevel(level) }

// Exp returns the hero's experience.
func (e *Effect) Exp() int { return e.base.Exp() }

// SetExp assigns the hero's experience.
func (e *Effect) SetExp(exp int) { e.base.SetExp(exp) }

// Gold returns the hero's gold.
func (e *Effect) Gold() int { return e.base.Gold() }

// SetGold assigns the hero's gold.
func (e *Effect) SetGold(gold int) { e.base.SetGold(gold) }

// HP returns the hero's hit points.
func (e *Effect) HP() int { return e.base.HP() }

// SetHP assigns the hero's hit points.
func (e *Effect) SetHP(hp int) { e.base.SetHP(hp) }

// MaxHP returns the hero's hit point capacity.
func (e *Effect) MaxHP() int { return e.base.MaxHP() }

// SetMaxHP assigns the hero's hit point capacity.
func (e *Effect) SetMaxHP(maxHP int) { e.base.SetMaxHP(maxHP) }

// LevelUp raises the hero's level but applies the stat gains to the
// effect's stats only. Max HP and HP are recomputed from the effect's
// endurance and written to the hero; the hero's own stats stay unchanged.
func (e *Effect) LevelUp() iter.Seq[string] {
	return func(yield func(string) bool) {
		for e.base.CanLevel() {
			if !yield(entity.MessageLevelUp) {
				return
			}
			e.base.SetLevel(e.base.Level() + 1)
			for name, delta := range entity.LevelGains() {
				e.stats.Add(name, delta)
			}
			maxHP := entity.MaxHPFor(e.stats)
			e.base.SetMaxHP(maxHP)
			e.base.SetHP(maxHP)
		}
	}
}

var _ entity.Character = (*Effect)(nil)
