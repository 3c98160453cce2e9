// Package game parses game command flags and plays an adventure end to end.
package game

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	entrypoint "github.com/louisbranch/tilequest/internal/platform/cmd"
	apperrors "github.com/louisbranch/tilequest/internal/platform/errors"
	"github.com/louisbranch/tilequest/internal/services/game/content"
	"github.com/louisbranch/tilequest/internal/services/game/display"
	"github.com/louisbranch/tilequest/internal/services/game/domain/effect"
	"github.com/louisbranch/tilequest/internal/services/game/domain/entity"
	"github.com/louisbranch/tilequest/internal/services/game/session"
	"github.com/louisbranch/tilequest/internal/services/game/storage/sqlite"
)

// Config holds game command configuration.
type Config struct {
	Content     string `env:"CONTENT_FILE"`
	Effect      string `env:"EFFECT"`
	JournalPath string `env:"JOURNAL_PATH"`
	Locale      string `env:"LOCALE"       envDefault:"en-US"`
	BoardWidth  int    `env:"BOARD_WIDTH"  envDefault:"12"`
	BoardHeight int    `env:"BOARD_HEIGHT" envDefault:"7"`
	Verbose     bool   `env:"VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Content, "content", cfg.Content, "path to an adventure lua file (empty uses the built-in one)")
	fs.StringVar(&cfg.Effect, "effect", cfg.Effect, "effect wrapped around the hero: berserk, blessing or weakness")
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "sqlite path for the notification journal")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale used for the summary")
	fs.IntVar(&cfg.BoardWidth, "width", cfg.BoardWidth, "board width in tiles")
	fs.IntVar(&cfg.BoardHeight, "height", cfg.BoardHeight, "board height in tiles")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every notification")
}

// Run plays the configured adventure with telemetry enabled.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(ctx context.Context) error {
		_, err := Play(ctx, cfg, out)
		return err
	})
}

// Describe formats a play failure with its status code and domain reason,
// e.g. "InvalidArgument [EFFECT_UNKNOWN]: effect is not supported".
func Describe(err error, locale string) string {
	st := apperrors.StatusOf(err, locale)
	return fmt.Sprintf("%s [%s]: %v", st.Code(), apperrors.ReasonOf(st), err)
}

// Summary is the end state of a play-through.
type Summary struct {
	SessionID string
	Adventure string
	Visited   int
	Score     int
	Level     int
	Gold      int
	HP        int
	GameOver  bool
}

// Play walks the hero onto every object of the adventure in declaration
// order, printing each outcome and the board, until the objects run out or
// the game ends.
func Play(ctx context.Context, cfg Config, out io.Writer) (Summary, error) {
	if out == nil {
		out = io.Discard
	}
	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.Default()
	}

	adventure, err := loadAdventure(cfg, logger)
	if err != nil {
		return Summary{}, err
	}
	hero := adventure.NewHero()
	player, err := wrapHero(cfg.Effect, hero)
	if err != nil {
		return Summary{}, err
	}

	var journal session.Journal
	if strings.TrimSpace(cfg.JournalPath) != "" {
		store, err := sqlite.Open(ctx, cfg.JournalPath)
		if err != nil {
			return Summary{}, fmt.Errorf("open journal: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close journal: %v", err)
			}
		}()
		journal = store
	}

	sess := session.New(session.Options{Logger: logger, Journal: journal})
	board := display.NewBoard(cfg.BoardWidth, cfg.BoardHeight)
	remaining := adventure.Objects()

	fmt.Fprintf(out, "%s\n", adventure.Name)
	drawFrame(out, board, player, remaining)

	visited := 0
	for _, placement := range adventure.Placements {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		if !sess.Running() {
			break
		}
		player.SetPosition(placement.Object.Position())
		outcome, err := sess.Visit(ctx, placement.Object, player)
		if err != nil {
			return Summary{}, fmt.Errorf("visit %s: %w", placement.Name, err)
		}
		visited++
		remaining = remaining[1:]
		fmt.Fprintf(out, "%s: %s\n", placement.Name, strings.Join(outcome.Messages, ", "))
		drawFrame(out, board, player, remaining)
		if err := sess.Flush(ctx); err != nil {
			return Summary{}, err
		}
	}

	summary := Summary{
		SessionID: sess.ID(),
		Adventure: adventure.Name,
		Visited:   visited,
		Score:     sess.Score(),
		Level:     hero.Level(),
		Gold:      hero.Gold(),
		HP:        hero.HP(),
		GameOver:  !sess.Running(),
	}
	printSummary(out, cfg.Locale, summary)
	return summary, nil
}

func loadAdventure(cfg Config, logger *log.Logger) (*content.Adventure, error) {
	opts := content.Options{Logger: logger}
	if strings.TrimSpace(cfg.Content) == "" {
		return content.Default(opts)
	}
	return content.LoadFile(cfg.Content, opts)
}

func wrapHero(name string, hero *entity.Hero) (entity.Character, error) {
	if strings.TrimSpace(name) == "" {
		return hero, nil
	}
	kind, err := effect.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return effect.NewKind(kind, hero)
}

func drawFrame(out io.Writer, board *display.Board, player entity.Drawable, objects []entity.Object) {
	board.Reset()
	for _, obj := range objects {
		obj.Draw(board)
	}
	player.Draw(board)
	fmt.Fprintln(out, board.Render())
}

func printSummary(out io.Writer, locale string, s Summary) {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	if s.GameOver {
		p.Fprintf(out, "%s ended after %d encounters\n", s.Adventure, s.Visited)
	} else {
		p.Fprintf(out, "%s cleared: %d encounters\n", s.Adventure, s.Visited)
	}
	p.Fprintf(out, "score %d, level %d, gold %d, hp %d\n", s.Score, s.Level, s.Gold, s.HP)
}
