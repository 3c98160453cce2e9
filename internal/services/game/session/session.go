// Package session runs one play-through: it implements the engine surface
// interactions mutate, records notifications and traces every visit.
package session

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/tilequest/internal/platform/errors"
	"github.com/louisbranch/tilequest/internal/services/game/domain/effect"
	"github.com/louisbranch/tilequest/internal/services/game/domain/entity"
)

const tracerName = "github.com/louisbranch/tilequest/internal/services/game/session"

var (
	// ErrGameOver indicates a visit was attempted after the game ended.
	ErrGameOver = apperrors.New(apperrors.CodeSessionGameOver, "game is over")
	// ErrMissingHero indicates a visit without a hero.
	ErrMissingHero = apperrors.New(apperrors.CodeSessionMissingHero, "hero is required")
	// ErrMissingObject indicates a visit without an object to interact with.
	ErrMissingObject = apperrors.New(apperrors.CodeSessionMissingObject, "interactive object is required")
)

// Notification is one message shown to the player.
type Notification struct {
	Seq       int
	Message   string
	CreatedAt time.Time
}

// Journal stores notifications outside the process.
type Journal interface {
	AppendNotifications(ctx context.Context, sessionID string, notifications []Notification) error
}

// Options configures a session. Zero values are usable.
type Options struct {
	ID      string
	Logger  *log.Logger
	Journal Journal
	Tracer  trace.Tracer
	Now     func() time.Time
}

// Session is the game engine state for one run. It is not safe for
// concurrent use.
type Session struct {
	id            string
	score         int
	running       bool
	notifications []Notification
	flushed       int

	logger  *log.Logger
	journal Journal
	tracer  trace.Tracer
	now     func() time.Time
}

// New creates a running session with a zero score.
func New(opts Options) *Session {
	s := &Session{
		id:      opts.ID,
		running: true,
		logger:  opts.Logger,
		journal: opts.Journal,
		tracer:  opts.Tracer,
		now:     opts.Now,
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Notify records a message for the player.
func (s *Session) Notify(message string) {
	s.notifications = append(s.notifications, Notification{
		Seq:       len(s.notifications) + 1,
		Message:   message,
		CreatedAt: s.now().UTC(),
	})
	s.logger.Printf("session %s: %s", s.id, message)
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// SetScore assigns the score.
func (s *Session) SetScore(score int) { s.score = score }

// Running reports whether the game continues.
func (s *Session) Running() bool { return s.running }

// SetRunning sets the game-continue flag.
func (s *Session) SetRunning(running bool) { s.running = running }

// Messages returns every notification text emitted so far, in order.
func (s *Session) Messages() []string {
	messages := make([]string, len(s.notifications))
	for i, n := range s.notifications {
		messages[i] = n.Message
	}
	return messages
}

// Outcome summarizes a single visit.
type Outcome struct {
	Messages   []string
	ScoreDelta int
	GameOver   bool
}

// Visit resolves the hero reaching obj.
func (s *Session) Visit(ctx context.Context, obj entity.Interactive, hero entity.Character) (Outcome, error) {
	if !s.running {
		return Outcome{}, ErrGameOver
	}
	if missingHero(hero) {
		return Outcome{}, ErrMissingHero
	}
	if missingObject(obj) {
		return Outcome{}, ErrMissingObject
	}

	_, span := s.tracer.Start(ctx, "game.interact", trace.WithAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("hero.hp", hero.HP()),
		attribute.Int("hero.level", hero.Level()),
	))
	defer span.End()

	start := len(s.notifications)
	scoreBefore := s.score
	obj.Interact(s, hero)

	outcome := Outcome{
		Messages:   s.Messages()[start:],
		ScoreDelta: s.score - scoreBefore,
		GameOver:   !s.running,
	}
	span.SetAttributes(
		attribute.Int("score.delta", outcome.ScoreDelta),
		attribute.Int("notifications", len(outcome.Messages)),
		attribute.Bool("game_over", outcome.GameOver),
	)
	if outcome.GameOver {
		span.SetStatus(codes.Error, "game over")
		s.logger.Printf("session %s: game over at score %d", s.id, s.score)
	}
	return outcome, nil
}

// missingHero also catches nil pointers stored in the interface.
func missingHero(hero entity.Character) bool {
	switch h := hero.(type) {
	case nil:
		return true
	case *entity.Hero:
		return h == nil
	case *effect.Effect:
		return h == nil || h.Base() == nil
	}
	return false
}

func missingObject(obj entity.Interactive) bool {
	switch o := obj.(type) {
	case nil:
		return true
	case *entity.Enemy:
		return o == nil
	case *entity.Ally:
		return o == nil
	}
	return false
}

// Pending returns notifications not yet written to the journal.
func (s *Session) Pending() []Notification {
	return append([]Notification(nil), s.notifications[s.flushed:]...)
}

// Flush appends pending notifications to the journal. Without a journal the
// pending notifications are simply marked as flushed.
func (s *Session) Flush(ctx context.Context) error {
	pending := s.notifications[s.flushed:]
	if len(pending) == 0 {
		return nil
	}
	if s.journal != nil {
		if err := s.journal.AppendNotifications(ctx, s.id, pending); err != nil {
			return fmt.Errorf("flush notifications: %w", err)
		}
	}
	s.flushed = len(s.notifications)
	return nil
}

var _ entity.Engine = (*Session)(nil)
