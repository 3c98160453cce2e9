package entity

import (
	"slices"
	"testing"

	"github.com/louisbranch/tilequest/internal/services/game/domain/stats"
)

func TestNewHeroDefaults(t *testing.T) {
	h := NewHero(stats.New(3, 4, 1, 2), "hero")
	if h.Level() != 1 || h.Exp() != 0 || h.Gold() != 0 {
		t.Fatalf("level/exp/gold = %d/%d/%d, want 1/0/0", h.Level(), h.Exp(), h.Gold())
	}
	if h.Position() != (Position{X: 1, Y: 1}) {
		t.Fatalf("position = %+v, want (1,1)", h.Position())
	}
	if h.MaxHP() != 13 || h.HP() != 13 {
		t.Fatalf("hp/max = %d/%d, want 13/13", h.HP(), h.MaxHP())
	}
}

func TestLevelUpCrossesMultipleThresholds(t *testing.T) {
	h := NewHero(stats.New(3, 4, 1, 2), "hero")
	h.SetExp(250)
	h.SetHP(1)

	messages := slices.Collect(h.LevelUp())

	if !equalMessages(messages, []string{MessageLevelUp, MessageLevelUp}) {
		t.Fatalf("messages = %v", messages)
	}
	if h.Level() != 3 {
		t.Fatalf("level = %d, want 3", h.Level())
	}
	if h.Stats().Get(stats.Strength) != 7 {
		t.Fatalf("strength = %d, want 7", h.Stats().Get(stats.Strength))
	}
	if h.Stats().Get(stats.Endurance) != 8 {
		t.Fatalf("endurance = %d, want 8", h.Stats().Get(stats.Endurance))
	}
	if h.MaxHP() != 21 || h.HP() != 21 {
		t.Fatalf("hp/max = %d/%d, want 21/21", h.HP(), h.MaxHP())
	}
}

func TestLevelUpBelowThreshold(t *testing.T) {
	h := NewHero(stats.New(0, 0, 0, 0), "hero")
	h.SetExp(99)
	if messages := slices.Collect(h.LevelUp()); len(messages) != 0 {
		t.Fatalf("messages = %v, want none", messages)
	}
	if h.Level() != 1 {
		t.Fatalf("level = %d, want 1", h.Level())
	}
}

func TestLevelUpExactThreshold(t *testing.T) {
	h := NewHero(stats.New(0, 0, 0, 0), "hero")
	h.SetExp(100)
	if messages := slices.Collect(h.LevelUp()); len(messages) != 1 {
		t.Fatalf("messages = %v, want one", messages)
	}
	if h.Level() != 2 {
		t.Fatalf("level = %d, want 2", h.Level())
	}
}

func TestLevelUpMutatesBetweenNotifications(t *testing.T) {
	h := NewHero(stats.New(0, 0, 0, 0), "hero")
	h.SetExp(700)

	var levelsSeen []int
	for range h.LevelUp() {
		levelsSeen = append(levelsSeen, h.Level())
	}
	if !slices.Equal(levelsSeen, []int{1, 2, 3}) {
		t.Fatalf("levels seen = %v, want [1 2 3]", levelsSeen)
	}
	if h.Level() != 4 {
		t.Fatalf("level = %d, want 4", h.Level())
	}
}

func TestLevelUpStopEarlyKeepsRemainingLevels(t *testing.T) {
	h := NewHero(stats.New(0, 0, 0, 0), "hero")
	h.SetExp(250)

	for range h.LevelUp() {
		break
	}
	if h.Level() != 1 {
		t.Fatalf("level after early stop = %d, want 1", h.Level())
	}

	if messages := slices.Collect(h.LevelUp()); len(messages) != 2 {
		t.Fatalf("messages on retry = %v, want two", messages)
	}
	if h.Level() != 3 {
		t.Fatalf("level = %d, want 3", h.Level())
	}
}

func TestLevelUpReevaluatesLiveState(t *testing.T) {
	h := NewHero(stats.New(0, 0, 0, 0), "hero")
	seq := h.LevelUp()
	h.SetExp(100)
	if messages := slices.Collect(seq); len(messages) != 1 {
		t.Fatalf("messages = %v, want one", messages)
	}
	if messages := slices.Collect(seq); len(messages) != 0 {
		t.Fatalf("replay messages = %v, want none", messages)
	}
}
