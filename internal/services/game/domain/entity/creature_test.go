package entity

import (
	"testing"

	"github.com/louisbranch/tilequest/internal/services/game/domain/stats"
)

func TestRecomputeMaxHP(t *testing.T) {
	tests := []struct {
		name      string
		endurance int
		want      int
	}{
		{"zero endurance", 0, 5},
		{"positive endurance", 10, 25},
		{"negative endurance", -4, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCreature("rat", stats.New(1, tt.endurance, 1, 1), Position{})
			if c.MaxHP() != tt.want {
				t.Fatalf("max hp = %d, want %d", c.MaxHP(), tt.want)
			}
			if c.HP() != c.MaxHP() {
				t.Fatalf("hp = %d, want %d", c.HP(), c.MaxHP())
			}
		})
	}
}

func TestRecomputeMaxHPResetsHP(t *testing.T) {
	c := NewCreature("rat", stats.New(1, 2, 1, 1), Position{})
	c.SetHP(1)
	c.Stats().Set(stats.Endurance, 5)
	c.RecomputeMaxHP()
	if c.MaxHP() != 15 || c.HP() != 15 {
		t.Fatalf("hp/max = %d/%d, want 15/15", c.HP(), c.MaxHP())
	}
}

func TestHPIsNotClampedAfterRecompute(t *testing.T) {
	c := NewCreature("rat", stats.New(1, 2, 1, 1), Position{})
	c.SetHP(100)
	if c.HP() != 100 {
		t.Fatalf("hp = %d, want 100", c.HP())
	}
}

func TestNewCreatureCopiesStats(t *testing.T) {
	block := stats.New(1, 2, 3, 4)
	c := NewCreature("rat", block, Position{})
	block.Set(stats.Endurance, 50)
	if c.Stats().Get(stats.Endurance) != 2 {
		t.Fatalf("endurance = %d, want 2", c.Stats().Get(stats.Endurance))
	}
}

func TestCreatureDraw(t *testing.T) {
	display := &fakeDisplay{}
	c := NewCreature("rat", stats.New(1, 1, 1, 1), Position{X: 2, Y: 7})
	c.Draw(display)
	if len(display.calls) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(display.calls))
	}
	if display.calls[0] != (drawCall{sprite: "rat", pos: Position{X: 2, Y: 7}}) {
		t.Fatalf("draw call = %+v", display.calls[0])
	}
}
