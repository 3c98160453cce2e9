package entity

import (
	"iter"
	"math"

	"github.com/louisbranch/tilequest/internal/services/game/domain/stats"
)

// Hero progression constants.
const (
	HeroStartLevel = 1
	// LevelBaseExp is the experience needed to leave level 1; each level doubles it.
	LevelBaseExp = 100
	// LevelStatGain is added to strength and endurance on every level.
	LevelStatGain = 2
)

// HeroStart is the tile every hero begins on.
var HeroStart = Position{X: 1, Y: 1}

// Hero is the player-controlled creature.
type Hero struct {
	*Creature
	level int
	exp   int
	gold  int
}

// NewHero builds a level 1 hero at the start tile.
func NewHero(block stats.Block, sprite Sprite) *Hero {
	return &Hero{
		Creature: NewCreature(sprite, block, HeroStart),
		level:    HeroStartLevel,
	}
}

// Level returns the current level.
func (h *Hero) Level() int { return h.level }

// SetLevel assigns the level.
func (h *Hero) SetLevel(level int) { h.level = level }

// Exp returns accumulated experience.
func (h *Hero) Exp() int { return h.exp }

// SetExp assigns accumulated experience.
func (h *Hero) SetExp(exp int) { h.exp = exp }

// Gold returns carried gold.
func (h *Hero) Gold() int { return h.gold }

// SetGold assigns carried gold.
func (h *Hero) SetGold(gold int) { h.gold = gold }

// CanLevel reports whether experience has reached the next threshold.
func (h *Hero) CanLevel() bool {
	return float64(h.exp) >= levelThreshold(h.level)
}

// LevelGains returns the stat increases granted by one level.
func LevelGains() stats.Block {
	return stats.Block{
		stats.Strength:  LevelStatGain,
		stats.Endurance: LevelStatGain,
	}
}

// Advance applies one level step to the hero's own stats.
func (h *Hero) Advance() {
	h.level++
	for name, delta := range LevelGains() {
		h.stats.Add(name, delta)
	}
	h.RecomputeMaxHP()
}

// LevelUp yields MessageLevelUp for every threshold crossed, advancing the
// hero once each notification has been consumed. Stopping the iteration
// early leaves the remaining levels for the next call.
func (h *Hero) LevelUp() iter.Seq[string] {
	return func(yield func(string) bool) {
		for h.CanLevel() {
			if !yield(MessageLevelUp) {
				return
			}
			h.Advance()
		}
	}
}

// levelThreshold is LevelBaseExp × 2^(level-1).
func levelThreshold(level int) float64 {
	return math.Ldexp(LevelBaseExp, level-1)
}
