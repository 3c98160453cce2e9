package entity

import "github.com/louisbranch/tilequest/internal/services/game/domain/stats"

// Enemy is a hostile creature that trades hit points for experience.
type Enemy struct {
	*Creature
	xp int
}

// NewEnemy builds an enemy worth xp experience.
func NewEnemy(sprite Sprite, block stats.Block, xp int, pos Position) *Enemy {
	return &Enemy{
		Creature: NewCreature(sprite, block, pos),
		xp:       xp,
	}
}

// XP returns the experience reward.
func (e *Enemy) XP() int { return e.xp }

// Damage is the hit points a fight costs: a fifth of the reward, floored.
func (e *Enemy) Damage() int {
	return floorDiv(e.xp, 5)
}

// Interact resolves a fight. The hero always gains the experience; if the
// hit point loss drives the hero below zero the game ends and nothing else
// is applied.
func (e *Enemy) Interact(engine Engine, hero Character) {
	damage := e.Damage()
	hero.SetExp(hero.Exp() + e.xp)
	hero.SetHP(hero.HP() - damage)
	if hero.HP() < 0 {
		engine.Notify(MessageGameOver)
		engine.SetRunning(false)
		return
	}
	engine.SetScore(engine.Score() + 1)
	engine.Notify(ExpGainedMessage(e.xp))
	engine.Notify(HPLostMessage(damage))
	announceLevelUps(engine, hero)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
