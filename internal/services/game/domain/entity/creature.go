package entity

import "github.com/louisbranch/tilequest/internal/services/game/domain/stats"

// Base hit points before endurance is applied.
const (
	BaseHP         = 5
	HPPerEndurance = 2
)

// Creature is a drawable entity with stats and hit points.
type Creature struct {
	sprite   Sprite
	stats    stats.Block
	position Position
	hp       int
	maxHP    int
}

// NewCreature builds a creature at full health. The stat block is copied.
func NewCreature(sprite Sprite, block stats.Block, pos Position) *Creature {
	c := &Creature{
		sprite:   sprite,
		stats:    block.Copy(),
		position: pos,
	}
	c.RecomputeMaxHP()
	return c
}

// MaxHPFor returns the hit point capacity granted by block's endurance.
func MaxHPFor(block stats.Block) int {
	return BaseHP + HPPerEndurance*block.Get(stats.Endurance)
}

// RecomputeMaxHP derives max HP from endurance and restores HP to it.
func (c *Creature) RecomputeMaxHP() {
	c.maxHP = MaxHPFor(c.stats)
	c.hp = c.maxHP
}

// Draw forwards the sprite and position to the display.
func (c *Creature) Draw(display Display) {
	display.DrawObject(c.sprite, c.position)
}

// Sprite returns the creature's sprite handle.
func (c *Creature) Sprite() Sprite { return c.sprite }

// Stats returns the creature's own stat block.
func (c *Creature) Stats() stats.Block { return c.stats }

// Position returns the current tile.
func (c *Creature) Position() Position { return c.position }

// SetPosition moves the creature.
func (c *Creature) SetPosition(pos Position) { c.position = pos }

// HP returns current hit points.
func (c *Creature) HP() int { return c.hp }

// SetHP assigns hit points without clamping.
func (c *Creature) SetHP(hp int) { c.hp = hp }

// MaxHP returns the derived hit point capacity.
func (c *Creature) MaxHP() int { return c.maxHP }

// SetMaxHP overrides the hit point capacity.
func (c *Creature) SetMaxHP(maxHP int) { c.maxHP = maxHP }
