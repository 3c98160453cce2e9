package entity

import (
	"iter"

	"github.com/louisbranch/tilequest/internal/services/game/domain/stats"
)

// Sprite is an opaque handle resolved by the display.
type Sprite string

// Position is a tile coordinate.
type Position struct {
	X int
	Y int
}

// Display receives draw calls for one frame.
type Display interface {
	DrawObject(sprite Sprite, pos Position)
}

// Drawable is implemented by anything that can be drawn on the map.
type Drawable interface {
	Draw(display Display)
}

// Notifier receives player-facing text.
type Notifier interface {
	Notify(message string)
}

// Engine is the game-loop state that interactions may change.
type Engine interface {
	Notifier
	Score() int
	SetScore(score int)
	// Running reports whether the game continues.
	Running() bool
	SetRunning(running bool)
}

// Character is the hero-facing view shared by Hero and stat effects.
type Character interface {
	Drawable
	Sprite() Sprite
	Stats() stats.Block
	Position() Position
	SetPosition(pos Position)
	Level() int
	SetLevel(level int)
	Exp() int
	SetExp(exp int)
	Gold() int
	SetGold(gold int)
	HP() int
	SetHP(hp int)
	MaxHP() int
	SetMaxHP(maxHP int)
	// LevelUp yields one notification per level threshold crossed.
	LevelUp() iter.Seq[string]
}

// Interactive resolves the hero reaching an entity's tile.
type Interactive interface {
	Interact(engine Engine, hero Character)
}

// Object is a map entity the hero can walk onto.
type Object interface {
	Drawable
	Interactive
	Sprite() Sprite
	Position() Position
}

// Action is an ally reward supplied by game content.
type Action func(engine Engine, hero Character)

// announceLevelUps forwards every leveling notification to the engine.
func announceLevelUps(engine Notifier, hero Character) {
	for message := range hero.LevelUp() {
		engine.Notify(message)
	}
}
