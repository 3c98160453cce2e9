package entity

// Ally is a friendly map object that runs a content-defined reward.
type Ally struct {
	sprite   Sprite
	position Position
	action   Action
}

// NewAlly builds an ally. A nil action only triggers leveling.
func NewAlly(sprite Sprite, action Action, pos Position) *Ally {
	return &Ally{sprite: sprite, action: action, position: pos}
}

// Sprite returns the ally's sprite handle.
func (a *Ally) Sprite() Sprite { return a.sprite }

// Position returns the ally's tile.
func (a *Ally) Position() Position { return a.position }

// SetPosition moves the ally.
func (a *Ally) SetPosition(pos Position) { a.position = pos }

// Draw forwards the sprite and position to the display.
func (a *Ally) Draw(display Display) {
	display.DrawObject(a.sprite, a.position)
}

// Interact runs the reward and then announces any levels it unlocked.
func (a *Ally) Interact(engine Engine, hero Character) {
	if a.action != nil {
		a.action(engine, hero)
	}
	announceLevelUps(engine, hero)
}
