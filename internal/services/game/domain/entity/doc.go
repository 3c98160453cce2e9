// Package entity models the creatures and objects a hero meets on the map.
//
// Entities expose two capabilities: Drawable, which forwards sprite and
// position to a display sink, and Interactive, which resolves what happens
// when the hero steps onto the entity's tile. The engine that owns the game
// loop is passed explicitly into every interaction.
package entity
