// Package stats holds the named numeric attributes that drive creature
// hit points and leveling.
package stats

import "maps"

// Attribute names a stat.
type Attribute string

// Attributes tracked by every stat block.
const (
	Strength     Attribute = "strength"
	Endurance    Attribute = "endurance"
	Luck         Attribute = "luck"
	Intelligence Attribute = "intelligence"
)

// Attributes lists the attributes in display order.
var Attributes = []Attribute{Strength, Endurance, Luck, Intelligence}

// Block maps attributes to values. Values may be zero or negative.
type Block map[Attribute]int

// New returns a block with every attribute set.
func New(strength, endurance, luck, intelligence int) Block {
	return Block{
		Strength:     strength,
		Endurance:    endurance,
		Luck:         luck,
		Intelligence: intelligence,
	}
}

// Get returns the attribute value; missing attributes read as zero.
func (b Block) Get(name Attribute) int {
	return b[name]
}

// Set assigns the attribute value.
func (b Block) Set(name Attribute, value int) {
	b[name] = value
}

// Add shifts the attribute by delta.
func (b Block) Add(name Attribute, delta int) {
	b[name] += delta
}

// Copy returns an independent copy.
func (b Block) Copy() Block {
	if b == nil {
		return Block{}
	}
	return maps.Clone(b)
}
