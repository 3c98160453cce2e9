package effect

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/tilequest/internal/platform/errors"
	"github.com/louisbranch/tilequest/internal/services/game/domain/stats"
)

// Kind identifies a stat modifier.
type Kind string

// Supported effect kinds.
const (
	KindBerserk  Kind = "berserk"
	KindBlessing Kind = "blessing"
	KindWeakness Kind = "weakness"
)

// Modifier is a fixed additive stat transform.
type Modifier interface {
	Kind() Kind
	Apply(block stats.Block)
}

// Berserk trades intelligence for raw power.
type Berserk struct{}

// Kind implements Modifier.
func (Berserk) Kind() Kind { return KindBerserk }

// Apply implements Modifier.
func (Berserk) Apply(block stats.Block) {
	block.Add(stats.Strength, 7)
	block.Add(stats.Endurance, 7)
	block.Add(stats.Luck, 7)
	block.Add(stats.Intelligence, -3)
}

// Blessing raises every attribute.
type Blessing struct{}

// Kind implements Modifier.
func (Blessing) Kind() Kind { return KindBlessing }

// Apply implements Modifier.
func (Blessing) Apply(block stats.Block) {
	for _, name := range stats.Attributes {
		block.Add(name, 2)
	}
}

// Weakness lowers every attribute.
type Weakness struct{}

// Kind implements Modifier.
func (Weakness) Kind() Kind { return KindWeakness }

// Apply implements Modifier.
func (Weakness) Apply(block stats.Block) {
	for _, name := range stats.Attributes {
		block.Add(name, -4)
	}
}

var modifiers = map[Kind]Modifier{
	KindBerserk:  Berserk{},
	KindBlessing: Blessing{},
	KindWeakness: Weakness{},
}

// ParseKind normalizes and validates an effect name.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := modifiers[kind]; !ok {
		return "", apperrors.WithMetadata(
			apperrors.CodeEffectUnknown,
			fmt.Sprintf("effect %q is not supported", value),
			map[string]string{"Effect": value},
		)
	}
	return kind, nil
}

// ModifierFor returns the modifier registered for kind.
func ModifierFor(kind Kind) (Modifier, error) {
	modifier, ok := modifiers[kind]
	if !ok {
		return nil, apperrors.WithMetadata(
			apperrors.CodeEffectUnknown,
			fmt.Sprintf("effect %q is not supported", kind),
			map[string]string{"Effect": string(kind)},
		)
	}
	return modifier, nil
}
