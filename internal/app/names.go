package app

import (
	"fmt"
	"math/rand/v2"

	"github.com/sufield/sessionify/internal/ports"
)

// DefaultComponent is the component name embedded in generated namespace names.
const DefaultComponent = "sessionify"

// NameGenerator produces the unique names of generated policies.
//
// Namespaces are named "str--{component}-{8 hex digits}" and sessions
// "session-{8 hex digits}". The suffixes are 32 random bits, so collisions are
// possible but unlikely; the remote service rejects a duplicate name.
type NameGenerator struct {
	component string
	random    ports.RandomSource
}

// NewNameGenerator creates a generator. A nil random source selects the
// process-wide math/rand/v2 generator.
func NewNameGenerator(component string, random ports.RandomSource) *NameGenerator {
	if random == nil {
		random = globalRandom{}
	}
	return &NameGenerator{component: component, random: random}
}

// Namespace returns a fresh namespace name.
func (g *NameGenerator) Namespace() string {
	return fmt.Sprintf("str--%s-%08x", g.component, g.random.Uint32())
}

// Session returns a fresh session name.
func (g *NameGenerator) Session() string {
	return fmt.Sprintf("session-%08x", g.random.Uint32())
}

type globalRandom struct{}

func (globalRandom) Uint32() uint32 { return rand.Uint32() }
