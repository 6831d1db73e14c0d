package shapes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Factory creates a shape with default parameters
type Factory func() Shape

// registry is filled from init functions only and read-only afterwards
var registry = make(map[string]Factory)

// Register makes a shape kind available to New. Kinds are case-insensitive.
// It must be called from an init function; registering a kind twice panics.
func Register(kind string, factory Factory) {
	key := strings.ToLower(kind)
	if _, exists := registry[key]; exists {
		panic(fmt.Sprintf("shapes: %q registered twice", kind))
	}
	registry[key] = factory
}

// New creates a shape of the given kind with default parameters
func New(kind string) (Shape, error) {
	factory, ok := registry[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("shapes: unknown shape %q (known: %s)", kind, strings.Join(Kinds(), ", "))
	}
	return factory(), nil
}

// Kinds returns the registered shape kinds in sorted order
func Kinds() []string {
	kinds := lo.Keys(registry)
	sort.Strings(kinds)
	return kinds
}
