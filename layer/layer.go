package layer

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

func rgb(r, g, b float32) mgl32.Vec3 {
	return mgl32.Vec3{r / 255, g / 255, b / 255}
}

// registry is indexed by Kind.
var registry = [numKinds]Layer{
	Concrete: {Kind: Concrete, Label: "concrete", Color: rgb(134, 134, 134), Priority: 3},
	Grass:    {Kind: Grass, Label: "grass", Color: rgb(36, 182, 66), Priority: 2},
	Snow:     {Kind: Snow, Label: "snow", Color: rgb(230, 237, 245), Priority: 2},
	Water:    {Kind: Water, Label: "water", Color: rgb(36, 66, 182), Priority: 1},
	Path:     {Kind: Path, Label: "path", Color: rgb(182, 66, 36), Priority: 1},
}

// Get returns the registered layer for k.
func Get(k Kind) (Layer, bool) {
	if k >= numKinds {
		return Layer{}, false
	}

	return registry[k], true
}

// MustGet is Get that panics on an unknown kind.
func MustGet(k Kind) Layer {
	l, ok := Get(k)
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrUnknownKind, k))
	}

	return l
}

// All returns every layer ordered by descending priority, ties by Kind.
func All() []Layer {
	out := make([]Layer, 0, numKinds)
	out = append(out, registry[:]...)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Priority > out[b].Priority
	})

	return out
}

// String returns the layer label, or "kind(N)" for unknown kinds.
func (k Kind) String() string {
	if l, ok := Get(k); ok {
		return l.Label
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Validate checks 0 <= Grass <= Concrete <= Snow <= 1.
func (t Thresholds) Validate() error {
	if t.Grass < 0 || t.Grass > t.Concrete || t.Concrete > t.Snow || t.Snow > 1 {
		return fmt.Errorf("%w: got snow=%g concrete=%g grass=%g", ErrBadThresholds, t.Snow, t.Concrete, t.Grass)
	}

	return nil
}

// Classify assigns a layer to elevation v given the field minimum and the
// span max-min. Bands are exclusive at their lower edge: a value exactly on
// a threshold falls into the band below.
func (t Thresholds) Classify(v, lo, span float64) Kind {
	d := v - lo
	switch {
	case d > t.Snow*span:
		return Snow
	case d > t.Concrete*span:
		return Concrete
	case d > t.Grass*span:
		return Grass
	default:
		return Water
	}
}
