package effects

import "math/rand"

// Fragment is one effect's contribution to the filter graph: the extra input
// files it consumes and the filter expressions it emits. Filter expressions
// use local placeholders ({0v}, {1a}, ...) that the compiler resolves into
// global input indices. Every input listed in ExtraInputs must be referenced
// by position, and no filter may reference an input that is not listed.
type Fragment struct {
	ExtraInputs []string
	Filters     []string
}

// Passthrough returns the no-op fragment: primary video copied unchanged and
// primary audio passed through. Builders fall back to it when required assets
// are unavailable, and the compiler substitutes it when no effect contributed
// anything at all.
func Passthrough() Fragment {
	return Fragment{Filters: []string{"{0v}copy[vout]", "{0a}anull[aout]"}}
}

// Pools maps a pool name ("images", "sounds", ...) to the file paths
// available in that pool. Pools are assembled by the assets scanner and are
// read-only from the builders' perspective.
type Pools map[string][]string

// Pick selects one path uniformly at random from the named pool. It returns
// an empty string when the pool is missing or empty; builders treat that as
// "no asset" and degrade to a passthrough contribution.
func (p Pools) Pick(rng *rand.Rand, name string) string {
	candidates := p[name]
	if len(candidates) == 0 {
		return ""
	}
	return candidates[rng.Intn(len(candidates))]
}

// Request carries everything a builder needs to produce a fragment.
type Request struct {
	// Intensity is the effect strength requested by the caller. Builders
	// clamp it to their own safe range before use.
	Intensity float64
	// Overlay optionally overrides the asset choice for overlay-style
	// effects. An empty string means "pick from the pools".
	Overlay string
	Pools   Pools
	Rand    *rand.Rand
}

// Builder produces a fragment for one effect at the requested intensity.
type Builder func(req Request) Fragment

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
