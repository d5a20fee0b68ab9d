// Package plan compiles a set of effect selections into a single filtergraph
// plan: the ordered extra-input list and the joined filter_complex string the
// command builder hands to ffmpeg.
//
// The compiler walks the effect catalog in declared order and assigns global
// input slots as it goes. Slot 0 is always the primary input; each extra
// input an effect consumes takes the next free slot, so slot i (i >= 1)
// corresponds exactly to the i-th extra `-i` argument on the command line.
//
// Fragments are not chained: every fragment reads the primary streams
// ([0:v]/[0:a]) directly and declares its own [vout]/[aout] terminals. When
// two terminal-declaring effects are enabled at once the graph contains
// duplicate label declarations, which ffmpeg rejects at run time. That
// mirrors the behavior this tool reproduces; anything smarter belongs in a
// dedicated composition stage layered on Plan.Fragments.
package plan

import (
	"fmt"
	"math/rand"
	"strings"

	"mangler/internal/effects"
)

// Selection is the caller's request for one effect.
type Selection struct {
	Enabled bool
	// Probability in [0,1]; values below 1 gate the effect on one uniform
	// draw per compilation.
	Probability float64
	// Intensity of 0 means "use the catalog default".
	Intensity float64
}

// Request carries the inputs for one compilation.
type Request struct {
	Overlay    string
	Selections map[string]Selection
	Pools      effects.Pools
	Rand       *rand.Rand
}

// CompiledFragment is one effect's placeholder-resolved contribution.
type CompiledFragment struct {
	Key       string
	StartSlot int
	Inputs    []string
	Filters   []string
}

// Plan is the compiled result, consumed once by the command builder.
type Plan struct {
	ExtraInputs []string
	FilterGraph string
	Fragments   []CompiledFragment
	EffectKeys  []string
}

const fragmentSeparator = "; "

// Compile resolves the enabled effects into a plan. It never fails: empty
// selections, empty pools, and out-of-range intensities all degrade to
// passthrough behavior.
func Compile(req Request) Plan {
	rng := req.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	var result Plan
	nextSlot := 1 // slot 0 is the primary input

	for _, desc := range effects.Descriptors() {
		sel, ok := req.Selections[desc.Key]
		if !ok || !sel.Enabled {
			continue
		}
		// One draw per gated effect, whether or not it passes. Draw order is
		// fixed by catalog order so seeded runs reproduce exactly.
		if sel.Probability < 1.0 && rng.Float64() > sel.Probability {
			continue
		}

		intensity := sel.Intensity
		if intensity == 0 {
			intensity = desc.DefaultIntensity
		}

		frag := effects.Build(desc.Key, effects.Request{
			Intensity: intensity,
			Overlay:   req.Overlay,
			Pools:     req.Pools,
			Rand:      rng,
		})

		startSlot := nextSlot
		result.ExtraInputs = append(result.ExtraInputs, frag.ExtraInputs...)
		nextSlot += len(frag.ExtraInputs)

		compiled := CompiledFragment{
			Key:       desc.Key,
			StartSlot: startSlot,
			Inputs:    frag.ExtraInputs,
			Filters:   resolveFilters(frag, startSlot),
		}
		result.Fragments = append(result.Fragments, compiled)
		result.EffectKeys = append(result.EffectKeys, desc.Key)
	}

	var filters []string
	for _, frag := range result.Fragments {
		filters = append(filters, frag.Filters...)
	}
	if len(filters) == 0 {
		noop := effects.Passthrough()
		filters = resolveFilters(noop, 1)
	}
	result.FilterGraph = strings.Join(filters, fragmentSeparator)
	return result
}

// resolveFilters rewrites local placeholders into global stream references:
// {0v}/{0a} become [0:v]/[0:a], and {jv}/{ja} for j >= 1 become references to
// global slot startSlot+j-1.
func resolveFilters(frag effects.Fragment, startSlot int) []string {
	resolved := make([]string, len(frag.Filters))
	for i, filter := range frag.Filters {
		out := strings.ReplaceAll(filter, "{0v}", "[0:v]")
		out = strings.ReplaceAll(out, "{0a}", "[0:a]")
		for j := 1; j <= len(frag.ExtraInputs); j++ {
			global := startSlot + j - 1
			out = strings.ReplaceAll(out, fmt.Sprintf("{%dv}", j), fmt.Sprintf("[%d:v]", global))
			out = strings.ReplaceAll(out, fmt.Sprintf("{%da}", j), fmt.Sprintf("[%d:a]", global))
		}
		resolved[i] = out
	}
	return resolved
}
