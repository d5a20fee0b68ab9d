package effects

import (
	"fmt"
	"math"
	"strings"
)

// atempo accepts factors in [0.5, 2.0] per stage; anything outside that range
// has to be decomposed into a chain of stages whose product preserves the
// requested factor.
const (
	atempoMin = 0.5
	atempoMax = 2.0

	speedMin = 0.125
	speedMax = 4.0
)

func buildSpeed(req Request) Fragment {
	factor := clamp(req.Intensity, speedMin, speedMax)
	pts := formatFloat(1.0/factor) + "*PTS"

	stages := DecomposeTempo(factor)
	parts := make([]string, len(stages))
	for i, stage := range stages {
		parts[i] = "atempo=" + formatFloat(stage)
	}

	return Fragment{Filters: []string{
		fmt.Sprintf("{0v}setpts=%s[vout]", pts),
		"{0a}" + strings.Join(parts, ",") + "[aout]",
	}}
}

// DecomposeTempo splits a playback factor into a chain of atempo stages, each
// within [0.5, 2.0]. The final stage is rounded to three decimals; the
// product of the returned stages equals factor up to that rounding.
func DecomposeTempo(factor float64) []float64 {
	var stages []float64
	remaining := factor
	if remaining < atempoMin {
		for remaining < atempoMin {
			stages = append(stages, atempoMin)
			remaining /= atempoMin
		}
	} else {
		for remaining > atempoMax {
			stages = append(stages, atempoMax)
			remaining /= atempoMax
		}
	}
	stages = append(stages, math.Round(remaining*1000)/1000)
	return stages
}
