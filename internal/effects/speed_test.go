package effects_test

import (
	"math"
	"strings"
	"testing"

	"mangler/internal/effects"
)

func TestDecomposeTempoPreservesFactor(t *testing.T) {
	for factor := 0.125; factor <= 4.0; factor += 0.05 {
		stages := effects.DecomposeTempo(factor)
		if len(stages) == 0 {
			t.Fatalf("factor %v: no stages", factor)
		}
		product := 1.0
		for _, stage := range stages {
			if stage < 0.5-1e-9 || stage > 2.0+1e-9 {
				t.Fatalf("factor %v: stage %v outside safe range (chain %v)", factor, stage, stages)
			}
			product *= stage
		}
		// The last stage is rounded to three decimals.
		if math.Abs(product-factor) > 0.01 {
			t.Fatalf("factor %v: chain %v multiplies to %v", factor, stages, product)
		}
	}
}

func TestDecomposeTempoBoundaries(t *testing.T) {
	for _, factor := range []float64{0.5, 1.0, 2.0} {
		stages := effects.DecomposeTempo(factor)
		if len(stages) != 1 || stages[0] != factor {
			t.Fatalf("factor %v: expected single stage, got %v", factor, stages)
		}
	}
}

func TestSpeedFragmentChainsAtempo(t *testing.T) {
	frag := effects.Build("speed", effects.Request{Intensity: 4.0, Rand: newRand()})
	if len(frag.ExtraInputs) != 0 {
		t.Fatalf("speed must not consume inputs: %v", frag.ExtraInputs)
	}
	if frag.Filters[0] != "{0v}setpts=0.25*PTS[vout]" {
		t.Fatalf("unexpected video filter: %q", frag.Filters[0])
	}
	if frag.Filters[1] != "{0a}atempo=2,atempo=2,atempo=1[aout]" {
		t.Fatalf("unexpected audio chain: %q", frag.Filters[1])
	}
}

func TestSpeedClampsRequestedFactor(t *testing.T) {
	frag := effects.Build("speed", effects.Request{Intensity: 64, Rand: newRand()})
	if !strings.Contains(frag.Filters[0], "setpts=0.25*PTS") {
		t.Fatalf("expected clamp to 4.0, got %q", frag.Filters[0])
	}
}
