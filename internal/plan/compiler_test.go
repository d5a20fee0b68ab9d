package plan_test

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"mangler/internal/effects"
	"mangler/internal/plan"
)

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func enabled(keys ...string) map[string]plan.Selection {
	sels := make(map[string]plan.Selection, len(keys))
	for _, key := range keys {
		sels[key] = plan.Selection{Enabled: true, Probability: 1.0}
	}
	return sels
}

func TestCompileNothingEnabledYieldsGlobalNoop(t *testing.T) {
	result := plan.Compile(plan.Request{Rand: seeded(1)})
	if len(result.ExtraInputs) != 0 {
		t.Fatalf("expected no extra inputs, got %v", result.ExtraInputs)
	}
	if result.FilterGraph != "[0:v]copy[vout]; [0:a]anull[aout]" {
		t.Fatalf("unexpected graph: %q", result.FilterGraph)
	}
	if len(result.Fragments) != 0 {
		t.Fatalf("no fragments expected, got %d", len(result.Fragments))
	}
}

func TestCompileReverseOnly(t *testing.T) {
	result := plan.Compile(plan.Request{
		Selections: enabled("reverse"),
		Rand:       seeded(1),
	})
	if len(result.ExtraInputs) != 0 {
		t.Fatalf("reverse consumes no inputs, got %v", result.ExtraInputs)
	}
	want := "[0:v]reverse[vrev]; [0:a]areverse[arev]; [vrev]setpts=PTS-STARTPTS[vout]; [arev]asetpts=PTS-STARTPTS[aout]"
	if result.FilterGraph != want {
		t.Fatalf("unexpected graph:\n got %q\nwant %q", result.FilterGraph, want)
	}
	if !reflect.DeepEqual(result.EffectKeys, []string{"reverse"}) {
		t.Fatalf("unexpected effect keys: %v", result.EffectKeys)
	}
}

func TestCompileSlotNumberingFollowsCatalogOrder(t *testing.T) {
	pools := effects.Pools{
		"adverts": {"/a/ad.mp4"},
		"errors":  {"/e/glitch.png"},
	}
	result := plan.Compile(plan.Request{
		Selections: enabled("adverts", "errors"),
		Pools:      pools,
		Rand:       seeded(1),
	})

	if !reflect.DeepEqual(result.ExtraInputs, []string{"/a/ad.mp4", "/e/glitch.png"}) {
		t.Fatalf("unexpected extra inputs: %v", result.ExtraInputs)
	}
	// adverts precedes errors in the catalog, so it owns slot 1.
	if !strings.Contains(result.FilterGraph, "[0:v][1:v]overlay=enable='between(t,0,3)'") {
		t.Fatalf("adverts should reference slot 1: %q", result.FilterGraph)
	}
	if !strings.Contains(result.FilterGraph, "[0:v][2:v]overlay=enable='gt(mod(t,0.8),0.0)'") {
		t.Fatalf("errors should reference slot 2: %q", result.FilterGraph)
	}
	// Both fragments declare the shared terminal labels; the duplicate
	// declarations are the documented non-chaining behavior, not a defect.
	if got := strings.Count(result.FilterGraph, "[vout]"); got != 2 {
		t.Fatalf("expected two [vout] declarations, found %d in %q", got, result.FilterGraph)
	}
	if got := strings.Count(result.FilterGraph, "[aout]"); got != 2 {
		t.Fatalf("expected two [aout] declarations, found %d in %q", got, result.FilterGraph)
	}
}

func TestCompileSlotsAreContiguousAndMatchInputs(t *testing.T) {
	pools := effects.Pools{
		"memes":       {"/m/img.png"},
		"meme_sounds": {"/m/snd.mp3"},
		"adverts":     {"/a/ad.mp4"},
	}
	result := plan.Compile(plan.Request{
		Selections: enabled("memes", "adverts"),
		Pools:      pools,
		Rand:       seeded(1),
	})

	next := 1
	total := 0
	for _, frag := range result.Fragments {
		if frag.StartSlot != next {
			t.Fatalf("%s: start slot %d, expected %d", frag.Key, frag.StartSlot, next)
		}
		next += len(frag.Inputs)
		total += len(frag.Inputs)
	}
	if total != len(result.ExtraInputs) {
		t.Fatalf("fragment inputs (%d) disagree with plan inputs (%d)", total, len(result.ExtraInputs))
	}
	if len(result.ExtraInputs) != 3 {
		t.Fatalf("expected 3 extra inputs, got %v", result.ExtraInputs)
	}
}

func TestCompileProbabilityGateUsesOneDraw(t *testing.T) {
	sels := map[string]plan.Selection{
		"reverse": {Enabled: true, Probability: 0.0},
	}
	result := plan.Compile(plan.Request{Selections: sels, Rand: seeded(1)})
	if len(result.Fragments) != 0 {
		t.Fatalf("probability 0 must always skip, got %v", result.EffectKeys)
	}

	sels["reverse"] = plan.Selection{Enabled: true, Probability: 1.0}
	result = plan.Compile(plan.Request{Selections: sels, Rand: seeded(1)})
	if len(result.Fragments) != 1 {
		t.Fatal("probability 1 must always run")
	}
}

func TestCompileIsDeterministicUnderFixedSeed(t *testing.T) {
	pools := effects.Pools{"images": {"/i/a.png", "/i/b.png", "/i/c.png"}}
	sels := map[string]plan.Selection{
		"rainbow": {Enabled: true, Probability: 0.5},
		"images":  {Enabled: true, Probability: 0.5},
	}
	first := plan.Compile(plan.Request{Selections: sels, Pools: pools, Rand: seeded(42)})
	second := plan.Compile(plan.Request{Selections: sels, Pools: pools, Rand: seeded(42)})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("seeded compilations diverged:\n%+v\n%+v", first, second)
	}
}

func TestCompileOverlayOverrideWinsForRainbow(t *testing.T) {
	// The override only applies when it exists on disk; a bogus path falls
	// back to the pool, and with an empty pool the effect no-ops.
	result := plan.Compile(plan.Request{
		Overlay:    "/definitely/not/here.png",
		Selections: enabled("rainbow"),
		Rand:       seeded(1),
	})
	if len(result.ExtraInputs) != 0 {
		t.Fatalf("expected no inputs, got %v", result.ExtraInputs)
	}
	if result.FilterGraph != "[0:v]copy[vout]; [0:a]anull[aout]" {
		t.Fatalf("unexpected graph: %q", result.FilterGraph)
	}
}

func TestCompileZeroIntensityUsesCatalogDefault(t *testing.T) {
	sels := map[string]plan.Selection{
		"earrape": {Enabled: true, Probability: 1.0},
	}
	result := plan.Compile(plan.Request{Selections: sels, Rand: seeded(1)})
	// earrape default intensity is 6.0.
	if !strings.Contains(result.FilterGraph, "volume=6[aout]") {
		t.Fatalf("expected default gain 6, got %q", result.FilterGraph)
	}
}
