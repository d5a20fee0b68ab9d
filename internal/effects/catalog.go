package effects

// Descriptor describes one catalog entry. The catalog order is part of the
// compilation contract: it fixes both the order in which random draws happen
// and the order of fragments in the final graph, so results are reproducible
// under a seeded random source.
type Descriptor struct {
	Key              string
	Name             string
	DefaultIntensity float64
	MaxIntensity     float64
	// PoolNames lists the asset pools the builder may draw from. Informational
	// only; used by the CLI catalog listing.
	PoolNames []string
}

type entry struct {
	desc  Descriptor
	build Builder
}

var catalog = []entry{
	{Descriptor{Key: "random_sound", Name: "Add Random Sound (legacy)", DefaultIntensity: 1.0, MaxIntensity: 5.0}, buildRandomSound},
	{Descriptor{Key: "sounds", Name: "Add Sound from Assets", DefaultIntensity: 1.0, MaxIntensity: 5.0, PoolNames: []string{"sounds"}}, buildSounds},
	{Descriptor{Key: "reverse", Name: "Reverse Clip (video & audio)", DefaultIntensity: 1.0, MaxIntensity: 1.0}, buildReverse},
	{Descriptor{Key: "speed", Name: "Speed Up / Slow Down", DefaultIntensity: 1.0, MaxIntensity: 4.0}, buildSpeed},
	{Descriptor{Key: "chorus", Name: "Chorus Effect (aecho)", DefaultIntensity: 0.6, MaxIntensity: 2.0}, buildChorus},
	{Descriptor{Key: "vibrato", Name: "Vibrato / Pitch Bend (asetrate+atempo)", DefaultIntensity: 1.0, MaxIntensity: 2.0}, buildVibrato},
	{Descriptor{Key: "stutter", Name: "Stutter Loop", DefaultIntensity: 0.5, MaxIntensity: 3.0}, buildStutter},
	{Descriptor{Key: "earrape", Name: "Earrape Mode (gain)", DefaultIntensity: 6.0, MaxIntensity: 30.0}, buildEarrape},
	{Descriptor{Key: "autotune", Name: "Auto-Tune Chaos (placeholder)", DefaultIntensity: 1.0, MaxIntensity: 1.0}, buildPassthrough},
	{Descriptor{Key: "dance_squid", Name: "Dance & Squidward Mode", DefaultIntensity: 1.0, MaxIntensity: 3.0}, buildDanceSquid},
	{Descriptor{Key: "invert", Name: "Invert Colors", DefaultIntensity: 1.0, MaxIntensity: 1.0}, buildInvert},
	{Descriptor{Key: "rainbow", Name: "Rainbow Overlay (user PNG/GIF)", DefaultIntensity: 1.0, MaxIntensity: 1.0, PoolNames: []string{"images"}}, buildRainbow},
	{Descriptor{Key: "mirror", Name: "Mirror Mode", DefaultIntensity: 1.0, MaxIntensity: 1.0}, buildMirror},
	{Descriptor{Key: "sus", Name: "Sus Effect (random pitch/tempo)", DefaultIntensity: 1.0, MaxIntensity: 3.0}, buildPassthrough},
	{Descriptor{Key: "explosion_spam", Name: "Explosion Spam (repetitive overlays)", DefaultIntensity: 2.0, MaxIntensity: 10.0, PoolNames: []string{"images"}}, buildExplosionSpam},
	{Descriptor{Key: "frame_shuffle", Name: "Frame Shuffle (placeholder)", DefaultIntensity: 1.0, MaxIntensity: 1.0}, buildFrameShuffle},
	{Descriptor{Key: "meme_injection", Name: "Meme Injection (overlay image/audio)", DefaultIntensity: 1.0, MaxIntensity: 3.0, PoolNames: []string{"memes", "meme_sounds"}}, buildMemeInjection},
	{Descriptor{Key: "meme_sounds", Name: "Meme Sounds (assets)", DefaultIntensity: 1.0, MaxIntensity: 3.0, PoolNames: []string{"meme_sounds"}}, buildMemeSounds},
	{Descriptor{Key: "memes", Name: "Memes (images + sounds)", DefaultIntensity: 1.0, MaxIntensity: 3.0, PoolNames: []string{"memes", "meme_sounds"}}, buildMemes},
	{Descriptor{Key: "sentence_mix", Name: "Sentence Mixing / Random Cuts", DefaultIntensity: 1.0, MaxIntensity: 5.0}, buildPassthrough},
	{Descriptor{Key: "adverts", Name: "Adverts (overlay ad video)", DefaultIntensity: 1.0, MaxIntensity: 3.0, PoolNames: []string{"adverts"}}, buildAdverts},
	{Descriptor{Key: "errors", Name: "Error / Glitch Overlays", DefaultIntensity: 1.0, MaxIntensity: 3.0, PoolNames: []string{"errors"}}, buildErrors},
	{Descriptor{Key: "images", Name: "Image Montage / Injection", DefaultIntensity: 1.0, MaxIntensity: 5.0, PoolNames: []string{"images"}}, buildImages},
	{Descriptor{Key: "overlay_videos", Name: "Overlay Short Videos", DefaultIntensity: 1.0, MaxIntensity: 5.0, PoolNames: []string{"overlay_videos"}}, buildOverlayVideos},
}

// Keys returns all catalog keys in declared order.
func Keys() []string {
	keys := make([]string, len(catalog))
	for i, e := range catalog {
		keys[i] = e.desc.Key
	}
	return keys
}

// Descriptors returns the full catalog in declared order.
func Descriptors() []Descriptor {
	descs := make([]Descriptor, len(catalog))
	for i, e := range catalog {
		descs[i] = e.desc
	}
	return descs
}

// Lookup returns the descriptor and builder registered for key.
func Lookup(key string) (Descriptor, Builder, bool) {
	for _, e := range catalog {
		if e.desc.Key == key {
			return e.desc, e.build, true
		}
	}
	return Descriptor{}, nil, false
}

// Build invokes the builder registered for key. Unknown keys contribute the
// passthrough fragment so a stale selection can never break compilation.
func Build(key string, req Request) Fragment {
	_, build, ok := Lookup(key)
	if !ok {
		return Passthrough()
	}
	return build(req)
}
