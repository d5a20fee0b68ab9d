package effects

import (
	"fmt"
	"os"
	"strings"
)

func buildPassthrough(Request) Fragment {
	return Passthrough()
}

func buildRandomSound(Request) Fragment {
	// Legacy effect: no external asset, just a unit-gain audio stage.
	return Fragment{Filters: []string{
		"{0v}copy[vout]",
		"{0a}volume=1.0[aout]",
	}}
}

func buildSounds(req Request) Fragment {
	chosen := req.Pools.Pick(req.Rand, "sounds")
	if chosen == "" {
		return Passthrough()
	}
	return Fragment{
		ExtraInputs: []string{chosen},
		Filters: []string{
			"{0v}copy[vout]",
			"{0a}[maina]; {1a}[in1]; [maina][in1]amix=inputs=2:duration=first:dropout_transition=2[aout]",
		},
	}
}

func buildReverse(Request) Fragment {
	return Fragment{Filters: []string{
		"{0v}reverse[vrev]",
		"{0a}areverse[arev]",
		"[vrev]setpts=PTS-STARTPTS[vout]",
		"[arev]asetpts=PTS-STARTPTS[aout]",
	}}
}

func buildChorus(req Request) Fragment {
	level := req.Intensity
	delay := int(20 + level*60)
	decay := clamp(0.2+level*0.2, 0.1, 0.9)
	aecho := fmt.Sprintf("aecho=0.8:0.9:%d|%d:%s|%s", delay, delay*2, formatFloat(decay), formatFloat(decay*0.6))
	return Fragment{Filters: []string{
		"{0v}copy[vout]",
		"{0a}" + aecho + "[aout]",
	}}
}

func buildVibrato(req Request) Fragment {
	pitch := clamp(req.Intensity, 0.5, 2.0)
	tempo := clamp(1.0/pitch, 0.5, 2.0)
	afilter := fmt.Sprintf("asetrate=44100*%s,aresample=44100,atempo=%s", formatFloat(pitch), formatFloat(tempo))
	return Fragment{Filters: []string{
		"{0v}copy[vout]",
		"{0a}" + afilter + "[aout]",
	}}
}

func buildStutter(req Request) Fragment {
	loops := int(req.Intensity * 3)
	if loops < 2 {
		loops = 2
	}
	return Fragment{Filters: []string{
		"{0v}trim=0:0.15,setpts=PTS-STARTPTS[vst]",
		fmt.Sprintf("[vst]loop=%d:1:0[vstl]", loops),
		"{0a}atrim=0:0.15,asetpts=PTS-STARTPTS[ast]",
		fmt.Sprintf("[ast]aloop=loop=%d:size=2[astl]", loops),
		"[vstl]scale=iw:ih[vout]",
		"[astl]anull[aout]",
	}}
}

func buildEarrape(req Request) Fragment {
	gain := clamp(req.Intensity, 2.0, 30.0)
	return Fragment{Filters: []string{
		"{0v}eq=contrast=1.1:saturation=1.4[vout]",
		fmt.Sprintf("{0a}volume=%s[aout]", formatFloat(gain)),
	}}
}

func buildDanceSquid(req Request) Fragment {
	zoom := 1.0 + 0.05*req.Intensity
	return Fragment{Filters: []string{
		fmt.Sprintf("{0v}scale=iw*%s:ih*%s,transpose=1,transpose=2,format=yuv420p[vout]", formatFloat(zoom), formatFloat(zoom)),
		"{0a}atempo=1.0[aout]",
	}}
}

func buildInvert(Request) Fragment {
	return Fragment{Filters: []string{
		"{0v}negate[vout]",
		"{0a}anull[aout]",
	}}
}

func buildRainbow(req Request) Fragment {
	// An explicit overlay path wins over the image pool.
	if req.Overlay != "" && fileExists(req.Overlay) {
		return overlayCorner(req.Overlay)
	}
	if chosen := req.Pools.Pick(req.Rand, "images"); chosen != "" {
		return overlayCorner(chosen)
	}
	return Passthrough()
}

func overlayCorner(path string) Fragment {
	return Fragment{
		ExtraInputs: []string{path},
		Filters: []string{
			"{0v}{1v}overlay=10:10:shortest=1[vout]",
			"{0a}anull[aout]",
		},
	}
}

func buildMirror(Request) Fragment {
	return Fragment{Filters: []string{
		"{0v}hflip[vout]",
		"{0a}anull[aout]",
	}}
}

func buildExplosionSpam(req Request) Fragment {
	chosen := req.Pools.Pick(req.Rand, "images")
	if chosen == "" {
		chosen = req.Overlay
	}
	if chosen == "" {
		return Passthrough()
	}
	return Fragment{
		ExtraInputs: []string{chosen},
		Filters: []string{
			"{0v}{1v}overlay=enable='between(t,0,0.6)':x=10:y=10[vtmp]",
			"[vtmp]copy[vout]",
			"{0a}anull[aout]",
		},
	}
}

func buildFrameShuffle(Request) Fragment {
	return Fragment{Filters: []string{
		"{0v}tblend=all_mode='addition',framestep=1[vout]",
		"{0a}anull[aout]",
	}}
}

func buildMemeInjection(req Request) Fragment {
	img := req.Pools.Pick(req.Rand, "memes")
	if img == "" {
		img = req.Overlay
	}
	snd := req.Pools.Pick(req.Rand, "meme_sounds")

	var frag Fragment
	if img != "" {
		frag.ExtraInputs = append(frag.ExtraInputs, img)
		frag.Filters = append(frag.Filters, "{0v}{1v}overlay=W-w-10:H-h-10[vtmp]")
	} else {
		frag.Filters = append(frag.Filters, "{0v}copy[vtmp]")
	}
	if snd != "" {
		frag.ExtraInputs = append(frag.ExtraInputs, snd)
		placeholder := localAudioRef(len(frag.ExtraInputs))
		frag.Filters = append(frag.Filters,
			fmt.Sprintf("{0a}[maina]; %s[sfx]; [maina][sfx]amix=inputs=2:duration=first[aout]", placeholder),
			"[vtmp]copy[vout]",
		)
		return frag
	}
	frag.Filters = append(frag.Filters, "{0a}anull[aout]", "[vtmp]copy[vout]")
	return frag
}

func buildMemeSounds(req Request) Fragment {
	chosen := req.Pools.Pick(req.Rand, "meme_sounds")
	if chosen == "" {
		return Passthrough()
	}
	return Fragment{
		ExtraInputs: []string{chosen},
		Filters: []string{
			"{0v}copy[vout]",
			"{0a}[maina]; {1a}[sfx]; [maina][sfx]amix=inputs=2:duration=first[aout]",
		},
	}
}

func buildMemes(req Request) Fragment {
	img := req.Pools.Pick(req.Rand, "memes")
	snd := req.Pools.Pick(req.Rand, "meme_sounds")

	var frag Fragment
	if img != "" {
		frag.ExtraInputs = append(frag.ExtraInputs, img)
		frag.Filters = append(frag.Filters, "{0v}{1v}overlay=10:10:shortest=1[vtmp]")
	} else {
		frag.Filters = append(frag.Filters, "{0v}copy[vtmp]")
	}
	if snd != "" {
		frag.ExtraInputs = append(frag.ExtraInputs, snd)
		placeholder := localAudioRef(len(frag.ExtraInputs))
		frag.Filters = append(frag.Filters, fmt.Sprintf("{0a}[m]; %s[s]; [m][s]amix=inputs=2:duration=first[aout]", placeholder))
	} else {
		frag.Filters = append(frag.Filters, "{0a}anull[aout]")
	}
	frag.Filters = append(frag.Filters, "[vtmp]copy[vout]")
	return frag
}

func buildAdverts(req Request) Fragment {
	chosen := req.Pools.Pick(req.Rand, "adverts")
	if chosen == "" {
		return Passthrough()
	}
	return Fragment{
		ExtraInputs: []string{chosen},
		Filters: []string{
			"{0v}{1v}overlay=enable='between(t,0,3)':x=W-w-10:y=10[vtmp]",
			"[vtmp]copy[vout]",
			"{0a}anull[aout]",
		},
	}
}

func buildErrors(req Request) Fragment {
	chosen := req.Pools.Pick(req.Rand, "errors")
	if chosen == "" {
		return Passthrough()
	}
	return Fragment{
		ExtraInputs: []string{chosen},
		Filters: []string{
			"{0v}{1v}overlay=enable='gt(mod(t,0.8),0.0)':x=0:y=0[vtmp]",
			"[vtmp]copy[vout]",
			"{0a}anull[aout]",
		},
	}
}

func buildImages(req Request) Fragment {
	chosen := req.Pools.Pick(req.Rand, "images")
	if chosen == "" {
		return Passthrough()
	}
	return Fragment{
		ExtraInputs: []string{chosen},
		Filters: []string{
			"{0v}{1v}overlay=enable='between(t,1,4)':x=main_w/4:y=main_h/4:alpha='if(lt(t,2),0,1)'[vtmp]",
			"[vtmp]copy[vout]",
			"{0a}anull[aout]",
		},
	}
}

func buildOverlayVideos(req Request) Fragment {
	chosen := req.Pools.Pick(req.Rand, "overlay_videos")
	if chosen == "" {
		return Passthrough()
	}
	return Fragment{
		ExtraInputs: []string{chosen},
		Filters: []string{
			"{0v}{1v}overlay=10:10:shortest=1[vtmp]",
			"[vtmp]copy[vout]",
			"{0a}anull[aout]",
		},
	}
}

// localAudioRef returns the local audio placeholder for the n-th extra input,
// so builders that consume a variable number of inputs ({1a} when only the
// sound was found, {2a} when an image precedes it) report references that
// match their actual ExtraInputs positions.
func localAudioRef(position int) string {
	return fmt.Sprintf("{%da}", position)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// formatFloat renders a float the way ffmpeg filter arguments expect: no
// exponent, no trailing zeros beyond what the value needs.
func formatFloat(value float64) string {
	s := fmt.Sprintf("%.6f", value)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
