package main

import (
	"fmt"
	"strconv"
	"strings"

	"mangler/internal/effects"
	"mangler/internal/plan"
)

// parseEffectFlags turns repeated --effect values into compiler selections.
//
// Each value is key[=intensity[:probability]]. Intensity 0 (or omitted) uses
// the catalog default; probability defaults to 1 and must sit in [0,1].
func parseEffectFlags(specs []string) (map[string]plan.Selection, error) {
	selections := make(map[string]plan.Selection, len(specs))
	for _, spec := range specs {
		key, sel, err := parseEffectSpec(spec)
		if err != nil {
			return nil, err
		}
		selections[key] = sel
	}
	return selections, nil
}

func parseEffectSpec(spec string) (string, plan.Selection, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return "", plan.Selection{}, fmt.Errorf("empty effect spec")
	}

	key := trimmed
	value := ""
	if idx := strings.IndexByte(trimmed, '='); idx >= 0 {
		key = strings.TrimSpace(trimmed[:idx])
		value = strings.TrimSpace(trimmed[idx+1:])
	}

	desc, _, ok := effects.Lookup(key)
	if !ok {
		return "", plan.Selection{}, fmt.Errorf("unknown effect %q (run 'mangler effects' for the catalog)", key)
	}

	sel := plan.Selection{Enabled: true, Probability: 1.0}
	if value == "" {
		return key, sel, nil
	}

	intensityText := value
	if idx := strings.IndexByte(value, ':'); idx >= 0 {
		intensityText = strings.TrimSpace(value[:idx])
		probabilityText := strings.TrimSpace(value[idx+1:])
		probability, err := strconv.ParseFloat(probabilityText, 64)
		if err != nil {
			return "", plan.Selection{}, fmt.Errorf("effect %s: bad probability %q", key, probabilityText)
		}
		if probability < 0 || probability > 1 {
			return "", plan.Selection{}, fmt.Errorf("effect %s: probability %v outside [0,1]", key, probability)
		}
		sel.Probability = probability
	}

	if intensityText != "" {
		intensity, err := strconv.ParseFloat(intensityText, 64)
		if err != nil {
			return "", plan.Selection{}, fmt.Errorf("effect %s: bad intensity %q", key, intensityText)
		}
		if intensity < 0 {
			return "", plan.Selection{}, fmt.Errorf("effect %s: intensity must not be negative", key)
		}
		if intensity > desc.MaxIntensity {
			return "", plan.Selection{}, fmt.Errorf("effect %s: intensity %v exceeds maximum %v", key, intensity, desc.MaxIntensity)
		}
		sel.Intensity = intensity
	}

	return key, sel, nil
}
