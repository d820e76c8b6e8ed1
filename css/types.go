package css

import (
	"sort"
)

// StylePair is the unit stored per selector key: the original selector
// text plus the resolved style bundle for that rule. Pseudo-class variants
// ("button:hover") live under their own keys; Normal is always the rule's
// own declaration set.
type StylePair struct {
	Selector string // Original selector text, used for suffix/containment matching
	Normal   Style
}

// AnimationKeyframe is one offset-tagged point along an animation timeline.
// Offset is in 0.0..=1.0; Style is partial (unset fields do not override).
type AnimationKeyframe struct {
	Offset float64
	Style  Style
}

// ParsedStylesheet is the product of parsing one stylesheet source.
// It is never mutated after construction: reload semantics replace the
// whole value.
type ParsedStylesheet struct {
	// Styles maps selector key to its rule. The key normally equals
	// StylePair.Selector but matching always prefers the pair's own
	// selector text when present.
	Styles map[string]StylePair

	// Keyframes maps animation name to its keyframe sequence in source
	// order. Offsets are stored as parsed - no monotonicity validation.
	Keyframes map[string][]AnimationKeyframe

	// Warnings collects non-fatal notes for unsupported constructs.
	Warnings []string
}

// NewParsedStylesheet returns an empty, usable stylesheet.
func NewParsedStylesheet() *ParsedStylesheet {
	return &ParsedStylesheet{
		Styles:    make(map[string]StylePair),
		Keyframes: make(map[string][]AnimationKeyframe),
	}
}

// Empty returns true if the sheet holds no rules and no keyframes.
func (s *ParsedStylesheet) Empty() bool {
	return len(s.Styles) == 0 && len(s.Keyframes) == 0
}

// SelectorKeys returns all selector keys in sorted order, for
// deterministic iteration in tests and dumps.
func (s *ParsedStylesheet) SelectorKeys() []string {
	keys := make([]string, 0, len(s.Styles))
	for k := range s.Styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports structural equality of two sheets (styles and keyframes
// content-equal). Warnings are advisory and not compared.
func (s *ParsedStylesheet) Equal(other *ParsedStylesheet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Styles) != len(other.Styles) || len(s.Keyframes) != len(other.Keyframes) {
		return false
	}
	for k, pair := range s.Styles {
		if other.Styles[k] != pair {
			return false
		}
	}
	for name, frames := range s.Keyframes {
		otherFrames, ok := other.Keyframes[name]
		if !ok || len(otherFrames) != len(frames) {
			return false
		}
		for i := range frames {
			if frames[i] != otherFrames[i] {
				return false
			}
		}
	}
	return true
}
