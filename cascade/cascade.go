// Package cascade computes the subset of a parsed stylesheet that applies
// to one node, resolving conflicts between matching selectors with a fixed
// priority-tier scheme.
//
// The tier numbers are deliberate and deliberately odd: tag carries the
// highest tier number but is evaluated first, while id carries a low tier
// number and is evaluated last. Combined with the "a later pass overwrites
// only when its tier number is less than or equal" rule the smaller tier
// number always ends up winning, so the net precedence is universal > id >
// class > tag. The scheme is preserved verbatim from the product's
// observed behavior and intentionally differs from standard CSS
// specificity.
package cascade

import (
	"sort"
	"strings"

	"uicss/css"
)

// Priority tiers, one per selector match pass.
const (
	TierUniversal = 0
	TierID        = 1
	TierClass     = 2
	TierTag       = 3
)

// Pseudo-classes the engine widens every base token with, so that a plain
// match also pulls in its state-qualified variants for later overlay use.
var pseudoClasses = []string{"hover", "focus", "read-only", "disabled", "invalid"}

// NodeIdentity carries the three selector axes a node exposes: optional
// tag name, optional id and zero or more classes. It is supplied by the
// tree-construction collaborator, not owned by the engine.
type NodeIdentity struct {
	Tag     string
	ID      string
	Classes []string
}

// Match is one retained stylesheet entry together with the tier of the
// pass that selected it.
type Match struct {
	Pair css.StylePair
	Tier int
}

// UiStyle is the per-node resolved artifact: the filtered rule set, the
// sheet's full keyframe map and an optional transient override that takes
// precedence over the filtered cascade while a state overlay is active.
type UiStyle struct {
	Source    css.Handle
	Styles    map[string]Match
	Keyframes map[string][]css.AnimationKeyframe

	// ActiveStyle, when set, is authoritative wholesale - it is swapped
	// in and out by the overlay consumer, never merged field by field
	// here.
	ActiveStyle *css.Style
}

// Filter computes the node's filtered style from the full parsed sheet.
// One match pass runs per selector axis in fixed order: tag, universal,
// each class in list order, id. Keyframes pass through unfiltered and
// ActiveStyle starts nil. Filter is pure: fixed inputs give identical
// results across calls.
func Filter(sheet *css.ParsedStylesheet, source css.Handle, node NodeIdentity) *UiStyle {
	ui := &UiStyle{
		Source: source,
		Styles: make(map[string]Match),
	}
	if sheet == nil {
		ui.Keyframes = make(map[string][]css.AnimationKeyframe)
		return ui
	}
	ui.Keyframes = sheet.Keyframes

	if node.Tag != "" {
		collect(sheet, node.Tag, TierTag, ui.Styles)
	}
	collect(sheet, "*", TierUniversal, ui.Styles)
	for _, class := range node.Classes {
		if class != "" {
			collect(sheet, "."+class, TierClass, ui.Styles)
		}
	}
	if node.ID != "" {
		collect(sheet, "#"+node.ID, TierID, ui.Styles)
	}

	return ui
}

// collect runs one match pass: every sheet entry whose selector matches
// the base token (or any of its pseudo-class-qualified variants) is folded
// into acc. An entry already present is overwritten only when this pass's
// tier number is less than or equal to the recorded one.
func collect(sheet *css.ParsedStylesheet, base string, tier int, acc map[string]Match) {
	for key, pair := range sheet.Styles {
		sel := pair.Selector
		if sel == "" {
			sel = key
		}

		if !matchesBase(sel, base) {
			continue
		}

		if prev, ok := acc[key]; ok && tier > prev.Tier {
			continue
		}
		acc[key] = Match{Pair: pair, Tier: tier}
	}
}

// matchesBase reports whether selector text matches a base token directly
// or through one of the known pseudo-class suffixes.
func matchesBase(sel, base string) bool {
	if matchesToken(sel, base) {
		return true
	}
	for _, pseudo := range pseudoClasses {
		if matchesToken(sel, base+":"+pseudo) {
			return true
		}
	}
	return false
}

// matchesToken applies the lenient substring semantics used in place of a
// full selector grammar: exact equality, pseudo-class prefix, suffix
// position in a compound, or whitespace-surrounded containment.
func matchesToken(sel, token string) bool {
	if sel == token {
		return true
	}
	if strings.HasPrefix(sel, token+":") {
		return true
	}
	if strings.HasSuffix(sel, token) {
		return true
	}
	return strings.Contains(sel, " "+token+" ")
}

// Styled returns the match for a selector key, if retained.
func (u *UiStyle) Styled(key string) (Match, bool) {
	m, ok := u.Styles[key]
	return m, ok
}

// Effective flattens the filtered cascade for consumers that want one
// Style: matches are folded from the highest tier number down to the
// lowest, so lower tier numbers override. Pseudo-class qualified entries
// are skipped - they only participate via overlays. When ActiveStyle is
// set it wins wholesale.
func (u *UiStyle) Effective() css.Style {
	if u.ActiveStyle != nil {
		return *u.ActiveStyle
	}

	keys := make([]string, 0, len(u.Styles))
	for k := range u.Styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out css.Style
	for tier := TierTag; tier >= TierUniversal; tier-- {
		for _, k := range keys {
			m := u.Styles[k]
			if m.Tier != tier {
				continue
			}
			if strings.Contains(m.Pair.Selector, ":") {
				continue
			}
			out = out.Merge(m.Pair.Normal)
		}
	}
	return out
}
