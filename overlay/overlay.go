// Package overlay models the state-conditional style layers (hover,
// checked) applied on top of a node's filtered cascade. The engine only
// defines the data shape and the capability check; the interaction
// collaborator decides when a state channel turns on or off.
package overlay

import (
	"fmt"

	"uicss/cascade"
	"uicss/css"
)

// WidgetKind identifies the widget vocabulary a styling payload is valid
// for. Exactly one kind is valid per node.
type WidgetKind int

const (
	KindDiv WidgetKind = iota
	KindButton
	KindCheckBox
	KindSlider
	KindInput
	KindProgressBar
)

// String returns the widget kind name.
func (k WidgetKind) String() string {
	switch k {
	case KindDiv:
		return "div"
	case KindButton:
		return "button"
	case KindCheckBox:
		return "checkbox"
	case KindSlider:
		return "slider"
	case KindInput:
		return "input"
	case KindProgressBar:
		return "progressbar"
	default:
		return "unknown"
	}
}

// ParseWidgetKind converts a widget kind name to WidgetKind.
func ParseWidgetKind(s string) (WidgetKind, error) {
	for k := KindDiv; k <= KindProgressBar; k++ {
		if s == k.String() {
			return k, nil
		}
	}
	return KindDiv, fmt.Errorf("unsupported widget kind '%s'", s)
}

// KindNames returns names of all supported widget kinds.
func KindNames() []string {
	names := make([]string, 0, int(KindProgressBar)+1)
	for k := KindDiv; k <= KindProgressBar; k++ {
		names = append(names, k.String())
	}
	return names
}

// Styling is a widget-kind-tagged style payload, the same shape as the
// base cascade's rule styles. Construct it through the per-kind helpers so
// the tag always matches the payload's intent.
type Styling struct {
	Kind  WidgetKind
	Style css.Style
}

// DivStyling wraps a style payload for plain container nodes.
func DivStyling(s css.Style) Styling { return Styling{Kind: KindDiv, Style: s} }

// ButtonStyling wraps a style payload for button nodes.
func ButtonStyling(s css.Style) Styling { return Styling{Kind: KindButton, Style: s} }

// CheckBoxStyling wraps a style payload for checkbox nodes.
func CheckBoxStyling(s css.Style) Styling { return Styling{Kind: KindCheckBox, Style: s} }

// SliderStyling wraps a style payload for slider nodes.
func SliderStyling(s css.Style) Styling { return Styling{Kind: KindSlider, Style: s} }

// InputStyling wraps a style payload for text input nodes.
func InputStyling(s css.Style) Styling { return Styling{Kind: KindInput, Style: s} }

// ProgressBarStyling wraps a style payload for progress bar nodes.
func ProgressBarStyling(s css.Style) Styling { return Styling{Kind: KindProgressBar, Style: s} }

// Hover is the hover state channel wrapper. At most one Hover overlay is
// active on a node at a time; it is independent of the Checked channel.
type Hover struct {
	Styling Styling
}

// Checked is the checked state channel wrapper.
type Checked struct {
	Styling Styling
}

// Apply promotes the hover payload to the node's active style. A payload
// tagged for a different widget kind is ignored and false is returned -
// never a panic.
func (h Hover) Apply(kind WidgetKind, ui *cascade.UiStyle) bool {
	return apply(h.Styling, kind, ui)
}

// Apply promotes the checked payload to the node's active style, with the
// same capability check as Hover.
func (c Checked) Apply(kind WidgetKind, ui *cascade.UiStyle) bool {
	return apply(c.Styling, kind, ui)
}

func apply(styling Styling, kind WidgetKind, ui *cascade.UiStyle) bool {
	if ui == nil || styling.Kind != kind {
		return false
	}
	style := styling.Style
	ui.ActiveStyle = &style
	return true
}

// Clear drops any active override, reverting the node to its filtered
// cascade. Called when the overlay's state channel ends.
func Clear(ui *cascade.UiStyle) {
	if ui != nil {
		ui.ActiveStyle = nil
	}
}
