package cascade_test

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"uicss/cascade"
	"uicss/css"
)

func parseSheet(t *testing.T, src string) *css.ParsedStylesheet {
	t.Helper()
	return css.NewParser(zap.NewNop()).Parse([]byte(src))
}

func TestFilter_Deterministic(t *testing.T) {
	sheet := parseSheet(t, `
button { width: 10px }
.primary { color: red }
#go { background: blue }
* { opacity: 1 }
button:hover { background: green }
`)
	node := cascade.NodeIdentity{Tag: "button", ID: "go", Classes: []string{"primary"}}

	first := cascade.Filter(sheet, "sheet", node)
	second := cascade.Filter(sheet, "sheet", node)

	if !reflect.DeepEqual(first.Styles, second.Styles) {
		t.Error("identical inputs must produce identical filtered styles")
	}
	if first.Effective() != second.Effective() {
		t.Error("identical inputs must produce identical effective styles")
	}
}

func TestFilter_TierTagging(t *testing.T) {
	sheet := parseSheet(t, `
button { width: 10px }
.primary { color: red }
#go { background: blue }
* { opacity: 1 }
`)
	node := cascade.NodeIdentity{Tag: "button", ID: "go", Classes: []string{"primary"}}
	ui := cascade.Filter(sheet, "sheet", node)

	wantTiers := map[string]int{
		"button":   cascade.TierTag,
		".primary": cascade.TierClass,
		"#go":      cascade.TierID,
		"*":        cascade.TierUniversal,
	}
	if len(ui.Styles) != len(wantTiers) {
		t.Fatalf("retained %d entries, want %d: %v", len(ui.Styles), len(wantTiers), ui.Styles)
	}
	for sel, tier := range wantTiers {
		m, ok := ui.Styled(sel)
		if !ok {
			t.Fatalf("selector %q not retained", sel)
		}
		if m.Tier != tier {
			t.Errorf("selector %q tier = %d, want %d", sel, m.Tier, tier)
		}
	}
}

func TestFilter_LaterPassOverwritesSharedKey(t *testing.T) {
	// the id selector text also suffix-matches the bare tag "hero", so the
	// tag pass records it first and the id pass must take it back
	sheet := parseSheet(t, `#hero { color: red }`)
	node := cascade.NodeIdentity{Tag: "hero", ID: "hero"}

	ui := cascade.Filter(sheet, "sheet", node)
	m, ok := ui.Styled("#hero")
	if !ok {
		t.Fatal("selector not retained")
	}
	if m.Tier != cascade.TierID {
		t.Errorf("tier = %d, want id pass (%d) to overwrite tag pass", m.Tier, cascade.TierID)
	}
}

func TestFilter_EffectivePrecedence(t *testing.T) {
	sheet := parseSheet(t, `
div { color: red; width: 10px }
.card { color: blue; height: 5px }
#hero { color: #00ff00 }
`)
	node := cascade.NodeIdentity{Tag: "div", ID: "hero", Classes: []string{"card"}}

	out := cascade.Filter(sheet, "sheet", node).Effective()

	if got := out.Color.String(); got != "#00ff00ff" {
		t.Errorf("color = %s, want id rule to win", got)
	}
	if out.Width.Raw != "10px" {
		t.Error("uncontested tag property lost")
	}
	if out.Height.Raw != "5px" {
		t.Error("uncontested class property lost")
	}
}

func TestFilter_UniversalFallback(t *testing.T) {
	sheet := parseSheet(t, `* { color: red }`)
	node := cascade.NodeIdentity{Tag: "label"}

	ui := cascade.Filter(sheet, "sheet", node)
	m, ok := ui.Styled("*")
	if !ok {
		t.Fatal("universal rule not retained")
	}
	if m.Tier != cascade.TierUniversal {
		t.Errorf("tier = %d, want %d", m.Tier, cascade.TierUniversal)
	}
	if got := ui.Effective().Color.R; got != 0xff {
		t.Errorf("effective color red channel = %d, want 255", got)
	}
}

func TestFilter_PseudoVariantsIncluded(t *testing.T) {
	sheet := parseSheet(t, `
button { background: blue }
button:hover { background: red }
button:disabled { opacity: 0.4 }
input:focus { color: green }
`)
	node := cascade.NodeIdentity{Tag: "button"}
	ui := cascade.Filter(sheet, "sheet", node)

	for _, sel := range []string{"button", "button:hover", "button:disabled"} {
		if _, ok := ui.Styled(sel); !ok {
			t.Errorf("selector %q not retained", sel)
		}
	}
	if _, ok := ui.Styled("input:focus"); ok {
		t.Error("foreign pseudo variant retained")
	}
	if ui.ActiveStyle != nil {
		t.Error("filtering must not activate an overlay")
	}

	// pseudo variants wait for overlays, the base cascade ignores them
	if got := ui.Effective().Background.B; got != 0xff {
		t.Errorf("effective background = %s, want plain rule", ui.Effective().Background)
	}
	if ui.Effective().Opacity.IsSet() {
		t.Error("disabled variant leaked into base cascade")
	}
}

func TestFilter_ClassListOrder(t *testing.T) {
	sheet := parseSheet(t, `
.a { color: red }
.b { color: blue }
`)
	node := cascade.NodeIdentity{Tag: "div", Classes: []string{"a", "b"}}
	ui := cascade.Filter(sheet, "sheet", node)

	if len(ui.Styles) != 2 {
		t.Fatalf("retained %d entries, want 2", len(ui.Styles))
	}
	// both passes share a tier, fold order is deterministic by key
	if got := ui.Effective().Color.B; got != 0xff {
		t.Errorf("effective color = %s, want .b to win by fold order", ui.Effective().Color)
	}
}

func TestFilter_NilSheet(t *testing.T) {
	ui := cascade.Filter(nil, "sheet", cascade.NodeIdentity{Tag: "div"})

	if len(ui.Styles) != 0 {
		t.Error("nil sheet must yield no matches")
	}
	if ui.Keyframes == nil {
		t.Error("keyframes map must be usable")
	}
	if !ui.Effective().IsZero() {
		t.Error("nil sheet must yield the zero style")
	}
}

func TestFilter_KeyframesPassThrough(t *testing.T) {
	sheet := parseSheet(t, `
@keyframes pulse {
    from { opacity: 1 }
    to { opacity: 0 }
}
div { width: 1px }
`)
	ui := cascade.Filter(sheet, "sheet", cascade.NodeIdentity{Tag: "span"})

	if len(ui.Keyframes["pulse"]) != 2 {
		t.Error("keyframes must pass through unfiltered even when no rule matches")
	}
}

func TestEffective_ActiveStyleWinsWholesale(t *testing.T) {
	sheet := parseSheet(t, `
button { background: blue; width: 10px }
`)
	ui := cascade.Filter(sheet, "sheet", cascade.NodeIdentity{Tag: "button"})

	var override css.Style
	override.Apply("background", css.ParseValue("red"))
	ui.ActiveStyle = &override

	out := ui.Effective()
	if out.Background.R != 0xff {
		t.Errorf("background = %s, want override", out.Background)
	}
	if out.Width.IsSet() {
		t.Error("override must win wholesale, not merge with the cascade")
	}

	ui.ActiveStyle = nil
	if !ui.Effective().Width.IsSet() {
		t.Error("clearing the override must restore the cascade")
	}
}
