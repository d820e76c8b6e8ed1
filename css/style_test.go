package css_test

import (
	"testing"

	"uicss/css"
)

func apply(t *testing.T, s *css.Style, name, raw string) {
	t.Helper()
	if !s.Apply(name, css.ParseValue(raw)) {
		t.Fatalf("property %q unexpectedly unknown", name)
	}
}

func TestStyle_ApplyBoxShorthands(t *testing.T) {
	var s css.Style

	apply(t, &s, "padding", "1px 2px")
	if s.Padding.Top.Raw != "1px" || s.Padding.Bottom.Raw != "1px" {
		t.Errorf("padding top/bottom = %q/%q, want 1px", s.Padding.Top.Raw, s.Padding.Bottom.Raw)
	}
	if s.Padding.Right.Raw != "2px" || s.Padding.Left.Raw != "2px" {
		t.Errorf("padding right/left = %q/%q, want 2px", s.Padding.Right.Raw, s.Padding.Left.Raw)
	}

	apply(t, &s, "margin", "1px 2px 3px 4px")
	if s.Margin.Top.Raw != "1px" || s.Margin.Right.Raw != "2px" || s.Margin.Bottom.Raw != "3px" || s.Margin.Left.Raw != "4px" {
		t.Errorf("margin = %+v, want 1px 2px 3px 4px", s.Margin)
	}

	apply(t, &s, "border-radius", "1px 2px 3px")
	if s.BorderRadius.TopLeft.Raw != "1px" || s.BorderRadius.TopRight.Raw != "2px" ||
		s.BorderRadius.BottomRight.Raw != "3px" || s.BorderRadius.BottomLeft.Raw != "2px" {
		t.Errorf("border-radius = %+v, want 1px 2px 3px 2px", s.BorderRadius)
	}

	apply(t, &s, "gap", "10px 20px")
	if s.RowGap.Raw != "10px" || s.ColumnGap.Raw != "20px" {
		t.Errorf("gap = %q/%q, want 10px/20px", s.RowGap.Raw, s.ColumnGap.Raw)
	}
	apply(t, &s, "gap", "5px")
	if s.RowGap.Raw != "5px" || s.ColumnGap.Raw != "5px" {
		t.Errorf("single gap = %q/%q, want 5px for both", s.RowGap.Raw, s.ColumnGap.Raw)
	}
}

func TestStyle_ApplyBorderShorthand(t *testing.T) {
	var s css.Style

	apply(t, &s, "border", "2px solid red")
	if s.BorderWidth.Top.Raw != "2px" || s.BorderWidth.Left.Raw != "2px" {
		t.Errorf("border width = %+v, want 2px all around", s.BorderWidth)
	}
	if s.BorderColor.R != 0xff {
		t.Errorf("border color = %s, want red", s.BorderColor)
	}
}

func TestStyle_ApplyBoxShadow(t *testing.T) {
	var s css.Style

	apply(t, &s, "box-shadow", "2px 4px 8px rgba(0, 0, 0, 0.5)")
	if s.Shadow.OffsetX.Raw != "2px" || s.Shadow.OffsetY.Raw != "4px" {
		t.Errorf("shadow offsets = %q/%q", s.Shadow.OffsetX.Raw, s.Shadow.OffsetY.Raw)
	}
	if s.Shadow.Blur.Raw != "8px" {
		t.Errorf("shadow blur = %q, want 8px", s.Shadow.Blur.Raw)
	}
	if s.Shadow.Color.A != 127 {
		t.Errorf("shadow alpha = %d, want 127", s.Shadow.Color.A)
	}

	var leading css.Style
	apply(t, &leading, "box-shadow", "red 1px 2px")
	if leading.Shadow.Color.R != 0xff || leading.Shadow.OffsetX.Raw != "1px" {
		t.Errorf("leading color shadow = %+v", leading.Shadow)
	}

	var none css.Style
	apply(t, &none, "box-shadow", "none")
	if none.Shadow.IsSet() {
		t.Error("box-shadow none must stay unset")
	}
}

func TestStyle_ApplyUnknownProperty(t *testing.T) {
	var s css.Style
	if s.Apply("frobnicate", css.ParseValue("1")) {
		t.Error("unknown property reported as applied")
	}
	if !s.IsZero() {
		t.Error("unknown property modified the style")
	}
}

func TestStyle_Merge(t *testing.T) {
	var base css.Style
	apply(t, &base, "width", "100px")
	apply(t, &base, "color", "red")
	apply(t, &base, "font-family", "monospace")

	var over css.Style
	apply(t, &over, "color", "blue")
	apply(t, &over, "opacity", "0.5")

	out := base.Merge(over)

	if out.Width.Raw != "100px" {
		t.Error("unset field of overlay must not clear base value")
	}
	if out.Color.B != 0xff || out.Color.R != 0 {
		t.Errorf("set field of overlay must win, color = %s", out.Color)
	}
	if out.Opacity.Value != 0.5 {
		t.Error("overlay-only field lost")
	}
	if out.Font != css.FontValMonospace {
		t.Error("font family lost when overlay leaves it default")
	}
	if base.Merge(css.Style{}) != base {
		t.Error("merging the zero style must be identity")
	}
}
