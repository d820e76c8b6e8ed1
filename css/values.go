package css

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsSet returns true if the value carries anything parsed from a declaration.
// The zero Value means "unset" - the property was absent from the rule.
func (v Value) IsSet() bool {
	return v.Raw != ""
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	// Handles the bare "0" case
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// ParseValue parses a single CSS value token string ("1.5em", "auto", "50%").
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	val := Value{Raw: s}
	if s == "" {
		return val
	}

	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		val.Keyword = strings.ToLower(s)
		return val
	}

	val.Value, _ = strconv.ParseFloat(s[:numEnd], 64)
	val.Unit = strings.ToLower(s[numEnd:])
	return val
}

// Color is a resolved RGBA color. The zero Color means "unset"
// (transparent, property absent).
type Color struct {
	Raw        string // Original CSS color string
	R, G, B, A uint8
}

// IsSet returns true if the color was present in a declaration.
func (c Color) IsSet() bool {
	return c.Raw != ""
}

// String returns the canonical #rrggbbaa form, or "" when unset.
func (c Color) String() string {
	if !c.IsSet() {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

var namedColors = map[string][3]uint8{
	"black":   {0x00, 0x00, 0x00},
	"white":   {0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00},
	"green":   {0x00, 0x80, 0x00},
	"blue":    {0x00, 0x00, 0xff},
	"yellow":  {0xff, 0xff, 0x00},
	"orange":  {0xff, 0xa5, 0x00},
	"purple":  {0x80, 0x00, 0x80},
	"cyan":    {0x00, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff},
	"gray":    {0x80, 0x80, 0x80},
	"grey":    {0x80, 0x80, 0x80},
	"silver":  {0xc0, 0xc0, 0xc0},
}

// ParseColor parses hex (#rgb, #rrggbb, #rrggbbaa), rgb()/rgba() and a small
// set of named colors. Anything it cannot interpret yields an unset Color.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}
	}
	lower := strings.ToLower(s)

	if lower == "transparent" {
		return Color{Raw: s}
	}
	if rgb, ok := namedColors[lower]; ok {
		return Color{Raw: s, R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBColor(s)
	}
	return Color{}
}

func parseHexColor(s string) Color {
	hex := s[1:]
	var r, g, b, a uint64
	a = 0xff
	var err error

	conv := func(part string) (uint64, error) {
		return strconv.ParseUint(part, 16, 8)
	}

	switch len(hex) {
	case 3, 4: // #rgb / #rgba
		if r, err = conv(strings.Repeat(hex[0:1], 2)); err != nil {
			return Color{}
		}
		if g, err = conv(strings.Repeat(hex[1:2], 2)); err != nil {
			return Color{}
		}
		if b, err = conv(strings.Repeat(hex[2:3], 2)); err != nil {
			return Color{}
		}
		if len(hex) == 4 {
			if a, err = conv(strings.Repeat(hex[3:4], 2)); err != nil {
				return Color{}
			}
		}
	case 6, 8: // #rrggbb / #rrggbbaa
		if r, err = conv(hex[0:2]); err != nil {
			return Color{}
		}
		if g, err = conv(hex[2:4]); err != nil {
			return Color{}
		}
		if b, err = conv(hex[4:6]); err != nil {
			return Color{}
		}
		if len(hex) == 8 {
			if a, err = conv(hex[6:8]); err != nil {
				return Color{}
			}
		}
	default:
		return Color{}
	}
	return Color{Raw: s, R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

func parseRGBColor(s string) Color {
	open := strings.Index(s, "(")
	end := strings.LastIndex(s, ")")
	if open == -1 || end == -1 || end < open {
		return Color{}
	}

	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}
	}

	channel := func(part string) (uint8, bool) {
		part = strings.TrimSpace(part)
		if strings.HasSuffix(part, "%") {
			pct, err := strconv.ParseFloat(strings.TrimSuffix(part, "%"), 64)
			if err != nil || pct < 0 {
				return 0, false
			}
			return uint8(min(pct, 100) / 100 * 255), true
		}
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return 0, false
		}
		return uint8(min(n, 255)), true
	}

	c := Color{Raw: s, A: 0xff}
	var ok bool
	if c.R, ok = channel(parts[0]); !ok {
		return Color{}
	}
	if c.G, ok = channel(parts[1]); !ok {
		return Color{}
	}
	if c.B, ok = channel(parts[2]); !ok {
		return Color{}
	}
	if len(parts) == 4 {
		alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || alpha < 0 {
			return Color{}
		}
		c.A = uint8(min(alpha, 1) * 255)
	}
	return c
}

// Sides holds per-side values for box properties (margin, padding, border-width).
type Sides struct {
	Top, Right, Bottom, Left Value
}

// IsSet returns true if any side was specified.
func (s Sides) IsSet() bool {
	return s.Top.IsSet() || s.Right.IsSet() || s.Bottom.IsSet() || s.Left.IsSet()
}

// expandSides applies the CSS box shorthand rules:
//   - 1 value: all sides
//   - 2 values: top/bottom, left/right
//   - 3 values: top, left/right, bottom
//   - 4 values: top, right, bottom, left
func expandSides(raw string) (Sides, bool) {
	parts := strings.Fields(strings.TrimSpace(raw))
	vals := make([]Value, len(parts))
	for i, p := range parts {
		vals[i] = ParseValue(p)
	}

	var s Sides
	switch len(vals) {
	case 1:
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[0], vals[0], vals[0]
	case 2:
		s.Top, s.Bottom = vals[0], vals[0]
		s.Right, s.Left = vals[1], vals[1]
	case 3:
		s.Top = vals[0]
		s.Right, s.Left = vals[1], vals[1]
		s.Bottom = vals[2]
	case 4:
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[1], vals[2], vals[3]
	default:
		return Sides{}, false
	}
	return s, true
}

// Corners holds per-corner radii for border-radius.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft Value
}

// IsSet returns true if any corner was specified.
func (c Corners) IsSet() bool {
	return c.TopLeft.IsSet() || c.TopRight.IsSet() || c.BottomRight.IsSet() || c.BottomLeft.IsSet()
}

// expandCorners applies the border-radius shorthand rules:
//   - 1 value: all corners
//   - 2 values: top-left/bottom-right, top-right/bottom-left
//   - 3 values: top-left, top-right/bottom-left, bottom-right
//   - 4 values: top-left, top-right, bottom-right, bottom-left
func expandCorners(raw string) (Corners, bool) {
	parts := strings.Fields(strings.TrimSpace(raw))
	vals := make([]Value, len(parts))
	for i, p := range parts {
		vals[i] = ParseValue(p)
	}

	var c Corners
	switch len(vals) {
	case 1:
		c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft = vals[0], vals[0], vals[0], vals[0]
	case 2:
		c.TopLeft, c.BottomRight = vals[0], vals[0]
		c.TopRight, c.BottomLeft = vals[1], vals[1]
	case 3:
		c.TopLeft = vals[0]
		c.TopRight, c.BottomLeft = vals[1], vals[1]
		c.BottomRight = vals[2]
	case 4:
		c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft = vals[0], vals[1], vals[2], vals[3]
	default:
		return Corners{}, false
	}
	return c, true
}

// Shadow represents a box-shadow declaration.
type Shadow struct {
	OffsetX, OffsetY Value
	Blur, Spread     Value
	Color            Color
}

// IsSet returns true if the shadow was specified.
func (s Shadow) IsSet() bool {
	return s.OffsetX.IsSet() || s.OffsetY.IsSet() || s.Color.IsSet()
}

// parseShadow parses "x y [blur [spread]] [color]". The color component may
// appear first or last; "none" yields an unset shadow.
func parseShadow(raw string) (Shadow, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "none") {
		return Shadow{}, false
	}

	var sh Shadow
	var dims []Value
	for _, part := range splitShadowParts(raw) {
		if c := ParseColor(part); c.IsSet() {
			sh.Color = c
			continue
		}
		dims = append(dims, ParseValue(part))
	}
	if len(dims) < 2 {
		return Shadow{}, false
	}

	sh.OffsetX, sh.OffsetY = dims[0], dims[1]
	if len(dims) > 2 {
		sh.Blur = dims[2]
	}
	if len(dims) > 3 {
		sh.Spread = dims[3]
	}
	return sh, true
}

// splitShadowParts splits on whitespace but keeps rgb()/rgba() calls intact.
func splitShadowParts(raw string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range raw {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case unicode.IsSpace(r) && depth == 0:
			if i > start {
				parts = append(parts, raw[start:i])
			}
			start = i + 1
		}
	}
	if start < len(raw) {
		parts = append(parts, raw[start:])
	}
	return parts
}

// Placement of a widget icon relative to its label.
type IconPlace int

const (
	IconPlaceNone IconPlace = iota
	IconPlaceLeft
	IconPlaceRight
	IconPlaceTop
	IconPlaceBottom
)

// String returns the CSS keyword for the placement.
func (p IconPlace) String() string {
	switch p {
	case IconPlaceLeft:
		return "left"
	case IconPlaceRight:
		return "right"
	case IconPlaceTop:
		return "top"
	case IconPlaceBottom:
		return "bottom"
	default:
		return "none"
	}
}

// ParseIconPlace maps a CSS keyword to an IconPlace. Unknown keywords
// yield IconPlaceNone.
func ParseIconPlace(s string) IconPlace {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return IconPlaceLeft
	case "right":
		return IconPlaceRight
	case "top":
		return IconPlaceTop
	case "bottom":
		return IconPlaceBottom
	default:
		return IconPlaceNone
	}
}

// FontVal selects one of the generic font families known to the engine.
type FontVal int

const (
	FontValDefault FontVal = iota
	FontValSerif
	FontValSansSerif
	FontValMonospace
	FontValCursive
)

// String returns the CSS keyword for the family.
func (f FontVal) String() string {
	switch f {
	case FontValSerif:
		return "serif"
	case FontValSansSerif:
		return "sans-serif"
	case FontValMonospace:
		return "monospace"
	case FontValCursive:
		return "cursive"
	default:
		return "default"
	}
}

// ParseFontVal maps a font-family value to a FontVal. Quoted or unknown
// family names fall back to FontValDefault; with stacked families the first
// recognized generic family wins.
func ParseFontVal(s string) FontVal {
	for part := range strings.SplitSeq(s, ",") {
		switch strings.ToLower(strings.Trim(strings.TrimSpace(part), `"'`)) {
		case "serif":
			return FontValSerif
		case "sans-serif", "sans serif", "sansserif":
			return FontValSansSerif
		case "monospace", "mono":
			return FontValMonospace
		case "cursive":
			return FontValCursive
		}
	}
	return FontValDefault
}
