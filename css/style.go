package css

import (
	"strings"
)

// Style is a flat record of every visual/layout property the engine can
// resolve. The zero Style is fully "unset": a field left at its zero value
// means the property was absent and must not override anything downstream.
type Style struct {
	// Dimensions
	Width, Height       Value
	MinWidth, MinHeight Value
	MaxWidth, MaxHeight Value

	// Position offsets
	Left, Top, Right, Bottom Value
	Position                 Value // static, relative, absolute
	ZIndex                   Value

	// Spacing
	Padding Sides
	Margin  Sides

	// Border
	BorderWidth  Sides
	BorderColor  Color
	BorderRadius Corners

	// Paint
	Color      Color // foreground/text
	Background Color
	Opacity    Value
	Shadow     Shadow

	// Typography
	FontSize      Value
	FontWeight    Value
	LineHeight    Value
	LetterSpacing Value
	TextAlign     Value
	Font          FontVal

	// Flex layout
	Display        Value // block, flex, grid, none
	FlexDirection  Value
	FlexWrap       Value
	FlexGrow       Value
	FlexShrink     Value
	FlexBasis      Value
	JustifyContent Value
	AlignItems     Value
	AlignSelf      Value
	RowGap         Value
	ColumnGap      Value

	// Widget extras
	IconPlace IconPlace
}

// IsZero returns true if no property of the style is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge returns a copy of s with every set field of over applied on top.
// Unset fields of over leave the receiver's values untouched.
func (s Style) Merge(over Style) Style {
	mergeValue := func(dst *Value, src Value) {
		if src.IsSet() {
			*dst = src
		}
	}
	mergeColor := func(dst *Color, src Color) {
		if src.IsSet() {
			*dst = src
		}
	}
	mergeSides := func(dst *Sides, src Sides) {
		mergeValue(&dst.Top, src.Top)
		mergeValue(&dst.Right, src.Right)
		mergeValue(&dst.Bottom, src.Bottom)
		mergeValue(&dst.Left, src.Left)
	}

	out := s

	mergeValue(&out.Width, over.Width)
	mergeValue(&out.Height, over.Height)
	mergeValue(&out.MinWidth, over.MinWidth)
	mergeValue(&out.MinHeight, over.MinHeight)
	mergeValue(&out.MaxWidth, over.MaxWidth)
	mergeValue(&out.MaxHeight, over.MaxHeight)

	mergeValue(&out.Left, over.Left)
	mergeValue(&out.Top, over.Top)
	mergeValue(&out.Right, over.Right)
	mergeValue(&out.Bottom, over.Bottom)
	mergeValue(&out.Position, over.Position)
	mergeValue(&out.ZIndex, over.ZIndex)

	mergeSides(&out.Padding, over.Padding)
	mergeSides(&out.Margin, over.Margin)

	mergeSides(&out.BorderWidth, over.BorderWidth)
	mergeColor(&out.BorderColor, over.BorderColor)
	mergeValue(&out.BorderRadius.TopLeft, over.BorderRadius.TopLeft)
	mergeValue(&out.BorderRadius.TopRight, over.BorderRadius.TopRight)
	mergeValue(&out.BorderRadius.BottomRight, over.BorderRadius.BottomRight)
	mergeValue(&out.BorderRadius.BottomLeft, over.BorderRadius.BottomLeft)

	mergeColor(&out.Color, over.Color)
	mergeColor(&out.Background, over.Background)
	mergeValue(&out.Opacity, over.Opacity)
	if over.Shadow.IsSet() {
		out.Shadow = over.Shadow
	}

	mergeValue(&out.FontSize, over.FontSize)
	mergeValue(&out.FontWeight, over.FontWeight)
	mergeValue(&out.LineHeight, over.LineHeight)
	mergeValue(&out.LetterSpacing, over.LetterSpacing)
	mergeValue(&out.TextAlign, over.TextAlign)
	if over.Font != FontValDefault {
		out.Font = over.Font
	}

	mergeValue(&out.Display, over.Display)
	mergeValue(&out.FlexDirection, over.FlexDirection)
	mergeValue(&out.FlexWrap, over.FlexWrap)
	mergeValue(&out.FlexGrow, over.FlexGrow)
	mergeValue(&out.FlexShrink, over.FlexShrink)
	mergeValue(&out.FlexBasis, over.FlexBasis)
	mergeValue(&out.JustifyContent, over.JustifyContent)
	mergeValue(&out.AlignItems, over.AlignItems)
	mergeValue(&out.AlignSelf, over.AlignSelf)
	mergeValue(&out.RowGap, over.RowGap)
	mergeValue(&out.ColumnGap, over.ColumnGap)

	if over.IconPlace != IconPlaceNone {
		out.IconPlace = over.IconPlace
	}

	return out
}

// Apply dispatches a single declaration onto the style. Shorthand
// properties are expanded; unknown properties are reported via the
// returned bool so the caller can decide how loudly to complain.
func (s *Style) Apply(name string, v Value) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "width":
		s.Width = v
	case "height":
		s.Height = v
	case "min-width":
		s.MinWidth = v
	case "min-height":
		s.MinHeight = v
	case "max-width":
		s.MaxWidth = v
	case "max-height":
		s.MaxHeight = v

	case "left":
		s.Left = v
	case "top":
		s.Top = v
	case "right":
		s.Right = v
	case "bottom":
		s.Bottom = v
	case "position":
		s.Position = v
	case "z-index":
		s.ZIndex = v

	case "padding":
		if sides, ok := expandSides(v.Raw); ok {
			s.Padding = sides
		}
	case "padding-top":
		s.Padding.Top = v
	case "padding-right":
		s.Padding.Right = v
	case "padding-bottom":
		s.Padding.Bottom = v
	case "padding-left":
		s.Padding.Left = v

	case "margin":
		if sides, ok := expandSides(v.Raw); ok {
			s.Margin = sides
		}
	case "margin-top":
		s.Margin.Top = v
	case "margin-right":
		s.Margin.Right = v
	case "margin-bottom":
		s.Margin.Bottom = v
	case "margin-left":
		s.Margin.Left = v

	case "border-width":
		if sides, ok := expandSides(v.Raw); ok {
			s.BorderWidth = sides
		}
	case "border-color":
		s.BorderColor = ParseColor(v.Raw)
	case "border":
		s.applyBorderShorthand(v.Raw)
	case "border-radius":
		if corners, ok := expandCorners(v.Raw); ok {
			s.BorderRadius = corners
		}

	case "color":
		s.Color = ParseColor(v.Raw)
	case "background", "background-color":
		s.Background = ParseColor(v.Raw)
	case "opacity":
		s.Opacity = v
	case "box-shadow":
		if sh, ok := parseShadow(v.Raw); ok {
			s.Shadow = sh
		}

	case "font-size":
		s.FontSize = v
	case "font-weight":
		s.FontWeight = v
	case "line-height":
		s.LineHeight = v
	case "letter-spacing":
		s.LetterSpacing = v
	case "text-align":
		s.TextAlign = v
	case "font-family":
		s.Font = ParseFontVal(v.Raw)

	case "display":
		s.Display = v
	case "flex-direction":
		s.FlexDirection = v
	case "flex-wrap":
		s.FlexWrap = v
	case "flex-grow":
		s.FlexGrow = v
	case "flex-shrink":
		s.FlexShrink = v
	case "flex-basis":
		s.FlexBasis = v
	case "justify-content":
		s.JustifyContent = v
	case "align-items":
		s.AlignItems = v
	case "align-self":
		s.AlignSelf = v
	case "gap":
		parts := strings.Fields(v.Raw)
		switch len(parts) {
		case 1:
			s.RowGap = ParseValue(parts[0])
			s.ColumnGap = s.RowGap
		case 2:
			s.RowGap = ParseValue(parts[0])
			s.ColumnGap = ParseValue(parts[1])
		}
	case "row-gap":
		s.RowGap = v
	case "column-gap":
		s.ColumnGap = v

	case "icon-place":
		s.IconPlace = ParseIconPlace(v.Raw)

	default:
		return false
	}
	return true
}

// applyBorderShorthand handles "border: <width> <style> <color>". The line
// style component is accepted and dropped - the engine only models width
// and color.
func (s *Style) applyBorderShorthand(raw string) {
	for _, part := range strings.Fields(raw) {
		if c := ParseColor(part); c.IsSet() {
			s.BorderColor = c
			continue
		}
		v := ParseValue(part)
		if v.IsNumeric() {
			if sides, ok := expandSides(part); ok {
				s.BorderWidth = sides
			}
		}
	}
}
