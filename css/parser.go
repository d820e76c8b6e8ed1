package css

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses stylesheet text into a ParsedStylesheet. Parsing is
// lenient: anything the parser cannot confidently interpret is skipped and
// the remainder of the input is still processed. Parse never fails.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new stylesheet parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses stylesheet text. The optional source parameter identifies
// what is being parsed (for debug logging only).
func (p *Parser) Parse(data []byte, source ...string) *ParsedStylesheet {
	sheet := NewParsedStylesheet()

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing stylesheet", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				// the iterator recovers at the next rule boundary, so a
				// top-level syntax error only costs the broken construct
				p.log.Debug("Skipping malformed construct", zap.Error(err))
				continue
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := string(data)
			if atRule == "@keyframes" {
				name := atRuleName(parser.Values())
				if name == "" {
					p.log.Debug("Skipping @keyframes without a name")
					p.skipAtRuleBlock(parser)
					continue
				}
				frames := p.parseKeyframes(parser)
				sheet.Keyframes[name] = frames
				p.log.Debug("Parsed @keyframes", zap.String("name", name), zap.Int("frames", len(frames)))
			} else {
				p.skipAtRuleBlock(parser)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.AtRuleGrammar:
			// Simple @-rule without block (@import and friends) - out of scope
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.BeginRulesetGrammar:
			selectors := p.parseSelectors(data, parser.Values())
			props := p.parseDeclarations(parser)
			for _, selStr := range selectors {
				p.storeRule(sheet, selStr, props)
			}

		case css.QualifiedRuleGrammar:
			// Selector without a block - nothing to store
			p.log.Debug("Skipping qualified rule", zap.String("prelude", string(data)))
		}
	}
}

// storeRule folds a rule into the sheet under its selector key. A repeated
// selector merges its declarations over the earlier ones, the way later
// rules win within equal specificity.
func (p *Parser) storeRule(sheet *ParsedStylesheet, selStr string, props map[string]Value) {
	if !p.supportedSelector(sheet, selStr) {
		return
	}

	var style Style
	for name, v := range props {
		if !style.Apply(name, v) {
			p.log.Debug("Ignoring unknown property", zap.String("selector", selStr), zap.String("property", name))
		}
	}

	if existing, ok := sheet.Styles[selStr]; ok {
		existing.Normal = existing.Normal.Merge(style)
		sheet.Styles[selStr] = existing
		return
	}
	sheet.Styles[selStr] = StylePair{Selector: selStr, Normal: style}
}

// supportedSelector rejects selector forms the cascade cannot match.
// Rejection is lenient: the rule is dropped with a warning, parsing
// continues.
func (p *Parser) supportedSelector(sheet *ParsedStylesheet, selStr string) bool {
	if selStr == "" {
		return false
	}
	if strings.ContainsAny(selStr, "+~>") {
		sheet.Warnings = append(sheet.Warnings, "unsupported combinator selector: "+selStr)
		p.log.Debug("Skipping combinator selector", zap.String("selector", selStr))
		return false
	}
	if strings.Contains(selStr, "[") {
		sheet.Warnings = append(sheet.Warnings, "unsupported attribute selector: "+selStr)
		p.log.Debug("Skipping attribute selector", zap.String("selector", selStr))
		return false
	}
	return true
}

// parseSelectors extracts normalized selector strings from token data.
// Grouped selectors ("a, .b") are split into separate entries; internal
// whitespace is collapsed so the cascade's containment matching sees
// single-space-separated compounds.
func (p *Parser) parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.Join(strings.Fields(s), " ")
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations consumes property declarations until the ruleset ends.
func (p *Parser) parseDeclarations(parser *css.Parser) map[string]Value {
	props := make(map[string]Value)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props

		case css.DeclarationGrammar:
			propName := strings.ToLower(string(data))
			values := parser.Values()
			if len(values) > 0 {
				props[propName] = p.parsePropertyValue(values)
			}

		case css.CustomPropertyGrammar:
			// CSS custom properties (--var) are out of scope
			continue
		}
	}
}

// parsePropertyValue converts declaration tokens to a Value.
func (p *Parser) parsePropertyValue(tokens []css.Token) Value {
	if len(tokens) == 0 {
		return Value{}
	}

	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			rawParts = append(rawParts, " ")
		}
	}
	raw := strings.TrimSpace(strings.Join(rawParts, ""))

	val := Value{Raw: raw}

	if len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken) {
		t := tokens[0]
		switch t.TokenType {
		case css.DimensionToken:
			parsed := ParseValue(string(t.Data))
			val.Value, val.Unit = parsed.Value, parsed.Unit
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = unquote(string(t.Data))
		case css.HashToken:
			// color literal
			val.Keyword = string(t.Data)
		}
		return val
	}

	// Function calls (rgb(), url()) and multi-value properties keep the
	// raw text; the style dispatch re-parses what it understands.
	val.Keyword = raw
	return val
}

// parseKeyframes consumes the body of an @keyframes block. Frame selectors
// may be "from", "to" or percentages, optionally grouped by comma. Frames
// keep source order; offsets are not validated for monotonicity.
func (p *Parser) parseKeyframes(parser *css.Parser) []AnimationKeyframe {
	var frames []AnimationKeyframe

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return frames

		case css.BeginRulesetGrammar:
			selectors := p.parseSelectors(data, parser.Values())
			props := p.parseDeclarations(parser)

			var style Style
			for name, v := range props {
				if !style.Apply(name, v) {
					p.log.Debug("Ignoring unknown keyframe property", zap.String("property", name))
				}
			}

			for _, sel := range selectors {
				offset, ok := keyframeOffset(sel)
				if !ok {
					p.log.Debug("Skipping keyframe with bad offset", zap.String("offset", sel))
					continue
				}
				frames = append(frames, AnimationKeyframe{Offset: offset, Style: style})
			}
		}
	}
}

// keyframeOffset maps a frame selector to its 0..1 offset.
func keyframeOffset(sel string) (float64, bool) {
	switch strings.ToLower(sel) {
	case "from":
		return 0, true
	case "to":
		return 1, true
	}
	if !strings.HasSuffix(sel, "%") {
		return 0, false
	}
	pct, err := strconv.ParseFloat(strings.TrimSuffix(sel, "%"), 64)
	if err != nil || pct < 0 || pct > 100 {
		return 0, false
	}
	return pct / 100, true
}

// atRuleName extracts the identifier following an at-rule keyword.
func atRuleName(tokens []css.Token) string {
	for _, t := range tokens {
		if t.TokenType == css.IdentToken {
			return string(t.Data)
		}
	}
	return ""
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
