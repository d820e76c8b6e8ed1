// Package inspect implements the command line entry points of the engine:
// parsing stylesheets, resolving node styles and scanning HTML documents
// with embedded styles.
package inspect

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"uicss/assets"
	"uicss/cascade"
	"uicss/config"
	"uicss/css"
	"uicss/overlay"
	"uicss/state"
)

//go:embed default.css
var defaultStylesheet []byte

// Parse loads a stylesheet, runs it through the cache and reports what the
// parser understood: selectors, animations and leniency warnings.
func Parse(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	h, name, err := loadSheet(env, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	log.Info("Parsing stylesheet", zap.String("source", name))
	defer func(start time.Time) {
		log.Info("Parsing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	sheet := env.Cache.GetOrParse(h, env.Assets.Provider())

	summary := sheetSummary{
		Source:     name,
		Selectors:  sheet.SelectorKeys(),
		Animations: animationNames(sheet),
		Warnings:   sheet.Warnings,
	}
	sort.Sort(natural.StringSlice(summary.Selectors))

	return output(env, cmd.String("format"), "parse", summary)
}

// Resolve computes the style of a single node described on the command
// line and prints matched selectors together with the folded style.
func Resolve(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	node := cascade.NodeIdentity{
		Tag:     cmd.String("tag"),
		ID:      cmd.String("id"),
		Classes: cmd.StringSlice("class"),
	}
	if len(node.Tag) == 0 && len(node.ID) == 0 && len(node.Classes) == 0 {
		return errors.New("no node has been specified, use --tag, --id or --class")
	}

	h, name, err := loadSheet(env, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	sheet := env.Cache.GetOrParse(h, env.Assets.Provider())
	ui := cascade.Filter(sheet, h, node)

	kind, err := overlay.ParseWidgetKind(cmd.String("kind"))
	if err != nil {
		log.Warn("Unknown widget kind requested, treating node as div", zap.Error(err))
		kind = overlay.KindDiv
	}
	if st := cmd.String("state"); len(st) > 0 {
		if err := applyState(ui, kind, st); err != nil {
			return err
		}
	}

	log.Info("Resolved node style",
		zap.String("source", name),
		zap.String("tag", node.Tag),
		zap.String("id", node.ID),
		zap.Strings("classes", node.Classes),
		zap.Int("matches", len(ui.Styles)))

	res := resolveSummary{
		Source:    name,
		Matches:   matchList(ui),
		Effective: ui.Effective(),
	}
	return output(env, cmd.String("format"), "resolve", res)
}

// applyState promotes the matched rules of the requested interaction state
// to the node's active style.
func applyState(ui *cascade.UiStyle, kind overlay.WidgetKind, st string) error {
	style := stateStyle(ui, ":"+st)
	styling := overlay.Styling{Kind: kind, Style: style}

	var ok bool
	switch st {
	case "hover":
		ok = overlay.Hover{Styling: styling}.Apply(kind, ui)
	case "checked":
		ok = overlay.Checked{Styling: styling}.Apply(kind, ui)
	default:
		return fmt.Errorf("unsupported interaction state '%s'", st)
	}
	if !ok {
		return fmt.Errorf("unable to apply state '%s' to widget kind '%s'", st, kind)
	}
	return nil
}

// stateStyle folds the matched rules carrying the given pseudo suffix,
// widest tier first.
func stateStyle(ui *cascade.UiStyle, suffix string) css.Style {
	keys := make([]string, 0, len(ui.Styles))
	for k := range ui.Styles {
		if strings.HasSuffix(k, suffix) {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		ti, tj := ui.Styles[keys[i]].Tier, ui.Styles[keys[j]].Tier
		if ti != tj {
			return ti > tj
		}
		return keys[i] < keys[j]
	})

	var style css.Style
	for _, k := range keys {
		style = style.Merge(ui.Styles[k].Pair.Normal)
	}
	return style
}

// loadSheet resolves the stylesheet source for a command: explicit path
// argument first, configured default path next, embedded defaults last.
func loadSheet(env *state.LocalEnv, path string) (css.Handle, string, error) {
	if len(path) == 0 {
		path = env.Cfg.Styles.Path
	}
	if len(path) == 0 {
		h := assets.NewHandle()
		env.Assets.Put(h, string(defaultStylesheet))
		return h, "embedded defaults", nil
	}
	h, err := env.Assets.LoadFile(path)
	if err != nil {
		return h, path, fmt.Errorf("unable to load stylesheet: %w", err)
	}
	return h, path, nil
}

type sheetSummary struct {
	Source     string   `yaml:"source" json:"source"`
	Selectors  []string `yaml:"selectors" json:"selectors"`
	Animations []string `yaml:"animations,omitempty" json:"animations,omitempty"`
	Warnings   []string `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

type matchInfo struct {
	Selector string `yaml:"selector" json:"selector"`
	Tier     int    `yaml:"tier" json:"tier"`
}

type resolveSummary struct {
	Source    string      `yaml:"source" json:"source"`
	Matches   []matchInfo `yaml:"matches" json:"matches"`
	Effective css.Style   `yaml:"effective" json:"effective"`
}

func animationNames(sheet *css.ParsedStylesheet) []string {
	names := make([]string, 0, len(sheet.Keyframes))
	for name := range sheet.Keyframes {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

func matchList(ui *cascade.UiStyle) []matchInfo {
	matches := make([]matchInfo, 0, len(ui.Styles))
	for k, m := range ui.Styles {
		sel := m.Pair.Selector
		if len(sel) == 0 {
			sel = k
		}
		matches = append(matches, matchInfo{Selector: sel, Tier: m.Tier})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Tier != matches[j].Tier {
			return matches[i].Tier > matches[j].Tier
		}
		return natural.Less(matches[i].Selector, matches[j].Selector)
	})
	return matches
}

// output serializes command results to stdout in the requested format and
// mirrors them into the debug report when one is being collected.
func output(env *state.LocalEnv, format, name string, v any) error {
	f, err := config.ParseOutputFmt(format)
	if err != nil {
		return err
	}

	var data []byte
	switch f {
	case config.OutputFmtJSON:
		if data, err = json.MarshalIndent(v, "", "  "); err == nil {
			data = append(data, '\n')
		}
	case config.OutputFmtYaml:
		data, err = yaml.Marshal(v)
	default:
		var text string
		if text, err = renderText(v); err == nil {
			data = []byte(text)
		}
	}
	if err != nil {
		return fmt.Errorf("unable to serialize %s results: %w", name, err)
	}

	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("inspect/%s.%s", name, f), data)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("unable to write %s results: %w", name, err)
	}
	return nil
}
