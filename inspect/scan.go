package inspect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"uicss/assets"
	"uicss/cascade"
	"uicss/markup"
	"uicss/state"
)

// Scan parses an HTML document, collects its embedded style elements and
// resolves every element in the tree against them.
func Scan(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no document has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	log.Info("Scanning document", zap.String("source", src))
	defer func(start time.Time) {
		log.Info("Scanning completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open document: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return fmt.Errorf("unable to parse document: %w", err)
	}

	texts := markup.ExtractStyleElements(doc)
	if len(texts) == 0 {
		log.Warn("Document has no style elements", zap.String("source", src))
	}

	// embedded styles belong to the document, not to a file on disk
	h := assets.HandleForPath(src)
	env.Assets.Put(h, strings.Join(texts, "\n"))
	sheet := env.Cache.GetOrParse(h, env.Assets.Provider())

	var nodes []nodeSummary
	markup.EachElement(doc, func(n *html.Node) bool {
		if ctx.Err() != nil {
			return false
		}
		node := markup.Identity(n)
		ui := cascade.Filter(sheet, h, node)
		if len(ui.Styles) == 0 {
			return true
		}
		selectors := make([]string, 0, len(ui.Styles))
		for _, m := range matchList(ui) {
			selectors = append(selectors, m.Selector)
		}
		nodes = append(nodes, nodeSummary{
			Tag:       node.Tag,
			ID:        node.ID,
			Classes:   node.Classes,
			Selectors: selectors,
		})
		return true
	})

	res := scanSummary{
		Source:   src,
		Sheets:   len(texts),
		Warnings: sheet.Warnings,
		Nodes:    nodes,
	}
	return output(env, cmd.String("format"), "scan", res)
}

type nodeSummary struct {
	Tag       string   `yaml:"tag" json:"tag"`
	ID        string   `yaml:"id,omitempty" json:"id,omitempty"`
	Classes   []string `yaml:"classes,omitempty" json:"classes,omitempty"`
	Selectors []string `yaml:"selectors" json:"selectors"`
}

type scanSummary struct {
	Source   string        `yaml:"source" json:"source"`
	Sheets   int           `yaml:"sheets" json:"sheets"`
	Warnings []string      `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Nodes    []nodeSummary `yaml:"nodes" json:"nodes"`
}
