package markup_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"uicss/markup"
)

const page = `<!DOCTYPE html>
<html>
<head>
<style>button { width: 10px }</style>
</head>
<body>
<style>.card { color: red }</style>
<div id="root" class="panel dark">
  <button id="go" class="primary large">Go</button>
  text node
</div>
</body>
</html>`

func parsePage(t *testing.T) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func findByTag(doc *html.Node, tag string) *html.Node {
	var found *html.Node
	markup.EachElement(doc, func(n *html.Node) bool {
		if n.Data == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

func TestIdentity(t *testing.T) {
	doc := parsePage(t)

	button := findByTag(doc, "button")
	if button == nil {
		t.Fatal("button not found")
	}
	id := markup.Identity(button)
	if id.Tag != "button" || id.ID != "go" {
		t.Errorf("identity = %+v", id)
	}
	if len(id.Classes) != 2 || id.Classes[0] != "primary" || id.Classes[1] != "large" {
		t.Errorf("classes = %v, want [primary large]", id.Classes)
	}

	div := findByTag(doc, "div")
	if got := markup.Identity(div); got.ID != "root" || len(got.Classes) != 2 {
		t.Errorf("div identity = %+v", got)
	}
}

func TestIdentity_NonElement(t *testing.T) {
	if got := markup.Identity(nil); got.Tag != "" || got.ID != "" || got.Classes != nil {
		t.Errorf("nil node identity = %+v, want empty", got)
	}
	text := &html.Node{Type: html.TextNode, Data: "hello"}
	if got := markup.Identity(text); got.Tag != "" {
		t.Errorf("text node identity = %+v, want empty", got)
	}
}

func TestExtractStyleElements(t *testing.T) {
	doc := parsePage(t)

	sheets := markup.ExtractStyleElements(doc)
	if len(sheets) != 2 {
		t.Fatalf("found %d style elements, want 2", len(sheets))
	}
	if !strings.Contains(sheets[0], "button") {
		t.Errorf("head sheet = %q", sheets[0])
	}
	if !strings.Contains(sheets[1], ".card") {
		t.Errorf("body sheet = %q", sheets[1])
	}
}

func TestEachElement_Walk(t *testing.T) {
	doc := parsePage(t)

	var tags []string
	markup.EachElement(doc, func(n *html.Node) bool {
		tags = append(tags, n.Data)
		return true
	})
	joined := strings.Join(tags, " ")
	for _, want := range []string{"html", "head", "body", "div", "button"} {
		if !strings.Contains(joined, want) {
			t.Errorf("walk missed %q: %v", want, tags)
		}
	}
}

func TestEachElement_EarlyStop(t *testing.T) {
	doc := parsePage(t)

	var visited int
	markup.EachElement(doc, func(n *html.Node) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("visited %d elements after stop, want 2", visited)
	}
}
