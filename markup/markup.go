// Package markup extracts what the style engine needs from an HTML-shaped
// UI tree: per-node selector identity and embedded stylesheet text. Tree
// construction itself belongs to the host; this package only reads.
package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"uicss/cascade"
)

// Identity extracts the node's selector identity: tag name, id attribute
// and the whitespace-split class list. Non-element nodes yield an empty
// identity.
func Identity(n *html.Node) cascade.NodeIdentity {
	if n == nil || n.Type != html.ElementNode {
		return cascade.NodeIdentity{}
	}

	id := cascade.NodeIdentity{Tag: strings.ToLower(n.Data)}
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "id":
			id.ID = strings.TrimSpace(attr.Val)
		case "class":
			id.Classes = strings.Fields(attr.Val)
		}
	}
	return id
}

// ExtractStyleElements collects the text of every <style> element found
// directly under <head> and <body>, in document order.
func ExtractStyleElements(doc *html.Node) []string {
	var sheets []string
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		parent := findElement(a, doc)
		if parent == nil {
			continue
		}
		for ch := parent.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.DataAtom == atom.Style && ch.FirstChild != nil {
				sheets = append(sheets, ch.FirstChild.Data)
			}
		}
	}
	return sheets
}

// EachElement walks the tree depth-first and calls fn for every element
// node. Returning false from fn stops the walk.
func EachElement(n *html.Node, fn func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if n.Type == html.ElementNode && !fn(n) {
		return false
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if !EachElement(ch, fn) {
			return false
		}
	}
	return true
}

func findElement(a atom.Atom, n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.DataAtom == a {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
