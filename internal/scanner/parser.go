package scanner

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// PageResources contains everything the URL scanner extracts from a page.
//
// Design decision: We collect all resource classes in a single parsing
// pass and return them together because:
//  1. One DOM walk is cheaper than one per resource class
//  2. The scan steps consume the classes in a fixed order anyway
//  3. Callers can ignore classes they do not need
type PageResources struct {
	// ScriptSrcs are absolute URLs of external scripts (<script src>).
	ScriptSrcs []string

	// InlineScripts are the text contents of inline <script> tags.
	InlineScripts []string

	// StylesheetHrefs are absolute URLs from <link rel="stylesheet"> tags.
	StylesheetHrefs []string

	// InlineStyles are the text contents of inline <style> tags.
	InlineStyles []string

	// TextNodes are all text and comment nodes of the document, in
	// document order. This deliberately overlaps with the raw body scan;
	// flag deduplication makes the redundancy harmless and it catches
	// flags hidden in HTML comments.
	TextNodes []string
}

// Parser extracts embedded resources from HTML content.
//
// Design decision: We use golang.org/x/net/html rather than regex
// because it correctly handles the malformed HTML that CTF challenge
// pages are full of, and it gives us comment nodes for free.
type Parser struct {
	// baseURL is the page URL, used to resolve relative resource URLs.
	baseURL *url.URL
}

// NewParser creates a Parser that resolves relative URLs against baseURL.
func NewParser(baseURL string) (*Parser, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &Parser{baseURL: u}, nil
}

// Parse walks the HTML document and collects embedded resources.
func (p *Parser) Parse(content io.Reader) (*PageResources, error) {
	doc, err := html.Parse(content)
	if err != nil {
		return nil, err
	}

	res := &PageResources{
		ScriptSrcs:      make([]string, 0),
		InlineScripts:   make([]string, 0),
		StylesheetHrefs: make([]string, 0),
		InlineStyles:    make([]string, 0),
		TextNodes:       make([]string, 0),
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			p.processElement(n, res)
		case html.TextNode, html.CommentNode:
			if n.Data != "" {
				res.TextNodes = append(res.TextNodes, n.Data)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return res, nil
}

// processElement handles script, link, and style elements.
func (p *Parser) processElement(n *html.Node, res *PageResources) {
	switch n.Data {
	case "script":
		if src := getAttr(n, "src"); src != "" {
			if resolved := p.resolveURL(src); resolved != "" {
				res.ScriptSrcs = append(res.ScriptSrcs, resolved)
			}
			return
		}
		if text := directText(n); text != "" {
			res.InlineScripts = append(res.InlineScripts, text)
		}

	case "link":
		if !strings.EqualFold(getAttr(n, "rel"), "stylesheet") {
			return
		}
		if href := getAttr(n, "href"); href != "" {
			if resolved := p.resolveURL(href); resolved != "" {
				res.StylesheetHrefs = append(res.StylesheetHrefs, resolved)
			}
		}

	case "style":
		if text := directText(n); text != "" {
			res.InlineStyles = append(res.InlineStyles, text)
		}
	}
}

// resolveURL resolves a possibly-relative resource URL against the page URL.
// Non-fetchable schemes resolve to the empty string.
func (p *Parser) resolveURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" ||
		strings.HasPrefix(ref, "javascript:") ||
		strings.HasPrefix(ref, "data:") {
		return ""
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	return p.baseURL.ResolveReference(u).String()
}

// directText concatenates the direct text children of an element.
// Script and style bodies are single text nodes in practice, but
// concatenating is cheap and handles parser quirks.
func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
