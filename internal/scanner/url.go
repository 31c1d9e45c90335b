package scanner

import (
	"context"
	"strings"

	"github.com/usucyber/flagscan/internal/model"
)

// ScanURL fetches a page and scans it together with its directly embedded
// resources. The steps run sequentially and each is independently
// fault-tolerant:
//
//  1. Fetch the page body; on failure, report and abort this URL's scan
//     (there is no content to parse).
//  2. Fetch and scan each external script as "(JavaScript)"; scan each
//     inline script as "(Inline JavaScript)".
//  3. Fetch and scan each external stylesheet as "(CSS)"; scan each
//     inline style as "(Inline CSS)".
//  4. Scan the raw body as "(HTML)".
//  5. Scan every text and comment node as "(HTML Content)". Overlaps
//     with step 4; deduplication makes the overlap harmless.
//
// Structured resources are scanned before the raw body so a flag hidden
// in an inline script or style attributes to its precise kind rather
// than the page at large. The raw-body and text-node sweeps then catch
// everything else.
//
// Links found inside the page are never followed. This is a deliberate
// product decision: the tool inspects one page and its embedded assets,
// not a site.
func (s *Scanner) ScanURL(ctx context.Context, pageURL string) {
	s.logger.Debug("scanning url", "url", pageURL)

	body, err := s.client.Get(ctx, pageURL)
	if err != nil {
		s.recordFailure(pageURL, err)
		return
	}

	htmlLabel := model.SourceLabel(pageURL, model.KindHTML)

	parser, err := NewParser(pageURL)
	if err != nil {
		s.recordFailure(pageURL, err)
		s.matcher.Scan(body, htmlLabel)
		return
	}

	res, err := parser.Parse(strings.NewReader(body))
	if err != nil {
		// Unparseable body: only the resource sweep is lost.
		s.recordFailure(pageURL, err)
		s.matcher.Scan(body, htmlLabel)
		return
	}

	s.scanScripts(ctx, pageURL, res)
	s.scanStylesheets(ctx, pageURL, res)
	s.matcher.Scan(body, htmlLabel)
	s.scanTextNodes(pageURL, res)
}

// scanScripts handles external and inline scripts.
func (s *Scanner) scanScripts(ctx context.Context, pageURL string, res *PageResources) {
	for _, src := range res.ScriptSrcs {
		body, err := s.client.Get(ctx, src)
		if err != nil {
			s.recordFailure(src, err)
			continue
		}
		s.matcher.Scan(body, model.SourceLabel(src, model.KindJavaScript))
	}

	for _, script := range res.InlineScripts {
		s.matcher.Scan(script, model.SourceLabel(pageURL, model.KindInlineJavaScript))
	}
}

// scanStylesheets handles external stylesheets and inline styles.
func (s *Scanner) scanStylesheets(ctx context.Context, pageURL string, res *PageResources) {
	for _, href := range res.StylesheetHrefs {
		body, err := s.client.Get(ctx, href)
		if err != nil {
			s.recordFailure(href, err)
			continue
		}
		s.matcher.Scan(body, model.SourceLabel(href, model.KindCSS))
	}

	for _, style := range res.InlineStyles {
		s.matcher.Scan(style, model.SourceLabel(pageURL, model.KindInlineCSS))
	}
}

// scanTextNodes sweeps every text-bearing node, comments included.
func (s *Scanner) scanTextNodes(pageURL string, res *PageResources) {
	for _, text := range res.TextNodes {
		s.matcher.Scan(text, model.SourceLabel(pageURL, model.KindHTMLContent))
	}
}
