package analyzer

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/raysh454/fetchurl/internal/interfaces"
	"github.com/raysh454/fetchurl/internal/model"
)

// DefaultAnalyzer parses HTML with goquery.
type DefaultAnalyzer struct {
	logger interfaces.Logger
}

// NewDefaultAnalyzer creates an analyzer that logs through logger.
func NewDefaultAnalyzer(logger interfaces.Logger) *DefaultAnalyzer {
	return &DefaultAnalyzer{
		logger: logger.With(interfaces.Field{Key: "component", Value: "analyzer"}),
	}
}

// IsHTML reports whether contentType names an HTML document.
func IsHTML(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}

func (a *DefaultAnalyzer) Summarize(resp *model.Response) (*PageSummary, error) {
	if resp == nil || !IsHTML(resp.ContentType()) {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	summary := &PageSummary{
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Links:   doc.Find("a[href]").Length(),
		Scripts: doc.Find("script").Length(),
		Forms:   doc.Find("form").Length(),
		Images:  doc.Find("img").Length(),
	}
	a.logger.Debug("html document",
		interfaces.Field{Key: "title", Value: summary.Title},
		interfaces.Field{Key: "links", Value: summary.Links},
		interfaces.Field{Key: "scripts", Value: summary.Scripts},
		interfaces.Field{Key: "forms", Value: summary.Forms},
		interfaces.Field{Key: "images", Value: summary.Images})
	return summary, nil
}
