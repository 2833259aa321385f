package analyzer

import (
	"github.com/raysh454/fetchurl/internal/model"
)

// Analyzer inspects a fetched response. Implementations must not modify it.
type Analyzer interface {
	// Summarize returns a summary for HTML responses and nil for anything else.
	Summarize(resp *model.Response) (*PageSummary, error)
}
