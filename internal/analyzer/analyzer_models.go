package analyzer

// PageSummary describes the shape of an HTML document.
type PageSummary struct {
	// Title is the trimmed text of the first <title> element.
	Title string `json:"title,omitempty"`

	// Links counts <a href> elements.
	Links int `json:"links"`

	// Scripts counts <script> elements, inline and external.
	Scripts int `json:"scripts"`

	// Forms counts <form> elements.
	Forms int `json:"forms"`

	// Images counts <img> elements.
	Images int `json:"images"`
}
