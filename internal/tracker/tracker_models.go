package tracker

// ChangeSummary counts what changed between two versions of a text body.
type ChangeSummary struct {
	// Inserted and Deleted count runes, after semantic cleanup of the diff.
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`

	// Hunks is the number of non-equal diff segments.
	Hunks int `json:"hunks"`
}

// Changed reports whether the two versions differ.
func (c ChangeSummary) Changed() bool {
	return c.Hunks > 0
}
