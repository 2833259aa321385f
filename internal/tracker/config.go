package tracker

// Config controls where fetch history is kept.
type Config struct {
	// Path is the sqlite database file. Parent directories are created.
	Path string `json:"path,omitempty"`

	// MaxHistory keeps at most this many entries per URL. Zero keeps all.
	MaxHistory int `json:"max_history,omitempty"`
}
