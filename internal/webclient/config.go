package webclient

import "time"

type Client string

const (
	ClientNetHTTP  Client = "nethttp"
	ClientChromedp Client = "chromedp"
)

// Config selects and tunes a WebClient backend. The zero value is a nethttp
// client that verifies TLS certificates and never times out.
type Config struct {
	Client Client

	// SkipVerify disables TLS certificate verification.
	SkipVerify bool

	// Timeout bounds a whole request for the nethttp backend. Zero means none.
	Timeout time.Duration

	// IdleAfter is how long the chromedp backend waits for the network to stay
	// quiet before reading the page.
	IdleAfter time.Duration

	// MaxWait caps the chromedp idle wait.
	MaxWait time.Duration
}

// DefaultConfig returns the settings used by the fetch command.
func DefaultConfig() Config {
	return Config{
		Client:    ClientNetHTTP,
		IdleAfter: 2 * time.Second,
		MaxWait:   30 * time.Second,
	}
}
