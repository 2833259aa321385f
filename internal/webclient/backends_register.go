package webclient

import (
	"github.com/raysh454/fetchurl/internal/interfaces"
)

func init() {
	RegisterDefaultBackends()
}

// RegisterDefaultBackends registers the nethttp and chromedp backends.
func RegisterDefaultBackends() {
	RegisterBackend(string(ClientNetHTTP), func(cfg Config, logger interfaces.Logger) (interfaces.WebClient, error) {
		return NewNetHTTPClient(cfg, logger, nil)
	})

	RegisterBackend(string(ClientChromedp), func(cfg Config, logger interfaces.Logger) (interfaces.WebClient, error) {
		return NewChromedpClient(cfg, logger)
	})
}
