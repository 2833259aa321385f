package demoserver

import (
	"net"
	"strconv"
	"time"
)

// Config controls the fixture server.
type Config struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string

	// Port is the TCP port to listen on.
	Port int

	// InitialVersion is the version every page starts at and returns to on
	// reset. Values below 1 mean 1.
	InitialVersion int

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration
}

// DefaultConfig listens on port 9999 with all pages at version 1.
func DefaultConfig() Config {
	return Config{
		Port:              9999,
		InitialVersion:    1,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Addr is the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
