// Command demoserver serves fixture documents for trying out fetch locally.
// Usage: go run ./cmd/demoserver [port]
// Default port: 9999
package main

import (
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"

	"github.com/raysh454/fetchurl/internal/demoserver"
	"github.com/raysh454/fetchurl/internal/interfaces"
	"github.com/raysh454/fetchurl/internal/logging"
)

func main() {
	logger := logging.New(os.Stderr, zapcore.InfoLevel)
	cfg := demoserver.DefaultConfig()

	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			logger.Error("invalid port", interfaces.Field{Key: "port", Value: os.Args[1]})
			os.Exit(2)
		}
		cfg.Port = port
	}

	for _, p := range demoserver.GetAllPages() {
		logger.Info("serving "+p.Path, interfaces.Field{Key: "description", Value: p.Description})
	}

	server := demoserver.NewDemoServer(cfg, logger)
	if err := server.Start(); err != nil {
		logger.Error("server error", interfaces.Field{Key: "error", Value: err})
		os.Exit(1)
	}
}
