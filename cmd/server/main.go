package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mizutori/device-registry/pkg/api"
	"github.com/mizutori/device-registry/pkg/devicemap"
)

const version = "1.0.0"

type config struct {
	Addr    string `yaml:"addr"`
	Scorer  string `yaml:"scorer"`  // "sequence" (default) or "jaro_winkler"
	Overlay string `yaml:"overlay"` // optional alias overlay file
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "mcp":
		cmdMCP(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: device-registry <command>\n\nCommands:\n  serve   Start the HTTP server\n  mcp     Serve MCP tools over stdio\n")
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := loadConfig(*cfgPath, logger)
	mapper := buildMapper(cfg, logger)

	stats := mapper.Stats()
	logger.Info("device dictionary loaded",
		"mappings", stats.NormalizedMappings,
		"devices", stats.SupportedDevices,
		"keywords", stats.DeviceKeywords)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewRouter(mapper, logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("device registry listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	srv.Shutdown(context.Background())
}

func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	// stdout carries the MCP protocol, so logs go to stderr only.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := loadConfig(*cfgPath, logger)
	mapper := buildMapper(cfg, logger)

	srv := server.NewMCPServer("device-registry", version)
	api.RegisterMCPTools(srv, mapper, logger)

	if err := server.ServeStdio(srv); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

// buildMapper applies the overlay and scorer selection. Overlay problems are
// fatal here: serving with a partially-configured dictionary would silently
// misresolve every affected device.
func buildMapper(cfg config, logger *slog.Logger) *devicemap.Mapper {
	if cfg.Overlay != "" {
		if err := devicemap.RegisterOverlay(cfg.Overlay); err != nil {
			logger.Error("failed to load alias overlay", "error", err)
			os.Exit(1)
		}
	}
	return devicemap.NewWithScorer(devicemap.GetScorer(cfg.Scorer))
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:   ":8430",
		Scorer: "sequence",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
