package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/ironsheep/color-detect/internal/config"
	"github.com/ironsheep/color-detect/internal/logging"
	"github.com/ironsheep/color-detect/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-detect %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	logger.Infow("color-detect starting",
		"version", Version,
		"build_time", BuildTime,
		"git_commit", GitCommit,
		"addr", cfg.Addr(),
		"allowed_origins", cfg.AllowedOrigins,
		"auto_orient", cfg.AutoOrient,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger, Version)
	if err := srv.Run(ctx); err != nil {
		logger.Fatalw("server error", "error", err)
	}
}

func printHelp() {
	fmt.Println("color-detect - HTTP service returning the color of a pixel in an uploaded image")
	fmt.Println()
	fmt.Println("Usage: color-detect [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables (also read from ./.env):")
	fmt.Println("  PORT=5050                              Listen port")
	fmt.Println("  COLOR_DETECT_HOST=0.0.0.0              Listen address")
	fmt.Println("  COLOR_DETECT_ALLOWED_ORIGINS=*         Comma-separated CORS origins")
	fmt.Println("  COLOR_DETECT_MAX_BODY_BYTES=33554432   Largest accepted request body")
	fmt.Println("  COLOR_DETECT_MAX_PIXELS=100000000      Largest accepted width*height")
	fmt.Println("  COLOR_DETECT_AUTO_ORIENT=false         Apply EXIF orientation before sampling")
	fmt.Println("  COLOR_DETECT_READ_TIMEOUT=15           Seconds")
	fmt.Println("  COLOR_DETECT_WRITE_TIMEOUT=30          Seconds")
	fmt.Println("  COLOR_DETECT_IDLE_TIMEOUT=120          Seconds")
	fmt.Println("  COLOR_DETECT_SHUTDOWN_TIMEOUT=10       Seconds")
	fmt.Println("  COLOR_DETECT_LOG_LEVEL=info            debug, info, warn or error")
	fmt.Println("  COLOR_DETECT_LOG_FORMAT=json           json or console")
	fmt.Println("  GIN_MODE=release                       debug, release or test")
}
