package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-filter-mcp/internal/config"
	"github.com/ironsheep/image-filter-mcp/internal/server"
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
			fmt.Printf("image-filter-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-filter-mcp - MCP server for image filters and measurements")
			fmt.Println()
			fmt.Println("Usage: image-filter-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_MCP_CONFIG=<path>      TOML config file")
			fmt.Println("                               (default: $XDG_CONFIG_HOME/image-filter-mcp/config.toml)")
			fmt.Println("  IMAGE_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  IMAGE_MCP_LANGUAGE=<tag>     Label language (en, fr, de)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Image Filter MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Config: language=%s channel=%s threshold=[%g, %g] spacing=%v",
			cfg.Language, cfg.Channel, cfg.Threshold.Min, cfg.Threshold.Max, cfg.Spacing)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
