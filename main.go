package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/businesscards/internal/cli"
	"github.com/mrlokans/businesscards/internal/config"
	"github.com/mrlokans/businesscards/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is implemented by every CLI subcommand.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	commandName := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch commandName {
	case "import":
		cmd = cli.NewImportCommand(config.NewConfig())
	case "import-qr":
		cmd = cli.NewImportQRCommand(config.NewConfig())
	case "export":
		cmd = cli.NewExportCommand(config.NewConfig())
	case "version":
		fmt.Printf("businesscards %s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", commandName)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve      Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  import     Import business cards from a CSV or XML file\n")
	fmt.Fprintf(os.Stderr, "  import-qr  Import a business card from a QR code image\n")
	fmt.Fprintf(os.Stderr, "  export     Export all business cards as CSV or XML\n")
	fmt.Fprintf(os.Stderr, "  version    Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
