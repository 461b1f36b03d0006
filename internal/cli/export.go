package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrlokans/businesscards/internal/config"
	"github.com/mrlokans/businesscards/internal/database"
)

// ExportCommand writes every stored business card as CSV or XML.
type ExportCommand struct {
	Format     string
	OutputPath string // empty writes to stdout
	Database   database.Options

	AuditEnabled bool

	out io.Writer
	log io.Writer
}

func NewExportCommand(cfg *config.Config) *ExportCommand {
	return &ExportCommand{
		Database:     database.Options{Driver: cfg.Database.Driver, Path: cfg.Database.Path, DSN: cfg.Database.DSN},
		AuditEnabled: cfg.Audit.Enabled,
		out:          os.Stdout,
		log:          os.Stderr,
	}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)

	fs.StringVar(&cmd.Format, "format", "csv", "Export format: csv or xml")
	fs.StringVar(&cmd.OutputPath, "output", "", "Output file (default: stdout)")
	fs.StringVar(&cmd.Database.Path, "db", cmd.Database.Path, "Path to the sqlite database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export all business cards. Any format other than xml produces CSV.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export -format xml -output businesscards.xml\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export > businesscards.csv\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	s, err := openSession(cmd.Database, cmd.AuditEnabled)
	if err != nil {
		return err
	}
	defer s.close()

	result, err := s.cards.Export(commandContext(), cmd.Format)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if cmd.OutputPath == "" {
		_, err = cmd.out.Write(result.Data)
		return err
	}

	if err := os.WriteFile(cmd.OutputPath, result.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.OutputPath, err)
	}
	fmt.Fprintf(cmd.log, "Exported %d business cards to %s (%s)\n", result.Count, cmd.OutputPath, strings.ToUpper(formatOf(result.FileName)))
	return nil
}

func formatOf(fileName string) string {
	if i := strings.LastIndexByte(fileName, '.'); i >= 0 {
		return fileName[i+1:]
	}
	return fileName
}
