package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/businesscards/internal/config"
	"github.com/mrlokans/businesscards/internal/database"
)

// ImportCommand imports business cards from a CSV or XML file.
type ImportCommand struct {
	FilePath string
	Database database.Options

	AuditEnabled bool

	out io.Writer
}

func NewImportCommand(cfg *config.Config) *ImportCommand {
	return &ImportCommand{
		Database:     database.Options{Driver: cfg.Database.Driver, Path: cfg.Database.Path, DSN: cfg.Database.DSN},
		AuditEnabled: cfg.Audit.Enabled,
		out:          os.Stdout,
	}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to a .csv or .xml file (required)")
	fs.StringVar(&cmd.Database.Path, "db", cmd.Database.Path, "Path to the sqlite database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import business cards from a CSV or XML file.\n")
		fmt.Fprintf(os.Stderr, "The first invalid record aborts the import; records before it stay stored.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file cards.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import -file businesscards.xml -db ./cards.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportCommand) Run() error {
	data, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	s, err := openSession(cmd.Database, cmd.AuditEnabled)
	if err != nil {
		return err
	}
	defer s.close()

	result, err := s.cards.ImportFile(commandContext(), filepath.Base(cmd.FilePath), data)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(cmd.out, "Imported %d business cards from %s (%s)\n", result.Imported, cmd.FilePath, result.Format)
	return nil
}
