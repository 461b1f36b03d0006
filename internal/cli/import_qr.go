package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/businesscards/internal/config"
	"github.com/mrlokans/businesscards/internal/database"
)

// ImportQRCommand imports a single business card from a QR code image.
type ImportQRCommand struct {
	ImagePath string
	Database  database.Options

	AuditEnabled bool

	out io.Writer
}

func NewImportQRCommand(cfg *config.Config) *ImportQRCommand {
	return &ImportQRCommand{
		Database:     database.Options{Driver: cfg.Database.Driver, Path: cfg.Database.Path, DSN: cfg.Database.DSN},
		AuditEnabled: cfg.Audit.Enabled,
		out:          os.Stdout,
	}
}

func (cmd *ImportQRCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-qr", flag.ContinueOnError)

	fs.StringVar(&cmd.ImagePath, "file", "", "Path to a PNG, JPEG, GIF or BMP image with a QR code (required)")
	fs.StringVar(&cmd.Database.Path, "db", cmd.Database.Path, "Path to the sqlite database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-qr -file <image> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decode a QR code whose payload is a business card JSON object and store it.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ImagePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportQRCommand) Run() error {
	data, err := os.ReadFile(cmd.ImagePath)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	s, err := openSession(cmd.Database, cmd.AuditEnabled)
	if err != nil {
		return err
	}
	defer s.close()

	card, err := s.cards.ImportQR(commandContext(), data)
	if err != nil {
		return fmt.Errorf("QR import failed: %w", err)
	}

	fmt.Fprintf(cmd.out, "Imported business card %d (%s)\n", card.ID, card.Name)
	return nil
}
