package cli

import (
	"context"
	"fmt"

	"github.com/mrlokans/businesscards/internal/audit"
	"github.com/mrlokans/businesscards/internal/database"
	auditrepo "github.com/mrlokans/businesscards/internal/database/audit"
	"github.com/mrlokans/businesscards/internal/database/businesscards"
	"github.com/mrlokans/businesscards/internal/qrcode"
	"github.com/mrlokans/businesscards/internal/services"
)

// session bundles the card service with the resources it holds open.
type session struct {
	cards *services.CardService
	db    *database.Database
	audit *audit.Service // nil when auditing is disabled
}

func openSession(opts database.Options, auditEnabled bool) (*session, error) {
	db, err := database.NewDatabase(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	s := &session{db: db}
	store := businesscards.NewRepository(db.DB)
	if auditEnabled {
		s.audit = audit.NewService(auditrepo.NewRepository(db.DB))
		s.cards = services.NewCardService(store, qrcode.NewReader(), s.audit)
	} else {
		s.cards = services.NewCardService(store, qrcode.NewReader(), nil)
	}

	return s, nil
}

func (s *session) close() {
	if s.audit != nil {
		s.audit.Wait()
	}
	_ = s.db.Close()
}

// commandContext tags every audit event written by one CLI invocation.
func commandContext() context.Context {
	return audit.WithRequestID(context.Background(), audit.NewRequestID())
}
