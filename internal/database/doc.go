// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres), migrations
//	├── seed.go          # Sample cards for an empty store
//	├── businesscards/   # Business card CRUD and search
//	└── audit/           # Audit event log
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(database.Options{Driver: "sqlite", Path: "./businesscards.db"})
//
//	cardsRepo := businesscards.NewRepository(db.DB)
//	auditRepo := audit.NewRepository(db.DB)
//
//	list, err := cardsRepo.List(ctx, "smith")
//
// # Interface Implementations
//
//   - businesscards.Repository: implements services.CardStore
//   - audit.Repository: backs audit.Service
package database
