package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the business card database
	DefaultDatabasePath = "./businesscards.db"
)

// DefaultCORSAllowedOrigins lists the local frontend dev servers allowed by default.
const DefaultCORSAllowedOrigins = "http://localhost:3000,http://localhost:4200,http://localhost:5173"

// DotEnvFile is loaded before reading the environment when present.
const DotEnvFile = ".env"
