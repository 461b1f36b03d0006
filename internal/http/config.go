package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Cards CardService
	Audit AuditReader // optional; /api/audit is not registered when nil

	// Health checks
	Database Pinger

	// Multipart form memory limit in bytes (0 keeps gin's default)
	MaxUploadBytes int64

	// Application info
	Version string
}
