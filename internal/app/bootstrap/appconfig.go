// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS); AppConfig carries
// everything specific to the hand-off service.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Actor identity headers set by the upstream gateway
	ActorIDHeader   string // Header carrying the actor's id (hex ObjectID)
	ActorNameHeader string // Header carrying the actor's display name

	// Telemetry mode for non-fatal failure reporting: "all", "log", or "off"
	Telemetry string

	// AuditTrail toggles history writing for edits
	AuditTrail bool
}
