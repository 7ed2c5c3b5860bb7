// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/eneca-dev/handoff/internal/app/system/telemetry"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the hand-off service.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, telemetry, etc.
//   - Environment variables: HANDOFF_MONGO_URI, HANDOFF_TELEMETRY, etc.
//   - Command-line flags: --mongo_uri, --telemetry, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "handoff", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Actor identity (the auth layer is an upstream collaborator; it hands
	// the resolved user to this service in trusted headers)
	{Name: "actor_id_header", Default: "X-Actor-Id", Desc: "Header carrying the acting user's id"},
	{Name: "actor_name_header", Default: "X-Actor-Name", Desc: "Header carrying the acting user's display name"},

	// Telemetry and audit settings
	{Name: "telemetry", Default: "all", Desc: "Non-fatal failure reporting: 'all', 'log', or 'off'"},
	{Name: "audit_trail", Default: true, Desc: "Record field-level history for assignment edits"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, HANDOFF_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "HANDOFF", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		ActorIDHeader:   appValues.String("actor_id_header"),
		ActorNameHeader: appValues.String("actor_name_header"),

		Telemetry:  appValues.String("telemetry"),
		AuditTrail: appValues.Bool("audit_trail"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI format is checked here to catch configuration errors
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch appCfg.Telemetry {
	case telemetry.ModeAll, telemetry.ModeLog, telemetry.ModeOff:
	default:
		return fmt.Errorf("telemetry must be 'all', 'log', or 'off', got %q", appCfg.Telemetry)
	}

	return nil
}
