// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	assignmentsfeature "github.com/eneca-dev/handoff/internal/app/features/assignments"
	directoryapifeature "github.com/eneca-dev/handoff/internal/app/features/directoryapi"
	healthfeature "github.com/eneca-dev/handoff/internal/app/features/health"
	"github.com/eneca-dev/handoff/internal/app/system/identity"
	"github.com/eneca-dev/handoff/internal/app/system/telemetry"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed, so the stores, cache, and directory in
// the package state are ready to serve.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tel := telemetry.New(logger, appCfg.Telemetry)
	provider := identity.NewHeaderProvider(appCfg.ActorIDHeader, appCfg.ActorNameHeader)

	svc := assignmentsfeature.NewService(
		state.assignments,
		state.cache,
		state.audit,
		state.dirs,
		tel,
		logger,
		appCfg.AuditTrail,
	)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	assignmentsHandler := assignmentsfeature.NewHandler(svc, provider, logger)
	assignmentsfeature.MountRoutes(r, assignmentsHandler)

	directoryHandler := directoryapifeature.NewHandler(state.dirs, logger)
	directoryapifeature.MountRoutes(r, directoryHandler)

	return r, nil
}
