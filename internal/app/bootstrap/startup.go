// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	assignmentstore "github.com/eneca-dev/handoff/internal/app/store/assignments"
	audittrailstore "github.com/eneca-dev/handoff/internal/app/store/audittrail"
	orgviewstore "github.com/eneca-dev/handoff/internal/app/store/orgviews"
	"github.com/eneca-dev/handoff/internal/app/system/directory"
	"github.com/eneca-dev/handoff/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// state holds what Startup prepares and BuildHandler consumes. It is
// written once during startup, before the HTTP handler exists.
var state struct {
	assignments *assignmentstore.Store
	cache       *assignmentstore.Cache
	audit       *audittrailstore.Store
	dirs        *directory.Holder
}

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. The
// reference directory is materialized here and the assignment snapshot is
// warmed, so the first request does not pay the load.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	state.assignments = assignmentstore.New(deps.MongoDatabase)
	state.cache = assignmentstore.NewCache(state.assignments)
	state.audit = audittrailstore.New(deps.MongoDatabase)
	state.dirs = directory.NewHolder()

	views := orgviewstore.New(deps.MongoDatabase)

	loadCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	hier, err := views.SectionHierarchy(loadCtx)
	if err != nil {
		return err
	}
	org, err := views.OrgUnits(loadCtx)
	if err != nil {
		return err
	}
	state.dirs.Publish(directory.Build(hier, org))
	logger.Info("reference directory loaded",
		zap.Int("hierarchy_rows", len(hier)),
		zap.Int("org_rows", len(org)))

	snap, err := state.cache.Snapshot(loadCtx)
	if err != nil {
		return err
	}
	logger.Info("assignment snapshot warmed", zap.Int("assignments", len(snap)))

	return nil
}
