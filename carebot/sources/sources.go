package sources

import (
	"carebot/carebot/config"
	"carebot/carebot/sources/memstore"
	"carebot/carebot/sources/psql"
	"carebot/carebot/sources/store"
	"carebot/carebot/utils/logging"
	"context"

	"go.uber.org/zap"
)

// Open probes postgres and degrades to the in-memory store when the
// connection fails. Callers only ever see store.Store; the degradation is
// logged and never surfaced to a user.
func Open(ctx context.Context, cfg config.Config) store.Store {
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error, using in-memory store", zap.Error(err))
		logging.AppLogger.Warn("persistence degraded to in-memory store")
		return memstore.New()
	}
	logging.AppLogger.Info("connected to postgres", zap.String("db", cfg.DBName))
	return db
}
