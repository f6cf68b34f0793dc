package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/fiufit/trainings/internal/telemetry/tracing"
)

//go:embed schema.sql
var SchemaSQL string

// CreateStructures creates all tables and indexes that don't exist yet.
// Safe to run on every start and from several instances at once.
func CreateStructures(ctx context.Context, pool *pgxpool.Pool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "db.createStructures")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := pool.Exec(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("create structures: %w", err)
	}

	log.Debugln("db structures created")
	return nil
}
