package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/fiufit/trainings/internal/telemetry/tracing"
	"github.com/fiufit/trainings/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Seed inserts the fixed reference rows. Existing rows are left as they are,
// so concurrent or repeated runs are harmless.
func (r *Repo) Seed(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalogRepo.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	batch := &pgx.Batch{}
	for _, t := range seedTypes {
		batch.Queue(`INSERT INTO training_type (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING;`, t.ID, t.Name)
	}
	for _, d := range seedDifficulties {
		batch.Queue(`INSERT INTO difficulty (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING;`, d.ID, d.Name)
	}
	for _, e := range seedExercises {
		batch.Queue(
			`INSERT INTO exercise (id, name, type_id, unit) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING;`,
			e.ID, e.Name, e.TypeID, e.Unit,
		)
	}
	// keep serial sequences ahead of the explicit ids
	for _, table := range []string{"training_type", "difficulty", "exercise"} {
		batch.Queue(fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s));`, table,
		))
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed batch: %w", err)
	}

	log.Debugf("catalog seeded: %d types, %d difficulties, %d exercises",
		len(seedTypes), len(seedDifficulties), len(seedExercises))
	return nil
}

func (r *Repo) FindType(ctx context.Context, name string) (_ *TrainingType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalogRepo.findType")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var tt TrainingType
	err = r.db.QueryRow(ctx,
		`SELECT id, name FROM training_type WHERE name = $1;`, name,
	).Scan(&tt.ID, &tt.Name)
	if pkg.IsNoRowsError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tt, nil
}

func (r *Repo) FindDifficulty(ctx context.Context, name string) (_ *Difficulty, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalogRepo.findDifficulty")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var d Difficulty
	err = r.db.QueryRow(ctx,
		`SELECT id, name FROM difficulty WHERE name = $1;`, name,
	).Scan(&d.ID, &d.Name)
	if pkg.IsNoRowsError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repo) FindExercise(ctx context.Context, name string, unit *string) (_ *ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalogRepo.findExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var ex ExerciseDefinition
	err = r.db.QueryRow(ctx,
		`
			SELECT e.id, e.name, e.unit, t.id, t.name
			FROM exercise e
				JOIN training_type t ON t.id = e.type_id
			WHERE e.name = $1 AND e.unit IS NOT DISTINCT FROM $2::varchar;`,
		name, unit,
	).Scan(&ex.ID, &ex.Name, &ex.Unit, &ex.Type.ID, &ex.Type.Name)
	if pkg.IsNoRowsError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

func (r *Repo) ListTypes(ctx context.Context) (_ []TrainingType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalogRepo.listTypes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name FROM training_type ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (TrainingType, error) {
		var tt TrainingType
		err := row.Scan(&tt.ID, &tt.Name)
		return tt, err
	})
}

func (r *Repo) ListDifficulties(ctx context.Context) (_ []Difficulty, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalogRepo.listDifficulties")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name FROM difficulty ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Difficulty, error) {
		var d Difficulty
		err := row.Scan(&d.ID, &d.Name)
		return d, err
	})
}

func (r *Repo) ListExercises(ctx context.Context) (_ []ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalogRepo.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`
			SELECT e.id, e.name, e.unit, t.id, t.name
			FROM exercise e
				JOIN training_type t ON t.id = e.type_id
			ORDER BY e.id;`,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ExerciseDefinition, error) {
		var ex ExerciseDefinition
		err := row.Scan(&ex.ID, &ex.Name, &ex.Unit, &ex.Type.ID, &ex.Type.Name)
		return ex, err
	})
}
