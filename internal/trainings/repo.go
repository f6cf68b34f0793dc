package trainings

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fiufit/trainings/internal/telemetry/tracing"
)

const (
	selectTrainings = `
		SELECT
			t.id, t.trainer_id, t.title, t.description,
			tt.id, tt.name, d.id, d.name,
			t.media, t.blocked
		FROM training t
			JOIN training_type tt ON tt.id = t.type_id
			JOIN difficulty d ON d.id = t.difficulty_id`

	selectExerciseEntries = `
		SELECT
			te.training_id, te.count, te.series,
			e.id, e.name, e.unit, et.id, et.name
		FROM training_exercise te
			JOIN exercise e ON e.id = te.exercise_id
			JOIN training_type et ON et.id = e.type_id
		WHERE te.training_id = ANY($1)
		ORDER BY te.training_id, te.id`

	selectRatings = `
		SELECT training_id, rating
		FROM user_rates_training
		WHERE training_id = ANY($1)`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, filters Filters) (_ []Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	where, args := whereClause(filters.Predicates)
	query := fmt.Sprintf(
		"%s %s ORDER BY t.id OFFSET $%d LIMIT $%d",
		selectTrainings, where, len(args)+1, len(args)+2,
	)
	args = append(args, filters.Offset, filters.Limit)

	trainings, err := r.queryTrainings(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}
	return trainings, nil
}

// Count uses the same predicates as List. The two run as separate queries.
func (r *Repo) Count(ctx context.Context, predicates []Predicate) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	where, args := whereClause(predicates)
	var count int
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM training t "+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count trainings: %w", err)
	}
	return count, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	trainings, err := r.queryTrainings(ctx, selectTrainings+" WHERE t.id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("get training %d: %w", id, err)
	}
	if len(trainings) == 0 {
		return nil, ErrTrainingNotFound
	}
	return &trainings[0], nil
}

// GetMany returns the trainings in the order of ids. Unknown ids are skipped.
func (r *Repo) GetMany(ctx context.Context, ids []int) (_ []Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.getMany")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(ids) == 0 {
		return []Training{}, nil
	}

	found, err := r.queryTrainings(ctx, selectTrainings+" WHERE t.id = ANY($1)", ids)
	if err != nil {
		return nil, fmt.Errorf("get trainings: %w", err)
	}

	byID := make(map[int]Training, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	ordered := make([]Training, 0, len(found))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered, nil
}

// TrainerID returns the owner of a training, or ErrTrainingNotFound.
func (r *Repo) TrainerID(ctx context.Context, id int) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.trainerId")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var trainerID string
	if err := r.db.QueryRow(ctx, `SELECT trainer_id FROM training WHERE id = $1`, id).Scan(&trainerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrTrainingNotFound
		}
		return "", fmt.Errorf("get trainer id: %w", err)
	}
	return trainerID, nil
}

// Create inserts the training and its exercise entries in one transaction,
// then reads the stored aggregate back.
func (r *Repo) Create(ctx context.Context, newTraining NewTraining) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO training
					(trainer_id, title, description, type_id, difficulty_id, media)
					VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id;`,
			newTraining.TrainerID, newTraining.Title, newTraining.Description,
			newTraining.TypeID, newTraining.DifficultyID, newTraining.Media,
		).Scan(&id); err != nil {
			return fmt.Errorf("insert training: %w", err)
		}

		if len(newTraining.Exercises) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, entry := range newTraining.Exercises {
			batch.Queue(
				`INSERT INTO training_exercise (training_id, exercise_id, count, series) VALUES ($1, $2, $3, $4);`,
				id, entry.ExerciseID, entry.Count, entry.Series,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert exercise entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, id)
}

// ApplyPatch updates only the given columns. An empty set is a no-op.
func (r *Repo) ApplyPatch(ctx context.Context, id int, columns Columns) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.applyPatch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(columns) == 0 {
		return nil
	}

	names := make([]Column, 0, len(columns))
	for column := range columns {
		if !column.patchable() {
			return fmt.Errorf("column [%s] is not patchable", column)
		}
		names = append(names, column)
	}
	slices.Sort(names)

	assignments := make([]string, 0, len(names))
	args := make([]any, 0, len(names)+1)
	for i, column := range names {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, columns[column])
	}
	args = append(args, id)

	tag, err := r.db.Exec(
		ctx,
		fmt.Sprintf("UPDATE training SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(args)),
		args...,
	)
	if err != nil {
		return fmt.Errorf("update training %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingNotFound
	}
	return nil
}

func (r *Repo) queryTrainings(ctx context.Context, query string, args ...any) ([]Training, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	trainings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Training, error) {
		var t Training
		err := row.Scan(
			&t.ID, &t.TrainerID, &t.Title, &t.Description,
			&t.Type.ID, &t.Type.Name, &t.Difficulty.ID, &t.Difficulty.Name,
			&t.Media, &t.Blocked,
		)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect rows: %w", err)
	}

	if err := r.loadDetails(ctx, trainings); err != nil {
		return nil, err
	}
	return trainings, nil
}

// loadDetails fills exercise entries and ratings with one query each for the whole page.
func (r *Repo) loadDetails(ctx context.Context, trainings []Training) error {
	if len(trainings) == 0 {
		return nil
	}

	ids := make([]int, len(trainings))
	indexByID := make(map[int]int, len(trainings))
	for i, t := range trainings {
		ids[i] = t.ID
		indexByID[t.ID] = i
		trainings[i].Exercises = []ExerciseEntry{}
		trainings[i].Ratings = []float64{}
	}

	rows, err := r.db.Query(ctx, selectExerciseEntries, ids)
	if err != nil {
		return fmt.Errorf("query exercise entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var trainingID int
		var entry ExerciseEntry
		if err := rows.Scan(
			&trainingID, &entry.Count, &entry.Series,
			&entry.Exercise.ID, &entry.Exercise.Name, &entry.Exercise.Unit,
			&entry.Exercise.Type.ID, &entry.Exercise.Type.Name,
		); err != nil {
			return fmt.Errorf("scan exercise entry: %w", err)
		}
		i := indexByID[trainingID]
		trainings[i].Exercises = append(trainings[i].Exercises, entry)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("exercise entries rows: %w", err)
	}
	rows.Close()

	ratingRows, err := r.db.Query(ctx, selectRatings, ids)
	if err != nil {
		return fmt.Errorf("query ratings: %w", err)
	}
	defer ratingRows.Close()

	for ratingRows.Next() {
		var trainingID int
		var rating float64
		if err := ratingRows.Scan(&trainingID, &rating); err != nil {
			return fmt.Errorf("scan rating: %w", err)
		}
		i := indexByID[trainingID]
		trainings[i].Ratings = append(trainings[i].Ratings, rating)
	}
	return ratingRows.Err()
}
