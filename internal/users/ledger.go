package users

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fiufit/trainings/internal/telemetry/tracing"
	"github.com/fiufit/trainings/internal/trainings"
	"github.com/fiufit/trainings/pkg"
)

// Ledger stores favorites and ratings. Callers check that the user and the
// training exist before calling it.
type Ledger struct {
	db *pgxpool.Pool
}

func NewLedger(db *pgxpool.Pool) *Ledger {
	return &Ledger{
		db: db,
	}
}

func (l *Ledger) GetUser(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var u User
	if err := l.db.QueryRow(
		ctx,
		`SELECT
				id, email, username, name, surname, height, weight,
				birth_date, location, registration_date, is_athlete, is_blocked
			FROM users WHERE id = $1;`,
		id,
	).Scan(
		&u.ID, &u.Email, &u.Username, &u.Name, &u.Surname, &u.Height, &u.Weight,
		&u.BirthDate, &u.Location, &u.RegistrationDate, &u.IsAthlete, &u.IsBlocked,
	); err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// user side foreign keys of the ledger tables, as named in schema.sql
const (
	favoriteUserFKey = "user_training_user_id_fkey"
	ratingUserFKey   = "user_rates_training_user_id_fkey"
)

// AddFavorite returns ErrAlreadyFavorite when the pair is already stored, and
// ErrUserNotFound or trainings.ErrTrainingNotFound when either went away after the lookup.
func (l *Ledger) AddFavorite(ctx context.Context, userID string, trainingID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.addFavorite")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := l.db.Exec(
		ctx,
		`INSERT INTO user_training (user_id, training_id) VALUES ($1, $2);`,
		userID, trainingID,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrAlreadyFavorite
		}
		if missingErr := missingReference(err, favoriteUserFKey); missingErr != nil {
			return missingErr
		}
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes the pair if present. Removing a missing pair is not an error.
func (l *Ledger) RemoveFavorite(ctx context.Context, userID string, trainingID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.removeFavorite")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := l.db.Exec(
		ctx,
		`DELETE FROM user_training WHERE user_id = $1 AND training_id = $2;`,
		userID, trainingID,
	); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// FavoriteIDs returns one page of the user's favorite training ids, ordered by training id.
func (l *Ledger) FavoriteIDs(ctx context.Context, userID string, offset, limit int) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.favoriteIds")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := l.db.Query(
		ctx,
		`SELECT training_id FROM user_training
			WHERE user_id = $1
			ORDER BY training_id
			OFFSET $2 LIMIT $3;`,
		userID, offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("collect favorites: %w", err)
	}
	return ids, nil
}

func (l *Ledger) CountFavorites(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.countFavorites")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := l.db.QueryRow(
		ctx,
		`SELECT count(*) FROM user_training WHERE user_id = $1;`,
		userID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return count, nil
}

// UpsertRating stores the rate, replacing a previous one by the same user.
// Missing users and trainings are reported as in AddFavorite.
func (l *Ledger) UpsertRating(ctx context.Context, userID string, trainingID int, rate float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.upsertRating")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := l.db.Exec(
		ctx,
		`INSERT INTO user_rates_training (user_id, training_id, rating)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, training_id) DO UPDATE SET rating = EXCLUDED.rating;`,
		userID, trainingID, rate,
	); err != nil {
		if missingErr := missingReference(err, ratingUserFKey); missingErr != nil {
			return missingErr
		}
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

func (l *Ledger) GetRating(ctx context.Context, userID string, trainingID int) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getRating")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var rate float64
	if err := l.db.QueryRow(
		ctx,
		`SELECT rating FROM user_rates_training WHERE user_id = $1 AND training_id = $2;`,
		userID, trainingID,
	).Scan(&rate); err != nil {
		if pkg.IsNoRowsError(err) {
			return 0, ErrRatingNotFound
		}
		return 0, fmt.Errorf("get rating: %w", err)
	}
	return rate, nil
}

// missingReference maps a foreign key violation to the entity that is gone, nil for other errors.
func missingReference(err error, userFKey string) error {
	constraint, ok := pkg.ForeignKeyViolationConstraint(err)
	if !ok {
		return nil
	}
	if constraint == userFKey {
		return ErrUserNotFound
	}
	return trainings.ErrTrainingNotFound
}
