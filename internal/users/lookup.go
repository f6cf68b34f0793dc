package users

import (
	"context"

	"github.com/fiufit/trainings/internal/apierr"
	"github.com/fiufit/trainings/internal/trainings"
)

type userGetter interface {
	GetUser(ctx context.Context, id string) (*User, error)
}

type trainingChecker interface {
	Exists(ctx context.Context, id int) error
}

// Lookup checks, once per request, that the entities a request names exist.
// Missing rows come back as a 404 *apierr.Error with an entity specific detail.
type Lookup struct {
	users     userGetter
	trainings trainingChecker
}

func NewLookup(users userGetter, trainings trainingChecker) *Lookup {
	return &Lookup{
		users:     users,
		trainings: trainings,
	}
}

func (l *Lookup) User(ctx context.Context, userID string) error {
	_, err := l.users.GetUser(ctx, userID)
	return apierr.FromLookup(err, ErrUserNotFound, apierr.MsgUserNotFound)
}

func (l *Lookup) Training(ctx context.Context, trainingID int) error {
	err := l.trainings.Exists(ctx, trainingID)
	return apierr.FromLookup(err, trainings.ErrTrainingNotFound, apierr.MsgTrainingNotFound)
}

// UserAndTraining checks the user first, then the training.
func (l *Lookup) UserAndTraining(ctx context.Context, userID string, trainingID int) error {
	if err := l.User(ctx, userID); err != nil {
		return err
	}
	return l.Training(ctx, trainingID)
}
