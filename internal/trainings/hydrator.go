package trainings

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/fiufit/trainings/internal/media"
	"github.com/fiufit/trainings/internal/telemetry/metrics"
	"github.com/fiufit/trainings/internal/telemetry/tracing"
)

type mediaReader interface {
	Read(ctx context.Context, handle string) ([]byte, error)
}

// Hydrator turns stored training aggregates into their wire form.
type Hydrator struct {
	media   mediaReader
	metrics *metrics.Manager
}

func NewHydrator(media mediaReader, metricsManager *metrics.Manager) *Hydrator {
	return &Hydrator{
		media:   media,
		metrics: metricsManager,
	}
}

func (h *Hydrator) Hydrate(ctx context.Context, t Training) (_ TrainingOut, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainings.hydrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	out := TrainingOut{
		ID:          t.ID,
		TrainerID:   t.TrainerID,
		Title:       t.Title,
		Description: t.Description,
		Type:        t.Type.Name,
		Difficulty:  t.Difficulty.Name,
		Rating:      MeanRating(t.Ratings),
		Blocked:     t.Blocked,
		Exercises:   make([]ExerciseOut, 0, len(t.Exercises)),
	}

	for _, entry := range t.Exercises {
		out.Exercises = append(out.Exercises, ExerciseOut{
			Name:   entry.Exercise.Name,
			Type:   entry.Exercise.Type.Name,
			Unit:   entry.Exercise.Unit,
			Count:  entry.Count,
			Series: entry.Series,
		})
	}

	if t.Media != nil {
		content, err := h.media.Read(ctx, *t.Media)
		switch {
		case errors.Is(err, media.ErrNotFound):
			log.Warnf("training %d: media [%s] missing from storage", t.ID, *t.Media)
			h.metrics.CounterMediaMissing.Inc()
		case err != nil:
			return TrainingOut{}, fmt.Errorf("read media for training %d: %w", t.ID, err)
		default:
			mediaContent := string(content)
			out.Media = &mediaContent
		}
	}

	return out, nil
}

func (h *Hydrator) HydrateAll(ctx context.Context, trainings []Training) ([]TrainingOut, error) {
	out := make([]TrainingOut, 0, len(trainings))
	for _, t := range trainings {
		hydrated, err := h.Hydrate(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, hydrated)
	}
	return out, nil
}

// MeanRating is the arithmetic mean of ratings, 0 when there are none.
func MeanRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return sum / float64(len(ratings))
}
