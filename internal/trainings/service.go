package trainings

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/fiufit/trainings/internal/catalog"
	"github.com/fiufit/trainings/internal/telemetry/metrics"
	"github.com/fiufit/trainings/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=trainings_test

type trainingsRepo interface {
	List(ctx context.Context, filters Filters) ([]Training, error)
	Count(ctx context.Context, predicates []Predicate) (int, error)
	Get(ctx context.Context, id int) (*Training, error)
	GetMany(ctx context.Context, ids []int) ([]Training, error)
	TrainerID(ctx context.Context, id int) (string, error)
	Create(ctx context.Context, newTraining NewTraining) (*Training, error)
	ApplyPatch(ctx context.Context, id int, columns Columns) error
}

type catalogResolver interface {
	ResolveType(ctx context.Context, name string) (catalog.TrainingType, error)
	ResolveDifficulty(ctx context.Context, name string) (catalog.Difficulty, error)
	ResolveExercise(ctx context.Context, name string, unit *string) (catalog.ExerciseDefinition, error)
}

type mediaStore interface {
	Save(ctx context.Context, content []byte, ownerID string) (string, error)
	Read(ctx context.Context, handle string) ([]byte, error)
}

type Service struct {
	repo     trainingsRepo
	catalog  catalogResolver
	media    mediaStore
	filters  *FilterBuilder
	patcher  *PatchResolver
	hydrator *Hydrator
	metrics  *metrics.Manager
}

func NewService(
	repo trainingsRepo,
	catalog catalogResolver,
	media mediaStore,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:     repo,
		catalog:  catalog,
		media:    media,
		filters:  NewFilterBuilder(catalog),
		patcher:  NewPatchResolver(catalog, media),
		hydrator: NewHydrator(media, metricsManager),
		metrics:  metricsManager,
	}
}

// Search resolves the filter names, then runs the page and the count queries.
func (s *Service) Search(ctx context.Context, req SearchRequest) (_ Page, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	filters, err := s.filters.Build(ctx, req)
	if err != nil {
		return Page{}, err
	}
	log.Debugf("searching trainings with predicates %v, offset %d, limit %d", filters.Predicates, filters.Offset, filters.Limit)

	return s.page(ctx, filters)
}

func (s *Service) page(ctx context.Context, filters Filters) (Page, error) {
	trainings, err := s.repo.List(ctx, filters)
	if err != nil {
		return Page{}, err
	}
	count, err := s.repo.Count(ctx, filters.Predicates)
	if err != nil {
		return Page{}, err
	}

	items, err := s.hydrator.HydrateAll(ctx, trainings)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Items:  items,
		Offset: filters.Offset,
		Limit:  filters.Limit,
		Count:  count,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ TrainingOut, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	training, err := s.repo.Get(ctx, id)
	if err != nil {
		return TrainingOut{}, err
	}
	return s.hydrator.Hydrate(ctx, *training)
}

// GetMany hydrates the trainings with the given ids, keeping their order.
func (s *Service) GetMany(ctx context.Context, ids []int) (_ []TrainingOut, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.getMany")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	trainings, err := s.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.hydrator.HydrateAll(ctx, trainings)
}

// Exists returns ErrTrainingNotFound when there is no training with id.
func (s *Service) Exists(ctx context.Context, id int) error {
	_, err := s.repo.TrainerID(ctx, id)
	return err
}

// Create resolves every reference before writing anything. A media payload is stored
// under the trainer before the insert.
func (s *Service) Create(ctx context.Context, in TrainingIn) (_ TrainingOut, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	newTraining, err := s.resolveNewTraining(ctx, in)
	if err != nil {
		return TrainingOut{}, err
	}

	if in.Media != nil {
		handle, err := s.media.Save(ctx, []byte(*in.Media), newTraining.TrainerID)
		if err != nil {
			return TrainingOut{}, fmt.Errorf("save media: %w", err)
		}
		s.metrics.CounterMediaSaved.Inc()
		newTraining.Media = &handle
	}

	created, err := s.repo.Create(ctx, newTraining)
	if err != nil {
		return TrainingOut{}, fmt.Errorf("create training: %w", err)
	}
	s.metrics.CounterTrainingsCreated.Inc()
	log.Infof("training %d created by trainer [%s]", created.ID, created.TrainerID)

	return s.hydrator.Hydrate(ctx, *created)
}

func (s *Service) resolveNewTraining(ctx context.Context, in TrainingIn) (NewTraining, error) {
	trainingType, err := s.catalog.ResolveType(ctx, *in.Type)
	if err != nil {
		return NewTraining{}, asReferenceError(err)
	}
	difficulty, err := s.catalog.ResolveDifficulty(ctx, *in.Difficulty)
	if err != nil {
		return NewTraining{}, asReferenceError(err)
	}

	entries := make([]NewExerciseEntry, 0, len(in.Exercises))
	for _, ex := range in.Exercises {
		definition, err := s.catalog.ResolveExercise(ctx, *ex.Name, ex.Unit)
		if err != nil {
			return NewTraining{}, asReferenceError(err)
		}
		entries = append(entries, NewExerciseEntry{
			ExerciseID: definition.ID,
			Count:      *ex.Count,
			Series:     ex.series(),
		})
	}

	return NewTraining{
		TrainerID:    *in.TrainerID,
		Title:        *in.Title,
		Description:  *in.Description,
		TypeID:       trainingType.ID,
		DifficultyID: difficulty.ID,
		Exercises:    entries,
	}, nil
}

// Patch looks up the training owner, which also checks the training exists, then
// resolves the requested changes and applies them.
func (s *Service) Patch(ctx context.Context, id int, req PatchRequest) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.patch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ownerID, err := s.repo.TrainerID(ctx, id)
	if err != nil {
		return err
	}

	columns, err := s.patcher.Resolve(ctx, id, ownerID, req)
	if err != nil {
		return err
	}
	if _, ok := columns[ColumnMedia]; ok {
		s.metrics.CounterMediaSaved.Inc()
	}

	if err := s.repo.ApplyPatch(ctx, id, columns); err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	s.metrics.CounterTrainingsPatched.Inc()
	return nil
}
