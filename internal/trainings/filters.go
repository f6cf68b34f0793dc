package trainings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fiufit/trainings/internal/catalog"
	"github.com/fiufit/trainings/internal/telemetry/tracing"
)

const (
	DefaultOffset = 0
	DefaultLimit  = 10
)

type predicateKind int

const (
	predicateTrainer predicateKind = iota
	predicateType
	predicateDifficulty
	predicateTitle
)

// Predicate is a single condition on the training table. Predicates of a
// Filters value are combined with AND.
type Predicate struct {
	kind  predicateKind
	value any
}

func TrainerIs(trainerID string) Predicate {
	return Predicate{kind: predicateTrainer, value: trainerID}
}

func TypeIs(typeID int) Predicate {
	return Predicate{kind: predicateType, value: typeID}
}

func DifficultyIs(difficultyID int) Predicate {
	return Predicate{kind: predicateDifficulty, value: difficultyID}
}

// TitleContains matches a case-sensitive substring anywhere in the title.
func TitleContains(substring string) Predicate {
	return Predicate{kind: predicateTitle, value: substring}
}

func (p Predicate) condition(argPos int) string {
	switch p.kind {
	case predicateTrainer:
		return fmt.Sprintf("t.trainer_id = $%d", argPos)
	case predicateType:
		return fmt.Sprintf("t.type_id = $%d", argPos)
	case predicateDifficulty:
		return fmt.Sprintf("t.difficulty_id = $%d", argPos)
	case predicateTitle:
		// strpos instead of LIKE, so % and _ in user input stay literal
		return fmt.Sprintf("strpos(t.title, $%d) > 0", argPos)
	default:
		panic(fmt.Sprintf("unknown predicate kind: %d", p.kind))
	}
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s=%v", [...]string{"trainer", "type", "difficulty", "title"}[p.kind], p.value)
}

// whereClause renders predicates as a WHERE clause with placeholders starting at $1.
func whereClause(predicates []Predicate) (string, []any) {
	if len(predicates) == 0 {
		return "", nil
	}

	conditions := make([]string, 0, len(predicates))
	args := make([]any, 0, len(predicates))
	for i, p := range predicates {
		conditions = append(conditions, p.condition(i+1))
		args = append(args, p.value)
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

type Filters struct {
	Predicates []Predicate
	Offset     int
	Limit      int
}

// SearchRequest holds the raw search parameters. Empty strings mean "no constraint".
type SearchRequest struct {
	TrainerID    string
	TrainingType string
	Difficulty   string
	Title        string
	Offset       int
	Limit        int
}

// ReferenceError is returned when a request names a type, difficulty or exercise
// the catalog does not know.
type ReferenceError struct {
	Cause *catalog.NotFoundError
}

func (e *ReferenceError) Error() string {
	return "Could not save training. " + e.Cause.Error()
}

func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

type referenceResolver interface {
	ResolveType(ctx context.Context, name string) (catalog.TrainingType, error)
	ResolveDifficulty(ctx context.Context, name string) (catalog.Difficulty, error)
	ResolveExercise(ctx context.Context, name string, unit *string) (catalog.ExerciseDefinition, error)
}

type FilterBuilder struct {
	resolver referenceResolver
}

func NewFilterBuilder(resolver referenceResolver) *FilterBuilder {
	return &FilterBuilder{
		resolver: resolver,
	}
}

// Build resolves the named references and returns the predicates to apply.
// Nothing is queried for trainings until every name resolved.
func (fb *FilterBuilder) Build(ctx context.Context, req SearchRequest) (_ Filters, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainings.filters.build")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	filters := Filters{
		Offset: req.Offset,
		Limit:  req.Limit,
	}

	if req.TrainerID != "" {
		filters.Predicates = append(filters.Predicates, TrainerIs(req.TrainerID))
	}

	if req.TrainingType != "" {
		trainingType, err := fb.resolver.ResolveType(ctx, req.TrainingType)
		if err != nil {
			return Filters{}, asReferenceError(err)
		}
		filters.Predicates = append(filters.Predicates, TypeIs(trainingType.ID))
	}

	if req.Difficulty != "" {
		difficulty, err := fb.resolver.ResolveDifficulty(ctx, req.Difficulty)
		if err != nil {
			return Filters{}, asReferenceError(err)
		}
		filters.Predicates = append(filters.Predicates, DifficultyIs(difficulty.ID))
	}

	if req.Title != "" {
		filters.Predicates = append(filters.Predicates, TitleContains(req.Title))
	}

	return filters, nil
}

func asReferenceError(err error) error {
	var notFoundErr *catalog.NotFoundError
	if errors.As(err, &notFoundErr) {
		return &ReferenceError{Cause: notFoundErr}
	}
	return err
}
