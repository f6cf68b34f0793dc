package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/fiufit/trainings/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

const (
	cacheSize = 1024 * 1024 // 1 MB
	// reference rows never change after seeding, the expiry only bounds memory of stale misses
	cacheExpireSeconds = 60 * 60
)

// ErrNotFound is returned by the repo when no reference row matches.
var ErrNotFound = errors.New("reference not found")

const (
	KindType       = "Type"
	KindDifficulty = "Difficulty"
	KindExercise   = "Exercise"
)

// NotFoundError carries the queried value so callers can build a descriptive message.
type NotFoundError struct {
	Kind string
	Name string
	Unit *string
}

func (e *NotFoundError) Error() string {
	if e.Unit != nil {
		return fmt.Sprintf("%s %s (%s) not found.", e.Kind, e.Name, *e.Unit)
	}
	return fmt.Sprintf("%s %s not found.", e.Kind, e.Name)
}

type TrainingType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Difficulty struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ExerciseDefinition struct {
	ID   int          `json:"id"`
	Name string       `json:"name"`
	Type TrainingType `json:"type"`
	Unit *string      `json:"unit,omitempty"`
}

type catalogRepo interface {
	Seed(ctx context.Context) error
	FindType(ctx context.Context, name string) (*TrainingType, error)
	FindDifficulty(ctx context.Context, name string) (*Difficulty, error)
	FindExercise(ctx context.Context, name string, unit *string) (*ExerciseDefinition, error)
	ListTypes(ctx context.Context) ([]TrainingType, error)
	ListDifficulties(ctx context.Context) ([]Difficulty, error)
	ListExercises(ctx context.Context) ([]ExerciseDefinition, error)
}

// Catalog resolves reference names to rows, memoizing hits.
type Catalog struct {
	repo  catalogRepo
	cache *freecache.Cache
}

func NewCatalog(repo catalogRepo) *Catalog {
	return &Catalog{
		repo:  repo,
		cache: freecache.NewCache(cacheSize),
	}
}

func (c *Catalog) Seed(ctx context.Context) error {
	if err := c.repo.Seed(ctx); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	c.cache.Clear()
	return nil
}

func (c *Catalog) ResolveType(ctx context.Context, name string) (_ TrainingType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.resolveType")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var tt TrainingType
	key := "type|" + name
	if c.fromCache(key, &tt) {
		return tt, nil
	}

	found, err := c.repo.FindType(ctx, name)
	if err != nil {
		return TrainingType{}, c.wrapNotFound(err, KindType, name, nil)
	}
	c.toCache(key, found)
	return *found, nil
}

func (c *Catalog) ResolveDifficulty(ctx context.Context, name string) (_ Difficulty, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.resolveDifficulty")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var d Difficulty
	key := "difficulty|" + name
	if c.fromCache(key, &d) {
		return d, nil
	}

	found, err := c.repo.FindDifficulty(ctx, name)
	if err != nil {
		return Difficulty{}, c.wrapNotFound(err, KindDifficulty, name, nil)
	}
	c.toCache(key, found)
	return *found, nil
}

// ResolveExercise matches on both name and unit; a nil unit only matches exercises without one.
func (c *Catalog) ResolveExercise(ctx context.Context, name string, unit *string) (_ ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.resolveExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := "exercise|" + name + "|"
	if unit != nil {
		key += "u:" + *unit
	}

	var ex ExerciseDefinition
	if c.fromCache(key, &ex) {
		return ex, nil
	}

	found, err := c.repo.FindExercise(ctx, name, unit)
	if err != nil {
		return ExerciseDefinition{}, c.wrapNotFound(err, KindExercise, name, unit)
	}
	c.toCache(key, found)
	return *found, nil
}

func (c *Catalog) Types(ctx context.Context) ([]TrainingType, error) {
	return c.repo.ListTypes(ctx)
}

func (c *Catalog) Difficulties(ctx context.Context) ([]Difficulty, error) {
	return c.repo.ListDifficulties(ctx)
}

func (c *Catalog) Exercises(ctx context.Context) ([]ExerciseDefinition, error) {
	return c.repo.ListExercises(ctx)
}

func (c *Catalog) wrapNotFound(err error, kind, name string, unit *string) error {
	if errors.Is(err, ErrNotFound) {
		return &NotFoundError{Kind: kind, Name: name, Unit: unit}
	}
	return fmt.Errorf("find %s [%s]: %w", kind, name, err)
}

func (c *Catalog) fromCache(key string, v any) bool {
	cached, err := c.cache.Get([]byte(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(cached, v); err != nil {
		log.Warnf("catalog cache, unmarshal [%s]: %s", key, err)
		return false
	}
	return true
}

func (c *Catalog) toCache(key string, v any) {
	entryBytes, err := json.Marshal(v)
	if err != nil {
		log.Warnf("catalog cache, marshal [%s]: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), entryBytes, cacheExpireSeconds); err != nil {
		log.Debugf("catalog cache, set [%s]: %s", key, err)
	}
}
