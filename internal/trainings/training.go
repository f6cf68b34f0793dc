package trainings

import (
	"errors"
	"strconv"

	"github.com/fiufit/trainings/internal/apierr"
	"github.com/fiufit/trainings/internal/catalog"
)

var ErrTrainingNotFound = errors.New("training not found")

const defaultSeries = 1

// ExerciseEntry is one step of a training composition, in persisted order.
type ExerciseEntry struct {
	Exercise catalog.ExerciseDefinition
	Count    int
	Series   int
}

// Training is the aggregate: the training row, its resolved references,
// its exercise composition and every rating submitted for it.
type Training struct {
	ID          int
	TrainerID   string
	Title       string
	Description string
	Type        catalog.TrainingType
	Difficulty  catalog.Difficulty
	Media       *string
	Blocked     bool
	Exercises   []ExerciseEntry
	Ratings     []float64
}

// NewTraining is a training with every reference already resolved to an id.
type NewTraining struct {
	TrainerID    string
	Title        string
	Description  string
	TypeID       int
	DifficultyID int
	Media        *string
	Exercises    []NewExerciseEntry
}

type NewExerciseEntry struct {
	ExerciseID int
	Count      int
	Series     int
}

type ExerciseOut struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Unit   *string `json:"unit,omitempty"`
	Count  int     `json:"count"`
	Series int     `json:"series"`
}

type TrainingOut struct {
	ID          int           `json:"id"`
	TrainerID   string        `json:"trainer_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        string        `json:"type"`
	Difficulty  string        `json:"difficulty"`
	Media       *string       `json:"media,omitempty"`
	Rating      float64       `json:"rating"`
	Blocked     bool          `json:"blocked"`
	Exercises   []ExerciseOut `json:"exercises"`
}

type Page struct {
	Items  []TrainingOut `json:"items"`
	Offset int           `json:"offset"`
	Limit  int           `json:"limit"`
	Count  int           `json:"count"`
}

type ExerciseIn struct {
	Name   *string `json:"name"`
	Unit   *string `json:"unit"`
	Count  *int    `json:"count"`
	Series *int    `json:"series"`
}

// TrainingIn is the creation request. Pointer fields tell a missing value from a zero one.
type TrainingIn struct {
	TrainerID   *string      `json:"trainer_id"`
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Type        *string      `json:"type"`
	Difficulty  *string      `json:"difficulty"`
	Media       *string      `json:"media"`
	Exercises   []ExerciseIn `json:"exercises"`
}

// Validate reports every missing required field at once.
func (in TrainingIn) Validate() []apierr.FieldError {
	var fieldErrors []apierr.FieldError
	required := []struct {
		name string
		set  bool
	}{
		{"trainer_id", in.TrainerID != nil},
		{"title", in.Title != nil},
		{"description", in.Description != nil},
		{"type", in.Type != nil},
		{"difficulty", in.Difficulty != nil},
		{"exercises", in.Exercises != nil},
	}
	for _, field := range required {
		if !field.set {
			fieldErrors = append(fieldErrors, apierr.MissingField(field.name))
		}
	}

	for i, ex := range in.Exercises {
		idx := strconv.Itoa(i)
		if ex.Name == nil {
			fieldErrors = append(fieldErrors, apierr.MissingField("exercises", idx, "name"))
		}
		if ex.Count == nil {
			fieldErrors = append(fieldErrors, apierr.MissingField("exercises", idx, "count"))
		}
	}

	return fieldErrors
}

func (ex ExerciseIn) series() int {
	if ex.Series == nil {
		return defaultSeries
	}
	return *ex.Series
}
