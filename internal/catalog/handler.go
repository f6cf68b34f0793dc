package catalog

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fiufit/trainings/internal/telemetry/tracing"
	"github.com/fiufit/trainings/pkg"
)

type referenceLister interface {
	Types(ctx context.Context) ([]TrainingType, error)
	Difficulties(ctx context.Context) ([]Difficulty, error)
	Exercises(ctx context.Context) ([]ExerciseDefinition, error)
}

type NamesResponse struct {
	Items []string `json:"items"`
}

type ExerciseOut struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	Unit *string `json:"unit,omitempty"`
}

type ExercisesResponse struct {
	Items []ExerciseOut `json:"items"`
}

type Handler struct {
	lister referenceLister
}

func NewHandler(lister referenceLister) *Handler {
	return &Handler{
		lister: lister,
	}
}

// SetupRoutes registers the reference listings; they must go before /trainings/{id}.
func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/trainings/types/", handler.HandleTypes).Methods("GET").Name("list-types")
	mainRouter.HandleFunc("/trainings/difficulties/", handler.HandleDifficulties).Methods("GET").Name("list-difficulties")
	mainRouter.HandleFunc("/trainings/exercises/", handler.HandleExercises).Methods("GET").Name("list-exercises")
}

func (handler *Handler) HandleTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.types")
	defer span.End()

	types, err := handler.lister.Types(ctx)
	if err != nil {
		log.Errorf("list training types: %s", err)
		pkg.WriteDetail(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	resp := NamesResponse{Items: make([]string, 0, len(types))}
	for _, t := range types {
		resp.Items = append(resp.Items, t.Name)
	}
	pkg.WriteJSONResponse(w, resp, http.StatusOK)
}

func (handler *Handler) HandleDifficulties(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.difficulties")
	defer span.End()

	difficulties, err := handler.lister.Difficulties(ctx)
	if err != nil {
		log.Errorf("list difficulties: %s", err)
		pkg.WriteDetail(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	resp := NamesResponse{Items: make([]string, 0, len(difficulties))}
	for _, d := range difficulties {
		resp.Items = append(resp.Items, d.Name)
	}
	pkg.WriteJSONResponse(w, resp, http.StatusOK)
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises")
	defer span.End()

	exercises, err := handler.lister.Exercises(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		pkg.WriteDetail(w, "Internal server error.", http.StatusInternalServerError)
		return
	}

	resp := ExercisesResponse{Items: make([]ExerciseOut, 0, len(exercises))}
	for _, ex := range exercises {
		resp.Items = append(resp.Items, ExerciseOut{
			Name: ex.Name,
			Type: ex.Type.Name,
			Unit: ex.Unit,
		})
	}
	pkg.WriteJSONResponse(w, resp, http.StatusOK)
}
