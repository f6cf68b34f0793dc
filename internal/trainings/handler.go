package trainings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fiufit/trainings/internal/apierr"
	"github.com/fiufit/trainings/internal/auth"
	"github.com/fiufit/trainings/internal/media"
	"github.com/fiufit/trainings/internal/middleware"
	"github.com/fiufit/trainings/internal/telemetry/metrics"
	"github.com/fiufit/trainings/internal/telemetry/tracing"
	"github.com/fiufit/trainings/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainings_test

type creationAuthorizer interface {
	CanCreateTraining(ctx context.Context, authHeader string) error
}

const msgMediaUnavailable = "Media storage unavailable, try again later."

type Handler struct {
	service    *Service
	authorizer creationAuthorizer
}

func NewHandler(service *Service, authorizer creationAuthorizer) *Handler {
	return &Handler{
		service:    service,
		authorizer: authorizer,
	}
}

// SetupRoutes registers the trainings routes. Creation is rate limited only when rateLimiter is set.
func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	createAllowedPerMin int,
) {
	var create http.Handler = http.HandlerFunc(handler.HandleCreate)
	if rateLimiter != nil {
		create = middleware.RateLimit(rateLimiter, "create-training", createAllowedPerMin, metricsManager)(create)
	}

	mainRouter.HandleFunc("/trainings", handler.HandleList).Methods("GET").Name("list-trainings")
	mainRouter.Handle("/trainings", create).Methods("POST").Name("create-training")
	mainRouter.HandleFunc("/trainings/{id}", handler.HandleGet).Methods("GET").Name("get-training")
	mainRouter.HandleFunc("/trainings/{id}", handler.HandlePatch).Methods("PATCH").Name("patch-training")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.list")
	defer span.End()

	query := r.URL.Query()
	offset, limit, err := ParsePagination(query)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	req := SearchRequest{
		TrainerID:    query.Get("trainer_id"),
		TrainingType: query.Get("training_type"),
		Difficulty:   query.Get("difficulty"),
		Title:        query.Get("title"),
		Offset:       offset,
		Limit:        limit,
	}
	log.Infof("searching for trainings: %+v", req)

	page, err := handler.service.Search(ctx, req)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	pkg.WriteJSONResponse(w, page, http.StatusOK)
}

// HandleGet answers 201 on success; existing clients rely on that status.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.get")
	defer span.End()

	id, ok := trainingIDFromPath(w, r)
	if !ok {
		return
	}
	log.Infof("getting training %d", id)

	training, err := handler.service.Get(ctx, id)
	if err != nil {
		writeError(w, err, http.StatusNotFound)
		return
	}
	pkg.WriteJSONResponse(w, training, http.StatusCreated)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.create")
	defer span.End()

	var in TrainingIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Debugf("create training, decode body: %s", err)
		apierr.Write(w, apierr.Unprocessable([]apierr.FieldError{
			apierr.InvalidField("value is not a valid dict", "type_error.dict"),
		}))
		return
	}
	if fieldErrors := in.Validate(); len(fieldErrors) > 0 {
		apierr.Write(w, apierr.Unprocessable(fieldErrors))
		return
	}

	if err := handler.authorizer.CanCreateTraining(ctx, r.Header.Get("Authorization")); err != nil {
		writeError(w, err, http.StatusNotFound)
		return
	}

	log.Infof("creating training [%s] for trainer [%s]", *in.Title, *in.TrainerID)
	created, err := handler.service.Create(ctx, in)
	if err != nil {
		writeError(w, err, http.StatusNotFound)
		return
	}
	pkg.WriteJSONResponse(w, created, http.StatusOK)
}

func (handler *Handler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.patch")
	defer span.End()

	id, ok := trainingIDFromPath(w, r)
	if !ok {
		return
	}

	var req PatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("patch training, decode body: %s", err)
		apierr.Write(w, apierr.Unprocessable([]apierr.FieldError{
			apierr.InvalidField("value is not a valid dict", "type_error.dict"),
		}))
		return
	}
	log.Infof("patching training %d", id)

	if err := handler.service.Patch(ctx, id, req); err != nil {
		writeError(w, err, http.StatusNotFound)
		return
	}
	pkg.WriteNoContent(w)
}

// ParsePagination reads offset and limit, defaulting to 0 and 10. Negative or
// non-numeric values are rejected with a 422.
func ParsePagination(query url.Values) (offset, limit int, err error) {
	var fieldErrors []apierr.FieldError
	parse := func(name string, def int) int {
		v, err := pkg.QueryInt(query.Get(name), def)
		if err != nil {
			fieldErrors = append(fieldErrors, apierr.InvalidQueryParam(name, "value is not a valid integer", "type_error.integer"))
			return def
		}
		if v < 0 {
			fieldErrors = append(fieldErrors, apierr.InvalidQueryParam(name, "ensure this value is greater than or equal to 0", "value_error.number.not_ge"))
			return def
		}
		return v
	}

	offset = parse("offset", DefaultOffset)
	limit = parse("limit", DefaultLimit)
	if len(fieldErrors) > 0 {
		return 0, 0, apierr.Unprocessable(fieldErrors)
	}
	return offset, limit, nil
}

func trainingIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		apierr.Write(w, apierr.Unprocessable([]apierr.FieldError{{
			Loc:  []string{"path", "id"},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}}))
		return 0, false
	}
	return id, true
}

// writeError maps domain failures to responses. Unknown references answer
// referenceStatus, which differs between search (400) and writes (404).
func writeError(w http.ResponseWriter, err error, referenceStatus int) {
	var referenceErr *ReferenceError
	var deniedErr *auth.DeniedError
	switch {
	case errors.As(err, &referenceErr):
		log.Warnln(referenceErr.Error())
		apierr.Write(w, apierr.New(referenceStatus, referenceErr.Error()))
	case errors.Is(err, ErrTrainingNotFound):
		apierr.Write(w, apierr.New(http.StatusNotFound, apierr.MsgTrainingNotFound))
	case errors.As(err, &deniedErr):
		log.Warnf("training creation denied: %s", deniedErr)
		apierr.Write(w, apierr.New(http.StatusForbidden, deniedErr.Detail))
	case errors.Is(err, media.ErrUnavailable):
		apierr.Write(w, &apierr.Error{Status: http.StatusServiceUnavailable, Detail: msgMediaUnavailable, Cause: err})
	default:
		apierr.Write(w, err)
	}
}
