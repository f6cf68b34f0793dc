package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fiufit/trainings/internal/apierr"
	"github.com/fiufit/trainings/internal/middleware"
	"github.com/fiufit/trainings/internal/telemetry/metrics"
	"github.com/fiufit/trainings/internal/telemetry/tracing"
	"github.com/fiufit/trainings/internal/trainings"
	"github.com/fiufit/trainings/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type ledgerStore interface {
	GetUser(ctx context.Context, id string) (*User, error)
	AddFavorite(ctx context.Context, userID string, trainingID int) error
	RemoveFavorite(ctx context.Context, userID string, trainingID int) error
	FavoriteIDs(ctx context.Context, userID string, offset, limit int) ([]int, error)
	CountFavorites(ctx context.Context, userID string) (int, error)
	UpsertRating(ctx context.Context, userID string, trainingID int, rate float64) error
	GetRating(ctx context.Context, userID string, trainingID int) (float64, error)
}

type trainingsReader interface {
	Exists(ctx context.Context, id int) error
	GetMany(ctx context.Context, ids []int) ([]trainings.TrainingOut, error)
}

const msgAlreadyFavorite = "Training already in favorites."

type Handler struct {
	ledger    ledgerStore
	trainings trainingsReader
	lookup    *Lookup
	metrics   *metrics.Manager
}

func NewHandler(ledger ledgerStore, trainingsReader trainingsReader, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		ledger:    ledger,
		trainings: trainingsReader,
		lookup:    NewLookup(ledger, trainingsReader),
		metrics:   metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router, rateLimiter middleware.RequestRateLimiter, rateAllowedPerMin int) {
	var rate http.Handler = http.HandlerFunc(handler.HandleRate)
	if rateLimiter != nil {
		rate = middleware.RateLimit(rateLimiter, "rate-training", rateAllowedPerMin, handler.metrics)(rate)
	}

	// no subrouter here: a method mismatch on these paths has to answer 405
	const favoritesPath = "/users/{user_id}/trainings"
	const trainingPath = favoritesPath + "/{training_id}"
	mainRouter.HandleFunc(favoritesPath, handler.HandleAddFavorite).Methods("POST").Name("add-favorite")
	mainRouter.HandleFunc(favoritesPath, handler.HandleListFavorites).Methods("GET").Name("list-favorites")
	mainRouter.HandleFunc(trainingPath, handler.HandleRemoveFavorite).Methods("DELETE").Name("remove-favorite")
	mainRouter.Handle(trainingPath, rate).Methods("PUT").Name("rate-training")
	mainRouter.HandleFunc(trainingPath+"/rating", handler.HandleGetRating).Methods("GET").Name("get-rating")
}

func (handler *Handler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.addFavorite")
	defer span.End()

	userID := mux.Vars(r)["user_id"]

	var in FavoriteIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Debugf("add favorite, decode body: %s", err)
		apierr.Write(w, apierr.Unprocessable([]apierr.FieldError{
			apierr.InvalidField("value is not a valid dict", "type_error.dict"),
		}))
		return
	}
	if in.TrainingID == nil {
		apierr.Write(w, apierr.Unprocessable([]apierr.FieldError{apierr.MissingField("training_id")}))
		return
	}
	trainingID := *in.TrainingID

	log.Infof("user [%s] adds training %d to favorites", userID, trainingID)
	if err := handler.lookup.UserAndTraining(ctx, userID, trainingID); err != nil {
		apierr.Write(w, err)
		return
	}

	if err := handler.ledger.AddFavorite(ctx, userID, trainingID); err != nil {
		if errors.Is(err, ErrAlreadyFavorite) {
			apierr.Write(w, apierr.New(http.StatusConflict, msgAlreadyFavorite))
			return
		}
		apierr.Write(w, ledgerWriteError(err))
		return
	}

	handler.metrics.CounterFavoritesAdded.Inc()
	pkg.WriteNoContent(w)
}

func (handler *Handler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.removeFavorite")
	defer span.End()

	userID, trainingID, ok := userAndTrainingFromPath(w, r)
	if !ok {
		return
	}

	log.Infof("user [%s] removes training %d from favorites", userID, trainingID)
	if err := handler.lookup.UserAndTraining(ctx, userID, trainingID); err != nil {
		apierr.Write(w, err)
		return
	}

	if err := handler.ledger.RemoveFavorite(ctx, userID, trainingID); err != nil {
		apierr.Write(w, err)
		return
	}
	pkg.WriteNoContent(w)
}

func (handler *Handler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.listFavorites")
	defer span.End()

	userID := mux.Vars(r)["user_id"]
	offset, limit, err := trainings.ParsePagination(r.URL.Query())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	log.Infof("listing favorite trainings of user [%s]", userID)
	if err := handler.lookup.User(ctx, userID); err != nil {
		apierr.Write(w, err)
		return
	}

	ids, err := handler.ledger.FavoriteIDs(ctx, userID, offset, limit)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	count, err := handler.ledger.CountFavorites(ctx, userID)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	items, err := handler.trainings.GetMany(ctx, ids)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	pkg.WriteJSONResponse(w, trainings.Page{
		Items:  items,
		Offset: offset,
		Limit:  limit,
		Count:  count,
	}, http.StatusOK)
}

func (handler *Handler) HandleRate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.rate")
	defer span.End()

	userID, trainingID, ok := userAndTrainingFromPath(w, r)
	if !ok {
		return
	}

	var rating Rating
	if err := json.NewDecoder(r.Body).Decode(&rating); err != nil {
		log.Debugf("rate training, decode body: %s", err)
		apierr.Write(w, apierr.Unprocessable([]apierr.FieldError{
			apierr.InvalidField("value is not a valid dict", "type_error.dict"),
		}))
		return
	}
	if fieldErr, invalid := validateRate(rating.Rate); invalid {
		apierr.Write(w, apierr.Unprocessable([]apierr.FieldError{fieldErr}))
		return
	}

	log.Infof("user [%s] rates training %d with %v", userID, trainingID, *rating.Rate)
	if err := handler.lookup.UserAndTraining(ctx, userID, trainingID); err != nil {
		apierr.Write(w, err)
		return
	}

	if err := handler.ledger.UpsertRating(ctx, userID, trainingID, *rating.Rate); err != nil {
		apierr.Write(w, ledgerWriteError(err))
		return
	}

	handler.metrics.CounterRatingsSubmitted.Inc()
	pkg.WriteNoContent(w)
}

func (handler *Handler) HandleGetRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.getRating")
	defer span.End()

	userID, trainingID, ok := userAndTrainingFromPath(w, r)
	if !ok {
		return
	}

	log.Infof("getting rating of user [%s] for training %d", userID, trainingID)
	if err := handler.lookup.UserAndTraining(ctx, userID, trainingID); err != nil {
		apierr.Write(w, err)
		return
	}

	rate, err := handler.ledger.GetRating(ctx, userID, trainingID)
	if err != nil {
		apierr.Write(w, apierr.FromLookup(err, ErrRatingNotFound, apierr.MsgRatingNotFound))
		return
	}
	pkg.WriteJSONResponse(w, Rating{Rate: &rate}, http.StatusOK)
}

// ledgerWriteError maps a user or training removed after the lookup to its 404.
func ledgerWriteError(err error) error {
	if errors.Is(err, ErrUserNotFound) {
		return apierr.FromLookup(err, ErrUserNotFound, apierr.MsgUserNotFound)
	}
	return apierr.FromLookup(err, trainings.ErrTrainingNotFound, apierr.MsgTrainingNotFound)
}

func validateRate(rate *float64) (apierr.FieldError, bool) {
	if rate == nil {
		return apierr.MissingField("rate"), true
	}
	if *rate < MinRate || *rate > MaxRate {
		return apierr.InvalidField("ensure this value is between 0 and 5", "value_error.number.out_of_range", "rate"), true
	}
	return apierr.FieldError{}, false
}

func userAndTrainingFromPath(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	vars := mux.Vars(r)
	trainingID, err := strconv.Atoi(vars["training_id"])
	if err != nil {
		apierr.Write(w, apierr.Unprocessable([]apierr.FieldError{{
			Loc:  []string{"path", "training_id"},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}}))
		return "", 0, false
	}
	return vars["user_id"], trainingID, true
}
