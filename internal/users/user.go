package users

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRatingNotFound  = errors.New("rating not found")
	ErrAlreadyFavorite = errors.New("training already in favorites")
)

const (
	MinRate = 0
	MaxRate = 5
)

// User mirrors the identity managed by the users service. It is never written here.
type User struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	Username         string   `json:"username"`
	Name             *string  `json:"name"`
	Surname          *string  `json:"surname"`
	Height           *float64 `json:"height"`
	Weight           *int     `json:"weight"`
	BirthDate        *string  `json:"birth_date"`
	Location         *string  `json:"location"`
	RegistrationDate *string  `json:"registration_date"`
	IsAthlete        bool     `json:"is_athlete"`
	IsBlocked        bool     `json:"is_blocked"`
}

type FavoriteIn struct {
	TrainingID *int `json:"training_id"`
}

type Rating struct {
	Rate *float64 `json:"rate"`
}
