// Package apierr translates domain failures into HTTP status and detail pairs.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/fiufit/trainings/pkg"
)

const (
	MsgTrainingNotFound = "Training not found."
	MsgUserNotFound     = "User not found."
	MsgRatingNotFound   = "Rating not found."
	MsgInternal         = "Internal server error."
)

type Error struct {
	Status int
	Detail any
	Cause  error
}

func New(status int, detail any) *Error {
	return &Error{Status: status, Detail: detail}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%d %v: %s", e.Status, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%d %v", e.Status, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FieldError mirrors the validation error items clients already parse.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func MissingField(path ...string) FieldError {
	return FieldError{
		Loc:  append([]string{"body"}, path...),
		Msg:  "field required",
		Type: "value_error.missing",
	}
}

func InvalidField(msg, errType string, path ...string) FieldError {
	return FieldError{
		Loc:  append([]string{"body"}, path...),
		Msg:  msg,
		Type: errType,
	}
}

func InvalidQueryParam(name, msg, errType string) FieldError {
	return FieldError{
		Loc:  []string{"query", name},
		Msg:  msg,
		Type: errType,
	}
}

func Unprocessable(fieldErrors []FieldError) *Error {
	return New(http.StatusUnprocessableEntity, fieldErrors)
}

// FromLookup turns a "row not found" failure (matched by notFound) into a 404 with detail.
// Any other error becomes an internal error.
func FromLookup(err, notFound error, detail string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, notFound) {
		return &Error{Status: http.StatusNotFound, Detail: detail, Cause: err}
	}
	return &Error{Status: http.StatusInternalServerError, Detail: MsgInternal, Cause: err}
}

// Write sends err as a {"detail": ...} response. Errors that are not *Error never leak their message.
func Write(w http.ResponseWriter, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = &Error{Status: http.StatusInternalServerError, Detail: MsgInternal, Cause: err}
	}

	if apiErr.Status >= http.StatusInternalServerError {
		log.Errorf("request failed: %s", apiErr)
	} else {
		log.Debugf("request rejected: %s", apiErr)
	}
	pkg.WriteDetail(w, apiErr.Detail, apiErr.Status)
}
