package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRowMissing = errors.New("row missing")

func TestFromLookup(t *testing.T) {
	assert.NoError(t, FromLookup(nil, errRowMissing, MsgUserNotFound))

	err := FromLookup(fmt.Errorf("get user: %w", errRowMissing), errRowMissing, MsgUserNotFound)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, MsgUserNotFound, apiErr.Detail)
	assert.ErrorIs(t, err, errRowMissing)

	err = FromLookup(errors.New("conn refused"), errRowMissing, MsgUserNotFound)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, MsgInternal, apiErr.Detail)
}

func TestWrite(t *testing.T) {
	rr := httptest.NewRecorder()
	Write(rr, New(http.StatusConflict, "Training already in favorites."))
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"detail":"Training already in favorites."}`, rr.Body.String())

	rr = httptest.NewRecorder()
	Write(rr, fmt.Errorf("wrapped: %w", New(http.StatusNotFound, MsgTrainingNotFound)))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Training not found."}`, rr.Body.String())

	rr = httptest.NewRecorder()
	Write(rr, errors.New("pq: password authentication failed"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"detail":"Internal server error."}`, rr.Body.String())
}

func TestWrite_Validation(t *testing.T) {
	rr := httptest.NewRecorder()
	Write(rr, Unprocessable([]FieldError{
		MissingField("title"),
		MissingField("exercises", "0", "count"),
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{"detail":[
		{"loc":["body","title"],"msg":"field required","type":"value_error.missing"},
		{"loc":["body","exercises","0","count"],"msg":"field required","type":"value_error.missing"}
	]}`, rr.Body.String())
}
