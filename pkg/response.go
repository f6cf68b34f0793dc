package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
}{
	JSON: "application/json",
}

// DetailResponse is the error body shape clients of this service already parse.
type DetailResponse struct {
	Detail any `json:"detail"`
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

// WriteJSONResponse marshals v and writes it with the given status.
func WriteJSONResponse(w http.ResponseWriter, v any, statusCode int) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		WriteDetail(w, "Internal server error.", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respBytes, statusCode)
}

// WriteDetail writes {"detail": detail} with the given status.
func WriteDetail(w http.ResponseWriter, detail any, statusCode int) {
	respBytes, err := json.Marshal(DetailResponse{Detail: detail})
	if err != nil {
		log.Errorf("marshal detail response: %s", err)
		respBytes = []byte(`{"detail":"Internal server error."}`)
		statusCode = http.StatusInternalServerError
	}
	WriteResponseBytes(w, ContentType.JSON, respBytes, statusCode)
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
