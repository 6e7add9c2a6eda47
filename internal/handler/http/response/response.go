package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the uniform failure payload.
type ErrorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorBody{Error: "failed to encode response"})
	}
}

func JSON(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{Error: message, Details: details})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, ErrorBody{Error: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, ErrorBody{Error: message})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorBody{Error: message})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, ErrorBody{Error: message})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, ErrorBody{Error: message})
}
