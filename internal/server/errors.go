package server

import (
	"encoding/json"
	"net/http"
)

type CommonError struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

type Validation struct {
	Title  string   `json:"title"`
	Status int      `json:"status"`
	Detail string   `json:"detail"`
	Code   string   `json:"code"`
	Errors []string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Error encoding response")
	}
}

func ParsingError(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, CommonError{
		Title:  "Parsing error occurred",
		Status: http.StatusBadRequest,
		Detail: "Parsing error",
		Code:   "PARSING_ERROR",
	})
}

// ValidationError answers with the ordered list of field messages.
func ValidationError(w http.ResponseWriter, msgs []string) {
	writeJSON(w, http.StatusBadRequest, Validation{
		Title:  "Validation error",
		Status: http.StatusBadRequest,
		Detail: "See the errors property for details",
		Code:   "VALIDATION_ERROR",
		Errors: msgs,
	})
}

func PayloadTooLargeError(w http.ResponseWriter) {
	writeJSON(w, http.StatusRequestEntityTooLarge, CommonError{
		Title:  "Payload too large",
		Status: http.StatusRequestEntityTooLarge,
		Detail: "Request body exceeds the allowed size",
		Code:   "PAYLOAD_TOO_LARGE",
	})
}

func NotFoundError(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, CommonError{
		Title:  "Endpoint not found",
		Status: http.StatusNotFound,
		Detail: "Not found",
		Code:   "ENDPOINT_NOT_FOUND",
	})
}

func InternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, CommonError{
		Title:  "Resource temporarily unavailable",
		Status: http.StatusInternalServerError,
		Detail: "Resource temporarily unavailable",
		Code:   "UNKNOWN_ERROR",
	})
}
