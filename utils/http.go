package utils

import (
	"encoding/json"
	"net/http"
)

// ApiResponse is the envelope every audio-processor endpoint returns.
// Data and Error are both emitted (as null when absent) so the frontend
// can branch on success without probing for missing keys.
type ApiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   *string     `json:"error"`
}

// SuccessResponse builds a success envelope around data
func SuccessResponse(data interface{}) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
	}
}

// ErrorResponse builds a failure envelope from an error message
func ErrorResponse(message string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   &message,
	}
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return nil
	}

	return json.NewEncoder(w).Encode(data)
}

// WriteOK writes a 200 OK response wrapping data in a success envelope
func WriteOK(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse(data))
}

// WriteBadRequest writes a 400 Bad Request response with an error envelope.
// The original frontend treats any processing failure as a 400.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteJSON(w, http.StatusBadRequest, ErrorResponse(message))
}

// WriteNotFound writes a 404 Not Found response with an error envelope
func WriteNotFound(w http.ResponseWriter, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return WriteJSON(w, http.StatusNotFound, ErrorResponse(message))
}

// WriteInternalServerError writes a 500 Internal Server Error response
func WriteInternalServerError(w http.ResponseWriter, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return WriteJSON(w, http.StatusInternalServerError, ErrorResponse(message))
}
