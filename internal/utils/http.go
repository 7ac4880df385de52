package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/mentor-match/models"
)

// WriteJSON serializes data to JSON and writes it to the response with the
// given status code and an "application/json" content type.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the API error body for statusCode. The "error" field
// is the status text of the code.
func WriteError(w http.ResponseWriter, statusCode int, message string) (int, error) {
	return WriteJSON(w, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}
