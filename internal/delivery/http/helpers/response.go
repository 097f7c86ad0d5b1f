package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body for failures and token-less outcomes. Error
// messages are short and human-readable; internal detail never reaches the
// client.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the body for successful registration and login.
// swagger:model TokenResponse
type TokenResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes a MessageResponse with the given status and message.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}
