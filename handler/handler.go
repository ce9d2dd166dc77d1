package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Details []any  `json:"details,omitempty"`
}

func Index(w http.ResponseWriter) {
	Message(w, http.StatusOK, "ytsummary index")
}

func Message(w http.ResponseWriter, status int, message string, details ...any) {
	JSON(w, status, messageBody{Message: message, Details: details})
}

func Error(w http.ResponseWriter, status int, message string, err error, details ...any) {
	JSON(w, status, messageBody{Message: message, Error: err.Error(), Details: details})
}

// JSON writes v with the given status. When v cannot be marshalled, a plain
// 500 message is written instead.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"message": "could not marshal response", "error": %q}`, err.Error())
		return
	}
	w.WriteHeader(status)
	w.Write(body)
}
