package utils

import (
	"net/http"

	"merma/globals"
)

func GetUserIDFromRequest(r *http.Request) int {
	id, ok := r.Context().Value(globals.UserIDKey).(int)
	if !ok {
		return 0
	}
	return id
}
