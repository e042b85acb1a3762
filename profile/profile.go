package profile

import (
	"net/http"

	"merma/session"
	"merma/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the profile dashboard payload.
type Handler struct{}

// GetProfile returns the session's user plus the dashboard counters.
// Requires both the session and authentication middleware; a session whose
// state was logged out since the token was issued is treated as
// unauthenticated.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	snap := store.Snapshot()
	if !snap.IsAuthenticated || snap.User == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if utils.GetUserIDFromRequest(r) != snap.User.ID {
		// token was minted for a different login than the session holds
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"user": snap.User,
		"stats": utils.M{
			"cartItems": store.ItemCount(),
			"favorites": len(snap.Favorites),
		},
	})
}
