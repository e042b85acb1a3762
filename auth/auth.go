package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"merma/apiclient"
	"merma/catalog"
	"merma/globals"
	"merma/middleware"
	"merma/session"
	"merma/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const tokenTTL = 12 * time.Hour

// Handler owns the mocked login/registration flow. Credentials are checked
// only for shape: any well-formed email and password resolves to the demo
// user, which is the storefront's current behavior.
type Handler struct {
	Catalog  *catalog.Store
	API      apiclient.Client
	accounts *accountBook
}

func NewHandler(cat *catalog.Store, api apiclient.Client) *Handler {
	return &Handler{Catalog: cat, API: api, accounts: newAccountBook()}
}

// Login authenticates a session. Requires the session middleware.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form loginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateLogin(form); len(errs) > 0 {
		utils.RespondWithValidationErrors(w, errs)
		return
	}

	store, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	// Simulated backend round trip; always succeeds today, but a real
	// backend slots in behind the same call.
	if _, err := h.API.Post(r.Context(), "/auth/login", form); err != nil {
		log.Println("login backend call failed:", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Login failed. Please try again.")
		return
	}

	user := h.Catalog.DemoUser()
	store.Dispatch(session.Login{User: user})

	token, err := h.issueToken(r, user.ID, form.Email)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token": token,
		"user":  user,
	})
}

// Register validates the registration form, stores an account in memory and
// logs the new user in. Requires the session middleware.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form registerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateRegister(form); len(errs) > 0 {
		utils.RespondWithValidationErrors(w, errs)
		return
	}

	store, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	name := form.FirstName + " " + form.LastName
	if err := h.accounts.create(name, form.Email, form.Password); err != nil {
		if err == errAccountExists {
			utils.RespondWithError(w, http.StatusConflict, "User already exists")
			return
		}
		log.Println("register hash error:", err)
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	if _, err := h.API.Post(r.Context(), "/auth/register", utils.M{"name": name, "email": form.Email}); err != nil {
		// Roll the account back so a retry does not hit the conflict path.
		h.accounts.remove(form.Email)
		log.Println("register backend call failed:", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Registration failed. Please try again.")
		return
	}

	user := h.Catalog.DemoUser()
	store.Dispatch(session.Login{User: user})

	token, err := h.issueToken(r, user.ID, form.Email)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"token": token,
		"user":  user,
	})
}

// Logout clears the session: user, cart and favorites all reset.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	store.Dispatch(session.Logout{})
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (h *Handler) issueToken(r *http.Request, userID int, email string) (string, error) {
	sid, _ := r.Context().Value(globals.SessionIDKey).(string)
	claims := &middleware.Claims{
		Email:     email,
		UserID:    userID,
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
