package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/database"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/services"
	"github.com/KeertanaGupta/Keertana-Mediprior/pkg/utils"
)

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Token   string                 `json:"token,omitempty"`
	User    map[string]interface{} `json:"user,omitempty"`
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

func validateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return apperrors.NewValidation("username", "must be 3-30 characters, letters, digits and underscores only")
	}
	return nil
}

// normalizeUsername folds a username to its canonical stored form. Accounts
// are stored lowercased so the case-insensitive unique index and the signin
// lookup agree on one row.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Signup registers a new account and opens a session.
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidation("body", "invalid request body"))
		return
	}

	if err := validateUsername(req.Username); err != nil {
		writeError(w, err)
		return
	}
	if len(req.Password) < 8 {
		writeError(w, apperrors.NewValidation("password", "must be at least 8 characters"))
		return
	}

	normalized := normalizeUsername(req.Username)

	// Reject duplicates up front for a friendly message; the unique index on
	// LOWER(username) still backstops races.
	var existing string
	err := database.PostgresDB.QueryRowContext(r.Context(),
		"SELECT username FROM users WHERE LOWER(username) = $1", normalized).Scan(&existing)
	if err == nil {
		writeError(w, apperrors.NewValidation("username", "is already taken"))
		return
	}
	if err != sql.ErrNoRows {
		writeError(w, &apperrors.PersistenceError{Op: "check username", Err: err})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		writeError(w, &apperrors.PersistenceError{Op: "hash password", Err: err})
		return
	}

	var userID uuid.UUID
	err = database.PostgresDB.QueryRowContext(r.Context(),
		"INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id",
		normalized, passwordHash).Scan(&userID)
	if err != nil {
		writeError(w, &apperrors.PersistenceError{Op: "create user", Err: err})
		return
	}

	token, err := services.CreateSession(userID)
	if err != nil {
		writeError(w, &apperrors.PersistenceError{Op: "create session", Err: err})
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Account created",
		Token:   token,
		User: map[string]interface{}{
			"id":       userID.String(),
			"username": normalized,
		},
	})
}

// Signin authenticates a user and opens a session.
func Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidation("body", "invalid request body"))
		return
	}

	var (
		userID       uuid.UUID
		username     string
		passwordHash string
		isActive     bool
	)
	err := database.PostgresDB.QueryRowContext(r.Context(),
		"SELECT id, username, password_hash, is_active FROM users WHERE LOWER(username) = $1",
		normalizeUsername(req.Username)).
		Scan(&userID, &username, &passwordHash, &isActive)
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: "Invalid username or password"})
		return
	}
	if err != nil {
		writeError(w, &apperrors.PersistenceError{Op: "lookup user", Err: err})
		return
	}

	ok, err := utils.VerifyPassword(req.Password, passwordHash)
	if err != nil || !ok || !isActive {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: "Invalid username or password"})
		return
	}

	token, err := services.CreateSession(userID)
	if err != nil {
		writeError(w, &apperrors.PersistenceError{Op: "create session", Err: err})
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Signed in",
		Token:   token,
		User: map[string]interface{}{
			"id":       userID.String(),
			"username": username,
		},
	})
}

// Signout invalidates the caller's session.
func Signout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token != "" {
		services.InvalidateSession(token)
	}
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, Message: "Signed out"})
}

// GetMe returns the authenticated user.
func GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, apperrors.ErrUnauthenticated)
		return
	}

	var user models.User
	err := database.PostgresDB.QueryRowContext(r.Context(),
		"SELECT id, username, created_at, is_active FROM users WHERE id = $1", userID).
		Scan(&user.ID, &user.Username, &user.CreatedAt, &user.IsActive)
	if err != nil {
		writeError(w, &apperrors.PersistenceError{Op: "lookup user", Err: err})
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		User: map[string]interface{}{
			"id":         user.ID,
			"username":   user.Username,
			"created_at": user.CreatedAt,
		},
	})
}
