package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/services"
)

var profileStore services.ProfileStore

// InitProfileStore wires the selected metadata backend into the profile
// handlers.
func InitProfileStore(store services.ProfileStore) {
	profileStore = store
}

type ProfileResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message,omitempty"`
	Profile  *models.Profile `json:"profile"`
	Complete bool            `json:"complete"`
}

// GetProfile returns the caller's health profile. A missing profile is not
// an error: profile is null and complete is false.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, apperrors.ErrUnauthenticated)
		return
	}

	profile, err := profileStore.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		Success:  true,
		Profile:  profile,
		Complete: profile.Complete(),
	})
}

// SaveProfile upserts the caller's health profile from the submitted form.
// The frontend always submits the full field set; numeric fields arrive as
// text and are validated here.
func SaveProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, apperrors.ErrUnauthenticated)
		return
	}

	var input services.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, apperrors.NewValidation("body", "invalid request body"))
		return
	}

	profile, err := services.ParseProfileInput(userID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	saved, err := profileStore.Save(r.Context(), profile)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		Success:  true,
		Message:  "Profile saved",
		Profile:  saved,
		Complete: saved.Complete(),
	})
}
