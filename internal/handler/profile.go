package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vasiliy-maslov/storefront/internal/profile"
)

// ProfileHandler handles HTTP requests for the local user profile.
type ProfileHandler struct {
	profile *profile.Store
}

func NewProfileHandler(p *profile.Store) *ProfileHandler {
	return &ProfileHandler{profile: p}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.profile.Get())
}

// UpdateProfile merges the non-empty fields of the request into the
// stored profile.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var u profile.Update
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.profile.Apply(u))
}
