package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/SimoSabev/sortex/internal/database"
	"github.com/SimoSabev/sortex/internal/models"
)

type DashboardResponse struct {
	Points        int64           `json:"points"`
	Rank          int64           `json:"rank"`
	TotalItems    int64           `json:"totalItems"`
	RecentUploads []models.Upload `json:"recentUploads"`
}

// @Summary      Dashboard snapshot
// @Description  Returns the caller's point balance, dominance-count rank, total recycled items and four most recent uploads. Creates the user row on first visit.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  DashboardResponse
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /dashboard [get]
func (s *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	user, err := s.store.EnsureUser(r.Context(), database.EnsureUserParams{
		ID:          claims.UserID(),
		Email:       claims.Email,
		DisplayName: optionalString(claims.Name),
	})
	if err != nil {
		log.Printf("ERROR: failed to ensure user %s: %v", claims.UserID(), err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	recentUploads, err := s.store.ListUploadsByUser(r.Context(), user.ID, 4)
	if err != nil {
		log.Printf("ERROR: failed to load recent uploads for user %s: %v", user.ID, err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	rank, err := s.store.RankOf(r.Context(), user.ID)
	if err != nil {
		log.Printf("ERROR: failed to compute rank for user %s: %v", user.ID, err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	totalItems, err := s.store.CountUploadsByUser(r.Context(), user.ID)
	if err != nil {
		log.Printf("ERROR: failed to count uploads for user %s: %v", user.ID, err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DashboardResponse{
		Points:        user.Points,
		Rank:          rank,
		TotalItems:    totalItems,
		RecentUploads: recentUploads,
	})
}
