package api

import (
	"encoding/json"
	"log"
	"net/http"
)

const leaderboardLimit = 50

type LeaderboardRow struct {
	ID            string  `json:"id"`
	Name          *string `json:"name"`
	Points        int64   `json:"points"`
	Rank          int     `json:"rank"`
	Recycled      int64   `json:"recycled"`
	IsCurrentUser bool    `json:"isCurrentUser"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardRow `json:"leaderboard"`
}

// @Summary      Leaderboard
// @Description  Returns the top 50 users by points. Rank here is positional within the sorted list; the dashboard rank uses the strict-dominance count instead.
// @Tags         leaderboard
// @Produce      json
// @Success      200  {object}  LeaderboardResponse
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /leaderboard [get]
func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	entries, err := s.store.Leaderboard(r.Context(), leaderboardLimit)
	if err != nil {
		log.Printf("ERROR: failed to load leaderboard: %v", err)
		http.Error(w, "Failed to load leaderboard", http.StatusInternalServerError)
		return
	}

	rows := make([]LeaderboardRow, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, LeaderboardRow{
			ID:            entry.ID,
			Name:          entry.Name,
			Points:        entry.Points,
			Rank:          i + 1,
			Recycled:      entry.Recycled,
			IsCurrentUser: claims != nil && entry.ID == claims.UserID(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LeaderboardResponse{Leaderboard: rows})
}
