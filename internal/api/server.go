package api

import (
	"encoding/json"
	"net/http"

	"github.com/SimoSabev/sortex/internal/bins"
	"github.com/SimoSabev/sortex/internal/config"
	"github.com/SimoSabev/sortex/internal/database"
	"github.com/SimoSabev/sortex/internal/storage"
	"github.com/SimoSabev/sortex/internal/websocket"
)

type Server struct {
	config    *config.Config
	store     *database.Store
	storage   storage.ObjectStorage
	binSource bins.Source
	wsHub     *websocket.Hub
}

func NewServer(cfg *config.Config, store *database.Store, objStorage storage.ObjectStorage, binSource bins.Source, wsHub *websocket.Hub) *Server {
	return &Server{
		config:    cfg,
		store:     store,
		storage:   objStorage,
		binSource: binSource,
		wsHub:     wsHub,
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.GetPool().Ping(r.Context()); err != nil {
		http.Error(w, "Database unreachable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
