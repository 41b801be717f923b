package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"

	"github.com/SimoSabev/sortex/internal/database"
	"github.com/SimoSabev/sortex/internal/models"
	"github.com/SimoSabev/sortex/internal/points"
)

// maxUploadBytes caps a single photo submission at 10MB.
const maxUploadBytes = 10 << 20

type UploadResponse struct {
	Success      bool           `json:"success"`
	Upload       *models.Upload `json:"upload"`
	PointsEarned int            `json:"pointsEarned"`
	NewPoints    int64          `json:"newPoints"`
}

// @Summary      Submit a recyclable photo
// @Description  Stores the photo, records the upload and credits the caller's point balance in one transaction.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file           formData  file    true   "Photo of the recyclable"
// @Param        recyclingType  formData  string  false  "Declared category (plastic, glass, paper, metal, ewaste, textile)"
// @Success      201  {object}  UploadResponse
// @Failure      400  {string}  string "Missing file"
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /uploads [post]
func (s *Server) SubmitUploadHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	if _, err := s.store.EnsureUser(r.Context(), database.EnsureUserParams{
		ID:          claims.UserID(),
		Email:       claims.Email,
		DisplayName: optionalString(claims.Name),
	}); err != nil {
		log.Printf("ERROR: failed to ensure user %s: %v", claims.UserID(), err)
		http.Error(w, "Failed to process upload", http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "File too large or malformed form", http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var recyclingType *string
	declared := strings.ToLower(strings.TrimSpace(r.FormValue("recyclingType")))
	if declared != "" {
		recyclingType = &declared
	}
	pointsEarned := points.For(declared)

	key, err := s.objectKey(claims.UserID(), handler.Filename)
	if err != nil {
		log.Printf("ERROR: failed to generate object key: %v", err)
		http.Error(w, "Failed to process upload", http.StatusInternalServerError)
		return
	}

	fileURL, err := s.storage.Save(r.Context(), key, handler.Header.Get("Content-Type"), file)
	if err != nil {
		log.Printf("ERROR: failed to store object %s: %v", key, err)
		http.Error(w, "Failed to store file", http.StatusInternalServerError)
		return
	}

	result, err := s.store.RecordUpload(r.Context(), database.CreateUploadParams{
		ID:            uuid.New(),
		UserID:        claims.UserID(),
		FileName:      handler.Filename,
		FileURL:       fileURL,
		FileType:      handler.Header.Get("Content-Type"),
		FileSize:      handler.Size,
		RecyclingType: recyclingType,
		PointsEarned:  pointsEarned,
	})
	if err != nil {
		// The binary landed but the ledger write failed. Remove the orphan
		// so a retry cannot double-store, then report the failure.
		if delErr := s.storage.Delete(r.Context(), key); delErr != nil {
			log.Printf("ERROR: failed to clean up orphaned object %s: %v", key, delErr)
		}
		log.Printf("ERROR: failed to record upload for user %s: %v", claims.UserID(), err)
		http.Error(w, "Failed to record upload", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(UploadResponse{
		Success:      true,
		Upload:       result.Upload,
		PointsEarned: pointsEarned,
		NewPoints:    result.NewPoints,
	})
}

type ListUploadsResponse struct {
	Uploads []models.Upload `json:"uploads"`
	Points  int64           `json:"points"`
}

// @Summary      List own uploads
// @Description  Returns all uploads of the caller, newest first, with the live point total.
// @Tags         uploads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ListUploadsResponse
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /uploads [get]
func (s *Server) ListUploadsHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	uploads, err := s.store.ListUploadsByUser(r.Context(), claims.UserID(), 1000)
	if err != nil {
		log.Printf("ERROR: failed to list uploads for user %s: %v", claims.UserID(), err)
		http.Error(w, "Failed to list uploads", http.StatusInternalServerError)
		return
	}

	var pointsTotal int64
	user, err := s.store.GetUserByID(r.Context(), claims.UserID())
	if err != nil {
		log.Printf("ERROR: failed to load user %s: %v", claims.UserID(), err)
		http.Error(w, "Failed to list uploads", http.StatusInternalServerError)
		return
	}
	if user != nil {
		pointsTotal = user.Points
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListUploadsResponse{Uploads: uploads, Points: pointsTotal})
}

// objectKey namespaces stored binaries by owner and a collision-resistant
// token so concurrent uploads of identically named files cannot clash.
func (s *Server) objectKey(ownerID, fileName string) (string, error) {
	generateID, err := nanoid.Standard(21)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%s%s", ownerID, generateID(), ext), nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
