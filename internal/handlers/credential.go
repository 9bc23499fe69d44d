package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"PassVault/internal/config"
	"PassVault/internal/middleware"
	"PassVault/internal/model"
	"PassVault/internal/repo"
	"PassVault/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CredentialHandler обрабатывает CRUD записей хранилища и загрузку изображений.
type CredentialHandler struct {
	Service *service.CredentialService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewCredentialHandler создаёт хендлер записей.
func NewCredentialHandler(svc *service.CredentialService, logger *zap.SugaredLogger, cfg *config.Config) *CredentialHandler {
	return &CredentialHandler{Service: svc, Logger: logger, Config: cfg}
}

// UploadResponse — ответ на загрузку изображения.
type UploadResponse struct {
	Path string `json:"path"`
}

// List отдаёт все записи пользователя, новые первыми.
func (h *CredentialHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	creds, err := h.Service.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, creds)
}

// Get отдаёт одну запись пользователя.
func (h *CredentialHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	cred, err := h.Service.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Get: service error", "user_id", userID, "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cred)
}

// Add создаёт запись из черновика.
func (h *CredentialHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var draft model.Credential
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	stored, err := h.Service.Add(r.Context(), userID, &draft)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("Add: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

// Update полностью заменяет запись пользователя.
func (h *CredentialHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	var updated model.Credential
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Service.Update(r.Context(), userID, id, &updated); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		case isValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.Logger.Errorw("Update: service error", "user_id", userID, "id", id, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Remove удаляет запись пользователя. Повторный вызов также отвечает 200.
func (h *CredentialHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.Service.Remove(r.Context(), userID, id); err != nil {
		h.Logger.Errorw("Remove: service error", "user_id", userID, "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// UploadImage принимает тело изображения и возвращает путь объекта
// для image-варианта записи.
func (h *CredentialHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = "image"
	}
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	maxSize := int64(h.Config.BlobMaxSizeMB) << 20
	body := http.MaxBytesReader(w, r.Body, maxSize)
	path, err := h.Service.UploadImage(r.Context(), userID, name, body, r.ContentLength, contentType)
	if err != nil {
		h.Logger.Errorw("UploadImage: service error", "user_id", userID, "error", err)
		http.Error(w, "upload failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, UploadResponse{Path: path})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func isValidationError(err error) bool {
	var missing *model.MissingFieldError
	var mismatch *model.PayloadMismatchError
	return errors.As(err, &missing) || errors.As(err, &mismatch)
}
