// Package media serves file uploads and downloads. Bytes live in GridFS
// under {category}s/{unique-name}, which doubles as the download URL path,
// so a stored name is all a message attachment needs to reference.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"GoChatter/internal/common"
	"GoChatter/internal/dbmongo"
)

const defaultMaxUpload = 100 << 20

// Storage is the slice of the attachment store the handlers need. It is
// satisfied by dbmongo.MediaStorage.
type Storage interface {
	SaveFile(ctx context.Context, name string, meta dbmongo.FileMetadata, content io.Reader) (int64, error)
	OpenFile(ctx context.Context, name string) (io.ReadCloser, *dbmongo.StoredFile, error)
	DeleteFile(ctx context.Context, name string) error
	Stats(ctx context.Context) (*dbmongo.StorageStats, error)
}

// Handler serves the /files routes.
type Handler struct {
	storage   Storage
	maxUpload int64
}

// NewHandler builds the media handler. maxUpload caps the whole request
// body; the per-category limits apply below it.
func NewHandler(storage Storage, maxUpload int64) *Handler {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}
	return &Handler{storage: storage, maxUpload: maxUpload}
}

// Register mounts the authenticated file routes on the given router.
func (h *Handler) Register(api *mux.Router) {
	api.HandleFunc("/files/upload", h.upload).Methods(http.MethodPost)
	api.HandleFunc("/files/stats", h.stats).Methods(http.MethodGet)
	api.HandleFunc("/files/delete/{category}/{filename}", h.delete).Methods(http.MethodDelete)
}

// RegisterPublic mounts the download route. Downloads skip auth so file
// URLs pasted outside the app keep working.
func (h *Handler) RegisterPublic(api *mux.Router) {
	api.HandleFunc("/files/download/{category}/{filename}", h.download).Methods(http.MethodGet)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			common.WriteError(w, common.PayloadTooLarge(fmt.Sprintf("File size exceeds maximum %dMB", h.maxUpload>>20)))
			return
		}
		common.WriteError(w, common.InvalidArgument("file is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	category, err := classifyUpload(header.Filename, contentType)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	objectName := categoryDir(category) + "/" + uniqueName(header.Filename)
	meta := dbmongo.FileMetadata{
		Category:     category.String(),
		MimeType:     contentType,
		UploadedBy:   userID.String(),
		OriginalName: header.Filename,
	}

	// One byte past the cap is enough to tell an oversize upload apart
	// from one that is exactly at the limit.
	maxBytes := category.MaxBytes()
	size, err := h.storage.SaveFile(r.Context(), objectName, meta, io.LimitReader(file, maxBytes+1))
	if err != nil {
		common.WriteError(w, common.Internal("Failed to save file", err))
		return
	}
	if size > maxBytes {
		if err := h.storage.DeleteFile(r.Context(), objectName); err != nil {
			log.Printf("✗ media: removing oversize upload %s: %v", objectName, err)
		}
		common.WriteError(w, oversizeError(category))
		return
	}

	log.Printf("✅ file %s uploaded by %s (%d bytes)", objectName, userID, size)
	common.WriteJSON(w, http.StatusCreated, FileUploadResponse{
		FileURL:      "/api/files/download/" + objectName,
		FileName:     header.Filename,
		FileType:     contentType,
		FileSize:     size,
		FileCategory: category.String(),
	})
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category, filename := vars["category"], vars["filename"]
	if err := checkFilename(filename); err != nil {
		common.WriteError(w, err)
		return
	}

	reader, stored, err := h.storage.OpenFile(r.Context(), category+"/"+filename)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	defer reader.Close()

	contentType := stored.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(stored.Size, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, reader); err != nil {
		// Headers are gone, all we can do is note the broken stream.
		log.Printf("✗ media: streaming %s: %v", stored.Name, err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	category, filename := vars["category"], vars["filename"]
	if err := checkFilename(filename); err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.storage.DeleteFile(r.Context(), category+"/"+filename); err != nil {
		common.WriteError(w, err)
		return
	}

	log.Printf("→ file %s/%s deleted by %s", category, filename, userID)
	common.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}

	stats, err := h.storage.Stats(r.Context())
	if err != nil {
		common.WriteError(w, common.Internal("Failed to read storage stats", err))
		return
	}
	common.WriteJSON(w, http.StatusOK, stats)
}

func checkFilename(filename string) error {
	if strings.Contains(filename, "..") || strings.Contains(filename, "/") || strings.Contains(filename, "\\") {
		return common.InvalidArgument("Invalid filename")
	}
	return nil
}

func identity(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return uuid.Nil, false
	}
	return userID, true
}
