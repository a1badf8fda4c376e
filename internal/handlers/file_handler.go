package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"onlyfame_backend/internal/logger"
	"onlyfame_backend/internal/storage"
	"onlyfame_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler отдает объекты локального хранилища (фото актеров)
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, storage storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     storage,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	files := r.Group("/files")
	{
		files.GET("/*key", h.ServeFile)
		files.HEAD("/*key", h.CheckFileExists)
	}
}

// ServeFile godoc
// @Summary Файл из хранилища
// @Tags Files
// @Produce octet-stream
// @Param key path string true "Ключ объекта"
// @Success 200 {file} file
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /files/{key} [get]
func (h *FileHandler) ServeFile(c *gin.Context) {
	key, ok := h.objectKey(c)
	if !ok {
		return
	}

	reader, err := h.storage.Get(c.Request.Context(), key)
	if err != nil {
		h.handleStorageError(c, key, err)
		return
	}
	defer reader.Close()

	h.setFileHeaders(c, key)
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Заголовки уже отправлены
		c.Error(err)
	}
}

func (h *FileHandler) CheckFileExists(c *gin.Context) {
	key, ok := h.objectKey(c)
	if !ok {
		return
	}

	exists, err := h.storage.Exists(c.Request.Context(), key)
	if err != nil {
		h.handleStorageError(c, key, err)
		return
	}
	if !exists {
		c.Status(http.StatusNotFound)
		return
	}

	h.setFileHeaders(c, key)
	c.Status(http.StatusOK)
}

func (h *FileHandler) objectKey(c *gin.Context) (string, bool) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" || strings.Contains(key, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file key"))
		return "", false
	}
	return key, true
}

func (h *FileHandler) setFileHeaders(c *gin.Context, key string) {
	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	// Ключ фото не меняется при перезаливке того же формата
	c.Header("Cache-Control", "public, max-age=300")
	c.Header("Content-Disposition", "inline")
}

func (h *FileHandler) handleStorageError(c *gin.Context, key string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		apperrors.HandleError(c, apperrors.ErrNotFound("file", "File not found", map[string]string{"key": key}))
		return
	}
	logger.CtxWithError(c.Request.Context(), "Failed to read file from storage", err, "key", key)
	apperrors.HandleError(c, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "file", "Failed to read file", http.StatusBadGateway))
}
