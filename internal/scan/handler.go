package scan

import (
	"context"
	"errors"
	"io"
	"net/http"

	"glycoscan/internal/llm"

	"github.com/gin-gonic/gin"
)

// Storage persists uploaded scan images and returns the opaque
// reference handed back to clients.
type Storage interface {
	UploadScanImage(ctx context.Context, data []byte) (string, error)
}

type Handler struct {
	service *Service
	store   *Store
	storage Storage
}

func NewHandler(service *Service, store *Store, storage Storage) *Handler {
	return &Handler{service: service, store: store, storage: storage}
}

// --------------------------------------------------
// Analyze a food photo
// --------------------------------------------------
func (h *Handler) AnalyzeImage(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	jpeg, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	imageRef, err := h.storage.UploadScanImage(c.Request.Context(), jpeg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	rec, err := h.service.RecognizeImage(c.Request.Context(), imageRef, jpeg)
	if err != nil {
		h.analysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"food":         rec,
		"imageRef":     imageRef,
		"similar":      h.service.Similar(*rec),
		"alternatives": h.service.Alternatives(*rec),
	})
}

// --------------------------------------------------
// Analyze a food by name
// --------------------------------------------------
func (h *Handler) AnalyzeText(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	rec, err := h.service.RecognizeText(c.Request.Context(), req.Name)
	if err != nil {
		h.analysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"food":         rec,
		"similar":      h.service.Similar(*rec),
		"alternatives": h.service.Alternatives(*rec),
	})
}

// analysisError maps transport failures to a retryable upstream error;
// anything else is internal. Parse failures never reach here, they
// degrade into a low-confidence record instead.
func (h *Handler) analysisError(c *gin.Context, err error) {
	var remote *llm.RemoteAnalysisError
	if errors.As(err, &remote) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "food analysis failed, please try again",
			"status": remote.StatusCode,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// --------------------------------------------------
// History
// --------------------------------------------------
func (h *Handler) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": h.store.History()})
}

func (h *Handler) RecentScans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scans": h.store.RecentScans()})
}

func (h *Handler) RemoveFromHistory(c *gin.Context) {
	h.store.RemoveFromHistory(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "removed"})
}

func (h *Handler) ClearHistory(c *gin.Context) {
	h.store.ClearHistory(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "history cleared"})
}
