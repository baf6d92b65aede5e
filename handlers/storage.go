package handlers

import (
	"net/http"

	requestRepo "fixify/database/repository/request"
	"fixify/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler exposes photo upload for service requests.
type StorageHandler struct {
	Svc      storage.StorageService
	Requests requestRepo.RequestRepository
}

func NewStorageHandler(svc storage.StorageService, requests requestRepo.RequestRepository) *StorageHandler {
	return &StorageHandler{Svc: svc, Requests: requests}
}

// UploadRequestPhoto uploads a photo and attaches it to the request.
// POST /api/requests/:id/photo (multipart form, field "photo")
func (h *StorageHandler) UploadRequestPhoto(c *gin.Context) {
	requestID := c.Param("id")
	if _, err := h.Requests.GetByID(c.Request.Context(), requestID); err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.Svc.UploadPhoto(c.Request.Context(), file, "request_photos")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Requests.SetPhoto(c.Request.Context(), requestID, url); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}
