package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumatch/backend/internal/models"
	"github.com/resumatch/backend/internal/services"
	"github.com/resumatch/backend/internal/utils"
)

type CVHandler struct {
	svc            services.CVService
	maxUploadBytes int64
}

func NewCVHandler(svc services.CVService, maxUploadBytes int64) *CVHandler {
	return &CVHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

type uploadResponse struct {
	Message string          `json:"message"`
	Profile *models.Profile `json:"profile"`
}

type profileResponse struct {
	Profile *models.Profile `json:"profile"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Upload gates the multipart file on type and size, then hands the bytes
// to the ingestion pipeline. Gate violations fail before any extraction
// or persistence happens.
func (h *CVHandler) Upload(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("cv")
	if err != nil {
		writeError(c, utils.E(utils.CodeFileUpload, "CVHandler.Upload", "No file was uploaded", err))
		return
	}

	if fh.Size <= 0 {
		writeError(c, utils.E(utils.CodeFileUpload, "CVHandler.Upload", "Uploaded file is empty", nil))
		return
	}
	if fh.Size > h.maxUploadBytes {
		writeError(c, utils.E(utils.CodeFileUpload, "CVHandler.Upload",
			fmt.Sprintf("File size exceeds %dMB limit", h.maxUploadBytes>>20), nil))
		return
	}

	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != "application/pdf" {
		writeError(c, utils.E(utils.CodeFileUpload, "CVHandler.Upload", "Only PDF files are supported", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		writeError(c, fmt.Errorf("read upload: %w", err))
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		writeError(c, utils.E(utils.CodeFileUpload, "CVHandler.Upload",
			fmt.Sprintf("File size exceeds %dMB limit", h.maxUploadBytes>>20), nil))
		return
	}

	// sniff the magic bytes; the declared type is not trusted
	if http.DetectContentType(data) != "application/pdf" {
		writeError(c, utils.E(utils.CodeFileUpload, "CVHandler.Upload", "Only PDF files are supported", nil))
		return
	}

	profile, err := h.svc.Upload(c.Request.Context(), userID, data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, uploadResponse{
		Message: "CV uploaded successfully",
		Profile: profile,
	})
}

func (h *CVHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{Profile: p})
}

func (h *CVHandler) DeleteProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteProfile(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Deleted"})
}
