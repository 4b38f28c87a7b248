package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"celebra/internal/application/usecase/abstraction"
	"celebra/internal/domain/dto"
	"celebra/internal/presentation"
	"celebra/pkg/logger"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// HandleUpload handles POST /upload?master_id=...&slot=... requests with the
// file as the raw request body.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	masterID := c.QueryParam(presentation.MasterIDParam)
	slot := c.QueryParam(presentation.SlotParam)
	if masterID == "" || slot == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing master_id or slot")

		return c.NoContent(http.StatusBadRequest)
	}

	body := c.Request().Body
	contentType := c.Request().Header.Get(presentation.TypeKey)
	contentSize := c.Request().ContentLength

	result, err := h.uploader.Upload(c.Request().Context(), body, contentSize, masterID, slot, contentType)
	if err != nil {
		logger.Error("upload failed", "master_id", masterID, "err", err)

		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to upload file. Please try again later.",
		})
	}

	return c.JSON(http.StatusOK, dto.UploadDescriptor{
		URL:      result.Location,
		Name:     masterID + "-" + slot,
		Size:     result.Size,
		FileType: result.Type,
		Uploaded: time.Now().Unix(),
	})
}
