package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"audio-redact/internal/api/errors"
	"audio-redact/internal/api/middleware"
	"audio-redact/internal/api/v1/dto"
	"audio-redact/internal/api/v1/services"
)

// RedactionHandler handles redaction-related API endpoints
type RedactionHandler struct {
	service services.RedactionService
	storage services.StorageService
}

// NewRedactionHandler creates a new redaction handler
func NewRedactionHandler(service services.RedactionService, storage services.StorageService) *RedactionHandler {
	return &RedactionHandler{
		service: service,
		storage: storage,
	}
}

// Create handles POST /api/v1/redactions
//
// @Summary Redact an audio file
// @Description Transcribes the file, detects sensitive phrases (unless supplied) and overwrites the matched time ranges with a masking tone
// @Tags redactions
// @Accept json
// @Produce json
// @Param redaction body dto.CreateRedactionRequest true "Redaction request"
// @Success 201 {object} dto.RedactionResponse "Redaction completed"
// @Failure 404 {object} errors.APIError "Audio file not found"
// @Failure 409 {object} errors.APIError "Audio shorter than the word timeline"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /redactions [post]
func (h *RedactionHandler) Create(c *gin.Context) {
	var req dto.CreateRedactionRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreateRedaction(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Get handles GET /api/v1/redactions/:id
//
// @Summary Get redaction job by ID
// @Description Retrieves the audit record of a redaction job
// @Tags redactions
// @Produce json
// @Param id path int true "Redaction job ID" minimum(1)
// @Success 200 {object} dto.RedactionResponse "Redaction job details"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Failure 404 {object} errors.APIError "Redaction job not found"
// @Router /redactions/{id} [get]
func (h *RedactionHandler) Get(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid redaction ID"))
		return
	}

	response, err := h.service.GetRedaction(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetReport handles GET /api/v1/redactions/:id/report
//
// @Summary Get the audit report of a redaction job
// @Description Retrieves the applied ranges and match counts of a completed job
// @Tags redactions
// @Produce json
// @Param id path int true "Redaction job ID" minimum(1)
// @Success 200 {object} dto.ReportResponse "Redaction report"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Failure 404 {object} errors.APIError "Redaction job not found"
// @Router /redactions/{id}/report [get]
func (h *RedactionHandler) GetReport(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid redaction ID"))
		return
	}

	response, err := h.service.GetReport(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Download handles GET /api/v1/redactions/:id/download
//
// @Summary Download the redacted audio
// @Description Streams the redacted WAV file of a completed job
// @Tags redactions
// @Produce audio/wav
// @Param id path int true "Redaction job ID" minimum(1)
// @Success 200 {file} file "Redacted audio"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Failure 404 {object} errors.APIError "Redaction job or output not found"
// @Router /redactions/{id}/download [get]
func (h *RedactionHandler) Download(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid redaction ID"))
		return
	}

	outputPath, err := h.service.ResolveOutputFile(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.FileAttachment(outputPath, filepath.Base(outputPath))
}

// Delete handles DELETE /api/v1/redactions/:id
//
// @Summary Delete a redaction job
// @Description Removes the job record and its redacted output file
// @Tags redactions
// @Produce json
// @Param id path int true "Redaction job ID" minimum(1)
// @Success 204 "Redaction deleted"
// @Failure 400 {object} errors.APIError "Bad request - invalid ID"
// @Failure 404 {object} errors.APIError "Redaction job not found"
// @Router /redactions/{id} [delete]
func (h *RedactionHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid redaction ID"))
		return
	}

	if err := h.service.DeleteRedaction(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /api/v1/redactions
//
// @Summary List recent redaction jobs
// @Description Retrieves the most recent redaction jobs, newest first
// @Tags redactions
// @Produce json
// @Param limit query int false "Maximum jobs to return" default(20) minimum(1) maximum(100)
// @Success 200 {array} dto.RedactionResponse "Recent redaction jobs"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Router /redactions [get]
func (h *RedactionHandler) List(c *gin.Context) {
	var query dto.ListRedactionsQuery

	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	responses, err := h.service.ListRedactions(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(len(responses)))
	c.JSON(http.StatusOK, responses)
}

// Upload handles POST /api/v1/redactions/upload
//
// @Summary Upload an audio file for redaction
// @Description Stores the uploaded audio in object storage and returns its key
// @Tags redactions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Success 201 {object} services.FileUploadResult "Upload stored"
// @Failure 400 {object} errors.APIError "Bad request - missing file"
// @Failure 500 {object} errors.APIError "Upload failed"
// @Router /redactions/upload [post]
func (h *RedactionHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Missing file upload"))
		return
	}
	defer file.Close()

	result, err := h.storage.UploadFile(c.Request.Context(), file, header)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to store upload"))
		return
	}

	c.JSON(http.StatusCreated, result)
}
