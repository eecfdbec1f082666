package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ReddyVikranth/Contract-Intelligence-Parser/middleware"
	"github.com/ReddyVikranth/Contract-Intelligence-Parser/model"
	"github.com/ReddyVikranth/Contract-Intelligence-Parser/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadSize caps contract uploads at 50MB.
const maxUploadSize = 50 << 20

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Storage is the slice of object storage the contract handlers need.
type Storage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GetFile(ctx context.Context, objectName string) ([]byte, error)
	DeleteFile(ctx context.Context, objectName string) error
}

// Enqueuer submits contract IDs to the background processor.
type Enqueuer interface {
	Enqueue(contractID string) error
}

type ContractHandler struct {
	storage   Storage
	processor Enqueuer
	store     *service.ContractStore
}

func NewContractHandler(storage Storage, processor Enqueuer, store *service.ContractStore) *ContractHandler {
	return &ContractHandler{
		storage:   storage,
		processor: processor,
		store:     store,
	}
}

// Upload handles contract file upload and kicks off processing
func (h *ContractHandler) Upload(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are supported"})
		return
	}

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 50MB limit"})
		return
	}

	// Sniff the content when the client sent something other than a PDF
	// content type
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = "application/pdf"
	} else if !strings.Contains(contentType, "pdf") {
		buffer := make([]byte, 512)
		if _, err := file.Read(buffer); err != nil && err != io.EOF {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
			return
		}
		file.Seek(0, io.SeekStart)

		detectedType := http.DetectContentType(buffer)
		if !strings.Contains(detectedType, "pdf") && detectedType != "application/octet-stream" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type"})
			return
		}
		contentType = "application/pdf"
	}

	contractID := uuid.New().String()
	objectName := fmt.Sprintf("%s/%s/%s", tenant, contractID, header.Filename)

	err = h.storage.UploadFile(c.Request.Context(), objectName, file, header.Size, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file: " + err.Error()})
		return
	}

	contract := &model.Contract{
		ID:         contractID,
		Filename:   header.Filename,
		Tenant:     tenant,
		FileSize:   header.Size,
		ObjectName: objectName,
		Status:     model.StatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	h.store.Save(contract)

	if err := h.processor.Enqueue(contractID); err != nil {
		h.store.Delete(contractID)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Processing queue is full, try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contract_id": contractID,
		"message":     "Contract uploaded successfully. Processing started.",
		"status":      model.StatusPending,
	})
}

// List returns a paginated list of the tenant's contracts
func (h *ContractHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	status := c.Query("status")
	if status != "" && !model.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	contracts, total := h.store.List(tenant, page, pageSize, status)

	// List view omits the extraction payloads
	result := make([]gin.H, len(contracts))
	for i, contract := range contracts {
		result[i] = gin.H{
			"contract_id":         contract.ID,
			"filename":            contract.Filename,
			"file_size":           contract.FileSize,
			"status":              contract.Status,
			"progress_percentage": contract.ProgressPercentage,
			"created_at":          contract.CreatedAt.Format(time.RFC3339),
			"updated_at":          contract.UpdatedAt.Format(time.RFC3339),
		}
	}

	totalPages := (total + pageSize - 1) / pageSize

	c.JSON(http.StatusOK, gin.H{
		"contracts":   result,
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": totalPages,
	})
}

// Get returns the full contract record including extraction results.
// Results are only available once processing completed.
func (h *ContractHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	contract := h.store.Get(id)
	if contract == nil || contract.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	if contract.Status != model.StatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Contract data not available. Status: %s", contract.Status),
		})
		return
	}

	c.JSON(http.StatusOK, contract)
}

// GetStatus returns the processing status of a contract
func (h *ContractHandler) GetStatus(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	contract := h.store.Get(id)
	if contract == nil || contract.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contract_id":         contract.ID,
		"status":              contract.Status,
		"progress_percentage": contract.ProgressPercentage,
		"error_message":       contract.ErrorMessage,
	})
}

// Download streams the original PDF back to the client
func (h *ContractHandler) Download(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	contract := h.store.Get(id)
	if contract == nil || contract.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	data, err := h.storage.GetFile(c.Request.Context(), contract.ObjectName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch file: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", contract.Filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// Delete removes a contract record and its stored file
func (h *ContractHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	contract := h.store.Get(id)
	if contract == nil || contract.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	if err := h.storage.DeleteFile(c.Request.Context(), contract.ObjectName); err != nil {
		// The record still goes away; the orphaned object is logged for cleanup
		slog.Warn("failed to delete stored file",
			"contract_id", id,
			"object_name", contract.ObjectName,
			"error", err,
		)
	}
	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Contract deleted"})
}
