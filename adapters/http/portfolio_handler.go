package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portfolioUC "github.com/folioforge/folioforge/internal/application/usecase/portfolio"
	"github.com/folioforge/folioforge/pkg/apperror"
)

type PortfolioHandler struct {
	createUseCase    *portfolioUC.CreatePortfolioUseCase
	updateUseCase    *portfolioUC.UpdatePortfolioUseCase
	deleteUseCase    *portfolioUC.DeletePortfolioUseCase
	getUseCase       *portfolioUC.GetPortfolioUseCase
	listUseCase      *portfolioUC.ListPortfoliosUseCase
	publishUseCase   *portfolioUC.PublishPortfolioUseCase
	unpublishUseCase *portfolioUC.UnpublishPortfolioUseCase
	exportUseCase    *portfolioUC.ExportPortfolioUseCase
	importUseCase    *portfolioUC.ImportPortfolioUseCase
	exportPDFUseCase *portfolioUC.ExportPDFUseCase
}

func NewPortfolioHandler(
	createUC *portfolioUC.CreatePortfolioUseCase,
	updateUC *portfolioUC.UpdatePortfolioUseCase,
	deleteUC *portfolioUC.DeletePortfolioUseCase,
	getUC *portfolioUC.GetPortfolioUseCase,
	listUC *portfolioUC.ListPortfoliosUseCase,
	publishUC *portfolioUC.PublishPortfolioUseCase,
	unpublishUC *portfolioUC.UnpublishPortfolioUseCase,
	exportUC *portfolioUC.ExportPortfolioUseCase,
	importUC *portfolioUC.ImportPortfolioUseCase,
	exportPDFUC *portfolioUC.ExportPDFUseCase,
) *PortfolioHandler {
	return &PortfolioHandler{
		createUseCase:    createUC,
		updateUseCase:    updateUC,
		deleteUseCase:    deleteUC,
		getUseCase:       getUC,
		listUseCase:      listUC,
		publishUseCase:   publishUC,
		unpublishUseCase: unpublishUC,
		exportUseCase:    exportUC,
		importUseCase:    importUC,
		exportPDFUseCase: exportPDFUC,
	}
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req SavePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	input := portfolioUC.CreatePortfolioInput{
		OwnerID: ownerID,
		Payload: req.ToDomainPayload(),
	}

	output, err := h.createUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	if len(output.Errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ToFieldErrorDTOs(output.Errors)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"portfolio_id": output.PortfolioID})
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid portfolio ID"})
		return
	}

	var req SavePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	input := portfolioUC.UpdatePortfolioInput{
		PortfolioID: portfolioID,
		OwnerID:     ownerID,
		Payload:     req.ToDomainPayload(),
	}

	output, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	if len(output.Errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ToFieldErrorDTOs(output.Errors)})
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(output.Record))
}

func (h *PortfolioHandler) List(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	records, err := h.listUseCase.Execute(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]PortfolioSummaryDTO, len(records))
	for i, r := range records {
		dtos[i] = ToPortfolioSummaryDTO(r)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid portfolio ID"})
		return
	}

	rec, err := h.getUseCase.Execute(c.Request.Context(), portfolioUC.GetPortfolioInput{
		PortfolioID: portfolioID,
		OwnerID:     ownerID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(rec))
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid portfolio ID"})
		return
	}

	input := portfolioUC.DeletePortfolioInput{
		PortfolioID: portfolioID,
		OwnerID:     ownerID,
	}
	if err := h.deleteUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PortfolioHandler) Publish(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid portfolio ID"})
		return
	}

	output, err := h.publishUseCase.Execute(c.Request.Context(), portfolioUC.PublishPortfolioInput{
		PortfolioID: portfolioID,
		OwnerID:     ownerID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"share_url": output.ShareURL})
}

func (h *PortfolioHandler) Unpublish(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid portfolio ID"})
		return
	}

	input := portfolioUC.UnpublishPortfolioInput{
		PortfolioID: portfolioID,
		OwnerID:     ownerID,
	}
	if err := h.unpublishUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PortfolioHandler) Export(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid portfolio ID"})
		return
	}

	output, err := h.exportUseCase.Execute(c.Request.Context(), portfolioUC.ExportPortfolioInput{
		PortfolioID: portfolioID,
		OwnerID:     ownerID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(http.StatusOK, "application/json", output.JSON)
}

// Import accepts a previously exported JSON document as a multipart file and
// creates a brand-new portfolio from it.
func (h *PortfolioHandler) Import(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("file cannot be opened", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.NewInternal("file cannot be read", err))
		return
	}

	output, err := h.importUseCase.Execute(c.Request.Context(), portfolioUC.ImportPortfolioInput{
		OwnerID: ownerID,
		JSON:    data,
	})
	if err != nil {
		c.Error(err)
		return
	}
	if len(output.Errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ToFieldErrorDTOs(output.Errors)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"portfolio_id": output.PortfolioID})
}

func (h *PortfolioHandler) ExportPDF(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid portfolio ID"})
		return
	}

	output, err := h.exportPDFUseCase.Execute(c.Request.Context(), portfolioUC.ExportPDFInput{
		PortfolioID: portfolioID,
		OwnerID:     ownerID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", output.PDF)
}
