package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// AllocationHandler exposes payment application endpoints.
type AllocationHandler struct {
	allocationSvc portssvc.AllocationService
}

// NewAllocationHandler creates an AllocationHandler.
func NewAllocationHandler(allocationSvc portssvc.AllocationService) *AllocationHandler {
	return &AllocationHandler{allocationSvc: allocationSvc}
}

// ApplyPayment godoc
// @Summary Apply part of a payment to an invoice
// @Tags applications
// @Accept json
// @Produce json
// @Param application body dto.ApplyPaymentRequest true "Allocation to perform"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 422 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications [post]
func (h *AllocationHandler) ApplyPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	app, err := h.allocationSvc.Apply(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToApplicationResponse(app))
}

// ApplyPaymentBatch godoc
// @Summary Spread one payment across several invoices
// @Tags applications
// @Accept json
// @Produce json
// @Param batch body dto.BatchApplyRequest true "Batch allocation"
// @Success 200 {object} dto.BatchApplyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/batch [post]
func (h *AllocationHandler) ApplyPaymentBatch(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.BatchApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := h.allocationSvc.ApplyBatch(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetApplication godoc
// @Summary Get a payment application
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/{id} [get]
func (h *AllocationHandler) GetApplication(c *gin.Context) {
	app, err := h.allocationSvc.GetApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

// ReverseApplication godoc
// @Summary Reverse an active application
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param reversal body dto.ReverseApplicationRequest true "Reversal reason"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/{id}/reverse [post]
func (h *AllocationHandler) ReverseApplication(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ReverseApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	app, err := h.allocationSvc.Reverse(c.Request.Context(), c.Param("id"), req.Reason, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}
