package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// PaymentHandler exposes payment endpoints.
type PaymentHandler struct {
	paymentSvc    portssvc.PaymentService
	allocationSvc portssvc.AllocationService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(paymentSvc portssvc.PaymentService, allocationSvc portssvc.AllocationService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, allocationSvc: allocationSvc}
}

// CreatePayment godoc
// @Summary Record a draft payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment to record"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	payment, err := h.paymentSvc.CreatePayment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// GetPayment godoc
// @Summary Get a payment with its unapplied balance
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentSvc.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// ListPayments godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Param status query string false "Filter by status"
// @Param contactID query string false "Filter by contact"
// @Param limit query int false "Page size"
// @Param token query string false "Pagination token"
// @Success 200 {object} dto.ListPaymentsResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	filter := portsrepo.PaymentListFilter{Token: c.Query("token")}
	if v := c.Query("status"); v != "" {
		status := domain.PaymentStatus(v)
		filter.Status = &status
	}
	if v := c.Query("contactID"); v != "" {
		filter.ContactID = &v
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
			return
		}
		filter.Limit = limit
	}

	payments, nextToken, err := h.paymentSvc.ListPayments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.ListPaymentsResponse{
		Payments:  make([]dto.PaymentResponse, 0, len(payments)),
		NextToken: nextToken,
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, dto.ToPaymentResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// PostPayment godoc
// @Summary Post a draft payment, making it allocatable
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id}/post [post]
func (h *PaymentHandler) PostPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	payment, err := h.paymentSvc.PostPayment(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// ListPaymentApplications godoc
// @Summary List a payment's applications
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.ListApplicationsResponse
// @Security BearerAuth
// @Router /payments/{id}/applications [get]
func (h *PaymentHandler) ListPaymentApplications(c *gin.Context) {
	apps, err := h.allocationSvc.ListByPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.ListApplicationsResponse{Applications: make([]dto.ApplicationResponse, 0, len(apps))}
	for _, app := range apps {
		resp.Applications = append(resp.Applications, dto.ToApplicationResponse(app))
	}
	c.JSON(http.StatusOK, resp)
}
