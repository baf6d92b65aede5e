package handlers

import (
	"net/http"

	"fixify/services/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes invoicing and payment confirmation.
type PaymentHandler struct {
	Svc payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

type invoiceInput struct {
	Amount   int64  `json:"amount" binding:"required,min=1"`
	Currency string `json:"currency" binding:"required,len=3"`
}

// IssueInvoice creates an invoice for a completed job. Technician only.
// POST /api/requests/:id/invoice
func (h *PaymentHandler) IssueInvoice(c *gin.Context) {
	var input invoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	clientSecret, err := h.Svc.IssueInvoice(c.Request.Context(), c.Param("id"), input.Amount, input.Currency)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// MarkPaid records a confirmed payment for the request's invoice.
// POST /api/requests/:id/payment/confirm
func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	if err := h.Svc.MarkPaid(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment recorded"})
}
