package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
	"github.com/hotaeshwar/crm-sub000/pkg/db/pagination"
)

type invoiceServiceInput struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type createInvoiceRequest struct {
	ClientID       string                `json:"client_id"`
	IssueDate      string                `json:"issue_date"`
	DueDate        string                `json:"due_date"`
	Services       []invoiceServiceInput `json:"services"`
	Tax            string                `json:"tax"`
	PaymentTerm    string                `json:"payment_term"`
	Status         string                `json:"status"`
	AmountReceived string                `json:"amount_received"`
	BillType       string                `json:"bill_type"`
}

type updateInvoiceRequest struct {
	ClientID       *string               `json:"client_id"`
	IssueDate      *string               `json:"issue_date"`
	DueDate        *string               `json:"due_date"`
	ClearDue       bool                  `json:"clear_due"`
	Services       []invoiceServiceInput `json:"services"`
	Tax            *string               `json:"tax"`
	PaymentTerm    *string               `json:"payment_term"`
	Status         *string               `json:"status"`
	AmountReceived *string               `json:"amount_received"`
	BillType       *string               `json:"bill_type"`
}

func toServiceInputs(items []invoiceServiceInput) []invoicedomain.ServiceItemInput {
	if items == nil {
		return nil
	}
	inputs := make([]invoicedomain.ServiceItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, invoicedomain.ServiceItemInput{
			Name:   item.Name,
			Amount: item.Amount,
		})
	}
	return inputs
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	issueDate, err := parseOptionalTime(req.IssueDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("issue_date", "invalid_issue_date", "invalid issue_date"))
		return
	}
	if issueDate == nil {
		now := s.clock.Now()
		issueDate = &now
	}

	dueDate, err := parseOptionalTime(req.DueDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("due_date", "invalid_due_date", "invalid due_date"))
		return
	}

	resp, err := s.invoiceSvc.Create(c.Request.Context(), invoicedomain.CreateInvoiceRequest{
		ClientID:       strings.TrimSpace(req.ClientID),
		IssueDate:      *issueDate,
		DueDate:        dueDate,
		Services:       toServiceInputs(req.Services),
		TaxSpec:        req.Tax,
		PaymentTerm:    req.PaymentTerm,
		Status:         req.Status,
		AmountReceived: req.AmountReceived,
		BillType:       req.BillType,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListInvoices(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Status   string `form:"status"`
		BillType string `form:"bill_type"`
		ClientID string `form:"client_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.List(c.Request.Context(), invoicedomain.ListInvoiceRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Status:    strings.TrimSpace(query.Status),
		BillType:  strings.TrimSpace(query.BillType),
		ClientID:  strings.TrimSpace(query.ClientID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	resp, err := s.invoiceSvc.GetByID(c.Request.Context(), invoicedomain.GetInvoiceRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	var req updateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	update := invoicedomain.UpdateInvoiceRequest{
		ID:             strings.TrimSpace(c.Param("id")),
		ClientID:       req.ClientID,
		ClearDue:       req.ClearDue,
		Services:       toServiceInputs(req.Services),
		TaxSpec:        req.Tax,
		PaymentTerm:    req.PaymentTerm,
		Status:         req.Status,
		AmountReceived: req.AmountReceived,
		BillType:       req.BillType,
	}

	if req.IssueDate != nil {
		issueDate, err := parseOptionalTime(*req.IssueDate, false)
		if err != nil || issueDate == nil {
			AbortWithError(c, newValidationError("issue_date", "invalid_issue_date", "invalid issue_date"))
			return
		}
		update.IssueDate = issueDate
	}
	if req.DueDate != nil {
		dueDate, err := parseOptionalTime(*req.DueDate, false)
		if err != nil || dueDate == nil {
			AbortWithError(c, newValidationError("due_date", "invalid_due_date", "invalid due_date"))
			return
		}
		update.DueDate = dueDate
	}

	resp, err := s.invoiceSvc.Update(c.Request.Context(), update)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	err := s.invoiceSvc.Delete(c.Request.Context(), invoicedomain.DeleteInvoiceRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
