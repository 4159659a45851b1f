package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	invoiceRepo  *MockInvoiceRepository
	currencyRepo *MockCurrencyRepository
	service      *invoiceService
	ctx          context.Context
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.invoiceRepo = new(MockInvoiceRepository)
	s.currencyRepo = new(MockCurrencyRepository)
	s.service = NewInvoiceService(s.invoiceRepo, s.currencyRepo).(*invoiceService)
	s.ctx = context.Background()

	s.currencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").
		Return(domain.Currency{CurrencyCode: "USD", Precision: 2}, nil).Maybe()
}

func createInvoiceReq(total string) dto.CreateInvoiceRequest {
	due := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	return dto.CreateInvoiceRequest{
		Kind:          "AR",
		ContactID:     "contact-1",
		InvoiceNumber: "INV-0042",
		CurrencyCode:  "USD",
		TotalAmount:   dec(total),
		DueDate:       &due,
	}
}

func (s *InvoiceServiceTestSuite) TestCreateInvoiceStartsAsDraft() {
	s.invoiceRepo.On("CreateInvoice", mock.Anything, mock.Anything).Return(nil)

	invoice, err := s.service.CreateInvoice(s.ctx, createInvoiceReq("2320.00"), "user-1")

	s.Require().NoError(err)
	s.Equal(domain.InvoiceDraft, invoice.Status)
	s.True(invoice.PaidAmount.IsZero())
	s.EqualValues(1, invoice.Version)
	s.NotEmpty(invoice.InvoiceID)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoiceRejectsNonPositiveTotal() {
	_, err := s.service.CreateInvoice(s.ctx, createInvoiceReq("0"), "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.invoiceRepo.AssertNotCalled(s.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoiceRejectsUnknownCurrency() {
	s.currencyRepo.On("FindCurrencyByCode", mock.Anything, "ZZZ").
		Return(domain.Currency{}, apperrors.ErrNotFound)

	req := createInvoiceReq("100.00")
	req.CurrencyCode = "ZZZ"
	_, err := s.service.CreateInvoice(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoiceRejectsExcessPrecision() {
	req := createInvoiceReq("100.001")
	_, err := s.service.CreateInvoice(s.ctx, req, "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *InvoiceServiceTestSuite) TestSendInvoiceOpensDraft() {
	draft := domain.Invoice{InvoiceID: "inv-1", Status: domain.InvoiceDraft, Version: 1}
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(draft, nil)
	s.invoiceRepo.On("UpdateInvoice", mock.Anything, mock.Anything).Return(int64(2), nil)

	invoice, err := s.service.SendInvoice(s.ctx, "inv-1", "user-1")

	s.Require().NoError(err)
	s.Equal(domain.InvoiceSent, invoice.Status)
	s.EqualValues(2, invoice.Version)
}

func (s *InvoiceServiceTestSuite) TestSendInvoiceTwiceFails() {
	sent := domain.Invoice{InvoiceID: "inv-1", Status: domain.InvoiceSent, Version: 2}
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(sent, nil)

	_, err := s.service.SendInvoice(s.ctx, "inv-1", "user-1")

	s.ErrorIs(err, ErrInvalidStatusTransition)
}

func (s *InvoiceServiceTestSuite) TestVoidInvoiceWithPaymentsFails() {
	invoice := domain.Invoice{
		InvoiceID:   "inv-1",
		Status:      domain.InvoicePartial,
		TotalAmount: dec("100.00"),
		PaidAmount:  dec("30.00"),
	}
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(invoice, nil)

	_, err := s.service.VoidInvoice(s.ctx, "inv-1", "user-1")

	s.ErrorIs(err, ErrInvoiceHasPayments)
	s.invoiceRepo.AssertNotCalled(s.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (s *InvoiceServiceTestSuite) TestVoidUnpaidInvoiceSucceeds() {
	invoice := domain.Invoice{
		InvoiceID:   "inv-1",
		Status:      domain.InvoiceSent,
		TotalAmount: dec("100.00"),
		PaidAmount:  dec("0"),
	}
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(invoice, nil)
	s.invoiceRepo.On("UpdateInvoice", mock.Anything, mock.Anything).Return(int64(1), nil)

	voided, err := s.service.VoidInvoice(s.ctx, "inv-1", "user-1")

	s.Require().NoError(err)
	s.Equal(domain.InvoiceVoid, voided.Status)
}

func (s *InvoiceServiceTestSuite) TestGetInvoicePropagatesUnavailable() {
	repoErr := fmt.Errorf("%w: dial tcp 10.0.0.5:5432: connection refused", apperrors.ErrUnavailable)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(domain.Invoice{}, repoErr)

	_, err := s.service.GetInvoiceByID(s.ctx, "inv-1")

	s.ErrorIs(err, apperrors.ErrUnavailable)
}

func (s *InvoiceServiceTestSuite) TestUpdateTerminalInvoiceFails() {
	invoice := domain.Invoice{InvoiceID: "inv-1", Status: domain.InvoicePaid}
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(invoice, nil)

	notes := "late fee waived"
	_, err := s.service.UpdateInvoice(s.ctx, "inv-1", dto.UpdateInvoiceRequest{Notes: &notes}, "user-1")

	s.ErrorIs(err, ErrInvalidStatusTransition)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
