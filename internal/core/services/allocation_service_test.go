package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

type AllocationServiceTestSuite struct {
	suite.Suite
	invoiceRepo  *MockInvoiceRepository
	paymentRepo  *MockPaymentRepository
	allocRepo    *MockAllocationRepository
	currencyRepo *MockCurrencyRepository
	events       *MockEventSink
	service      *allocationService
	ctx          context.Context
}

func (s *AllocationServiceTestSuite) SetupTest() {
	s.invoiceRepo = new(MockInvoiceRepository)
	s.paymentRepo = new(MockPaymentRepository)
	s.allocRepo = new(MockAllocationRepository)
	s.currencyRepo = new(MockCurrencyRepository)
	s.events = relaxedEventSink()
	s.service = NewAllocationService(s.invoiceRepo, s.paymentRepo, s.allocRepo, s.currencyRepo, s.events).(*allocationService)
	s.ctx = context.Background()

	s.currencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").
		Return(domain.Currency{CurrencyCode: "USD", Precision: 2}, nil).Maybe()
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func (s *AllocationServiceTestSuite) sentInvoice(total, paid string) domain.Invoice {
	status := domain.InvoiceSent
	if !dec(paid).IsZero() {
		status = domain.InvoicePartial
	}
	return domain.Invoice{
		InvoiceID:    "inv-1",
		Kind:         domain.KindAR,
		ContactID:    "contact-1",
		CurrencyCode: "USD",
		TotalAmount:  dec(total),
		PaidAmount:   dec(paid),
		Status:       status,
		Version:      3,
	}
}

func (s *AllocationServiceTestSuite) postedPayment(amount, applied string) domain.Payment {
	return domain.Payment{
		PaymentID:     "pay-1",
		ContactID:     "contact-1",
		CurrencyCode:  "USD",
		Amount:        dec(amount),
		AppliedAmount: dec(applied),
		Status:        domain.PaymentPosted,
		Version:       2,
	}
}

func applyReq(amount string) dto.ApplyPaymentRequest {
	return dto.ApplyPaymentRequest{
		PaymentID:       "pay-1",
		InvoiceID:       "inv-1",
		InvoiceKind:     "AR",
		Amount:          dec(amount),
		ApplicationDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func (s *AllocationServiceTestSuite) TestApplyExactRemainingBalanceMarksPaid() {
	invoice := s.sentInvoice("2320.00", "500.00")
	payment := s.postedPayment("5000.00", "0")
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(payment, nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(invoice, nil)

	var savedInvoice domain.Invoice
	var savedPayment domain.Payment
	s.allocRepo.On("SaveAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedInvoice = args.Get(2).(domain.Invoice)
			savedPayment = args.Get(3).(domain.Payment)
		}).Return(nil)

	app, err := s.service.Apply(s.ctx, applyReq("1820.00"), "user-1")

	s.Require().NoError(err)
	s.Equal(domain.ApplicationActive, app.Status)
	s.True(app.Amount.Equal(dec("1820.00")))
	s.Require().NotNil(app.ARInvoiceID)
	s.Equal("inv-1", *app.ARInvoiceID)
	s.Nil(app.APInvoiceID)

	s.True(savedInvoice.PaidAmount.Equal(dec("2320.00")))
	s.Equal(domain.InvoicePaid, savedInvoice.Status)
	s.True(savedPayment.AppliedAmount.Equal(dec("1820.00")))
	s.allocRepo.AssertNumberOfCalls(s.T(), "SaveAllocation", 1)
}

func (s *AllocationServiceTestSuite) TestApplyOneCentOverRemainingFails() {
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(s.postedPayment("5000.00", "0"), nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(s.sentInvoice("2320.00", "500.00"), nil)

	_, err := s.service.Apply(s.ctx, applyReq("1820.01"), "user-1")

	s.ErrorIs(err, ErrInsufficientInvoiceBalance)
	s.ErrorContains(err, "requested 1820.01")
	s.ErrorContains(err, "remaining 1820")
	s.allocRepo.AssertNotCalled(s.T(), "SaveAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AllocationServiceTestSuite) TestApplyExceedingUnappliedPaymentFails() {
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(s.postedPayment("1000.00", "400.00"), nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(s.sentInvoice("2320.00", "0"), nil)

	_, err := s.service.Apply(s.ctx, applyReq("700.00"), "user-1")

	s.ErrorIs(err, ErrInsufficientPaymentBalance)
	s.ErrorContains(err, "requested 700")
	s.ErrorContains(err, "unapplied 600")
	s.allocRepo.AssertNotCalled(s.T(), "SaveAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AllocationServiceTestSuite) TestApplyCurrencyMismatchFails() {
	payment := s.postedPayment("1000.00", "0")
	payment.CurrencyCode = "EUR"
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(payment, nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(s.sentInvoice("2320.00", "0"), nil)

	_, err := s.service.Apply(s.ctx, applyReq("100.00"), "user-1")

	s.ErrorIs(err, ErrCurrencyMismatch)
	s.ErrorContains(err, "payment is EUR, invoice is USD")
}

func (s *AllocationServiceTestSuite) TestApplyToVoidInvoiceFails() {
	invoice := s.sentInvoice("2320.00", "0")
	invoice.Status = domain.InvoiceVoid
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(s.postedPayment("1000.00", "0"), nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(invoice, nil)

	_, err := s.service.Apply(s.ctx, applyReq("100.00"), "user-1")

	s.ErrorIs(err, ErrInvoiceVoided)
}

func (s *AllocationServiceTestSuite) TestApplyWithDraftPaymentFails() {
	payment := s.postedPayment("1000.00", "0")
	payment.Status = domain.PaymentDraft
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(payment, nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(s.sentInvoice("2320.00", "0"), nil)

	_, err := s.service.Apply(s.ctx, applyReq("100.00"), "user-1")

	s.ErrorIs(err, ErrPaymentNotPosted)
}

func (s *AllocationServiceTestSuite) TestApplyKindMismatchFails() {
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(s.postedPayment("1000.00", "0"), nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(s.sentInvoice("2320.00", "0"), nil)

	req := applyReq("100.00")
	req.InvoiceKind = "AP"
	_, err := s.service.Apply(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AllocationServiceTestSuite) TestApplyRetriesOnConflictThenSucceeds() {
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(s.postedPayment("1000.00", "0"), nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(s.sentInvoice("2320.00", "0"), nil)

	s.allocRepo.On("SaveAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.ErrConflict).Once()
	s.allocRepo.On("SaveAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()

	app, err := s.service.Apply(s.ctx, applyReq("100.00"), "user-1")

	s.Require().NoError(err)
	s.True(app.Amount.Equal(dec("100.00")))
	s.allocRepo.AssertNumberOfCalls(s.T(), "SaveAllocation", 2)
}

func (s *AllocationServiceTestSuite) TestApplyGivesUpAfterRepeatedConflicts() {
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(s.postedPayment("1000.00", "0"), nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(s.sentInvoice("2320.00", "0"), nil)
	s.allocRepo.On("SaveAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.ErrConflict)

	_, err := s.service.Apply(s.ctx, applyReq("100.00"), "user-1")

	s.ErrorIs(err, ErrConcurrentModification)
	s.allocRepo.AssertNumberOfCalls(s.T(), "SaveAllocation", conflictRetries)
}

func (s *AllocationServiceTestSuite) TestApplyNonPositiveAmountFails() {
	req := applyReq("0")
	_, err := s.service.Apply(s.ctx, req, "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)

	req = applyReq("-5.00")
	_, err = s.service.Apply(s.ctx, req, "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AllocationServiceTestSuite) TestApplyPrecisionExceedingCurrencyFails() {
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(s.postedPayment("1000.00", "0"), nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(s.sentInvoice("2320.00", "0"), nil)

	_, err := s.service.Apply(s.ctx, applyReq("10.001"), "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AllocationServiceTestSuite) TestApplyBatchReportsPerLineOutcomes() {
	invoices := map[string]domain.Invoice{
		"inv-a": {InvoiceID: "inv-a", Kind: domain.KindAR, CurrencyCode: "USD",
			TotalAmount: dec("600.00"), PaidAmount: dec("0"), Status: domain.InvoiceSent, Version: 1},
		"inv-b": {InvoiceID: "inv-b", Kind: domain.KindAR, CurrencyCode: "USD",
			TotalAmount: dec("900.00"), PaidAmount: dec("0"), Status: domain.InvoiceSent, Version: 1},
	}
	// Payment state as the service would re-read it after the first line
	// lands: 600 of 1000 already applied.
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").
		Return(s.postedPayment("1000.00", "0"), nil).Times(2)
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").
		Return(s.postedPayment("1000.00", "600.00"), nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-a").Return(invoices["inv-a"], nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-b").Return(invoices["inv-b"], nil)
	s.allocRepo.On("SaveAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	resp, err := s.service.ApplyBatch(s.ctx, dto.BatchApplyRequest{
		PaymentID:       "pay-1",
		ApplicationDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Lines: []dto.BatchApplyLine{
			{InvoiceID: "inv-a", InvoiceKind: "AR", Amount: dec("600.00")},
			{InvoiceID: "inv-b", InvoiceKind: "AR", Amount: dec("900.00")},
		},
	}, "user-1")

	s.Require().NoError(err)
	s.Require().Len(resp.Results, 2)
	s.True(resp.Results[0].Applied)
	s.NotNil(resp.Results[0].Application)
	s.False(resp.Results[1].Applied)
	s.Contains(resp.Results[1].Error, ErrInsufficientPaymentBalance.Error())
	s.allocRepo.AssertNumberOfCalls(s.T(), "SaveAllocation", 1)
}

func (s *AllocationServiceTestSuite) TestReverseRestoresBalances() {
	invoiceID := "inv-1"
	app := domain.PaymentApplication{
		ApplicationID: "app-1",
		PaymentID:     "pay-1",
		ARInvoiceID:   &invoiceID,
		Amount:        dec("1820.00"),
		Status:        domain.ApplicationActive,
	}
	invoice := s.sentInvoice("2320.00", "2320.00")
	invoice.Status = domain.InvoicePaid
	payment := s.postedPayment("5000.00", "1820.00")

	s.allocRepo.On("FindApplicationByID", mock.Anything, "app-1").Return(app, nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(invoice, nil)
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(payment, nil)

	var reversedApp domain.PaymentApplication
	var savedInvoice domain.Invoice
	var savedPayment domain.Payment
	s.allocRepo.On("ReverseAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			reversedApp = args.Get(1).(domain.PaymentApplication)
			savedInvoice = args.Get(2).(domain.Invoice)
			savedPayment = args.Get(3).(domain.Payment)
		}).Return(nil)

	result, err := s.service.Reverse(s.ctx, "app-1", "entered against wrong invoice", "user-2")

	s.Require().NoError(err)
	s.Equal(domain.ApplicationReversed, result.Status)
	s.NotNil(result.ReversedAt)
	s.Equal("entered against wrong invoice", result.ReversalReason)
	s.True(reversedApp.Amount.Equal(dec("1820.00")), "reversal must not change the application amount")

	s.True(savedInvoice.PaidAmount.Equal(dec("500.00")))
	s.Equal(domain.InvoicePartial, savedInvoice.Status)
	s.True(savedPayment.AppliedAmount.Equal(dec("0")))
}

func (s *AllocationServiceTestSuite) TestReverseSoleApplicationReopensInvoiceAsSent() {
	invoiceID := "inv-1"
	app := domain.PaymentApplication{
		ApplicationID: "app-1",
		PaymentID:     "pay-1",
		ARInvoiceID:   &invoiceID,
		Amount:        dec("250.00"),
		Status:        domain.ApplicationActive,
	}
	invoice := s.sentInvoice("1000.00", "250.00")

	s.allocRepo.On("FindApplicationByID", mock.Anything, "app-1").Return(app, nil)
	s.invoiceRepo.On("FindInvoiceByID", mock.Anything, "inv-1").Return(invoice, nil)
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(s.postedPayment("250.00", "250.00"), nil)

	var savedInvoice domain.Invoice
	s.allocRepo.On("ReverseAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedInvoice = args.Get(2).(domain.Invoice)
		}).Return(nil)

	_, err := s.service.Reverse(s.ctx, "app-1", "duplicate entry", "user-1")

	s.Require().NoError(err)
	s.True(savedInvoice.PaidAmount.IsZero())
	s.Equal(domain.InvoiceSent, savedInvoice.Status)
}

func (s *AllocationServiceTestSuite) TestReverseAlreadyReversedFails() {
	invoiceID := "inv-1"
	reversedAt := time.Now().UTC()
	app := domain.PaymentApplication{
		ApplicationID: "app-1",
		PaymentID:     "pay-1",
		ARInvoiceID:   &invoiceID,
		Amount:        dec("100.00"),
		Status:        domain.ApplicationReversed,
		ReversedAt:    &reversedAt,
	}
	s.allocRepo.On("FindApplicationByID", mock.Anything, "app-1").Return(app, nil)

	_, err := s.service.Reverse(s.ctx, "app-1", "again", "user-1")

	s.ErrorIs(err, ErrApplicationAlreadyReversed)
	s.allocRepo.AssertNotCalled(s.T(), "ReverseAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AllocationServiceTestSuite) TestReverseWithoutReasonFails() {
	_, err := s.service.Reverse(s.ctx, "app-1", "", "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestAllocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationServiceTestSuite))
}
