package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	paymentRepo  *MockPaymentRepository
	currencyRepo *MockCurrencyRepository
	events       *MockEventSink
	service      *paymentService
	ctx          context.Context
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.paymentRepo = new(MockPaymentRepository)
	s.currencyRepo = new(MockCurrencyRepository)
	s.events = relaxedEventSink()
	s.service = NewPaymentService(s.paymentRepo, s.currencyRepo, s.events).(*paymentService)
	s.ctx = context.Background()

	s.currencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").
		Return(domain.Currency{CurrencyCode: "USD", Precision: 2}, nil).Maybe()
}

func (s *PaymentServiceTestSuite) TestCreatePaymentStartsAsDraft() {
	s.paymentRepo.On("CreatePayment", mock.Anything, mock.Anything).Return(nil)

	payment, err := s.service.CreatePayment(s.ctx, dto.CreatePaymentRequest{
		ContactID:    "contact-1",
		CurrencyCode: "USD",
		Amount:       dec("1000.00"),
		PaymentDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}, "user-1")

	s.Require().NoError(err)
	s.Equal(domain.PaymentDraft, payment.Status)
	s.True(payment.AppliedAmount.IsZero())
	s.True(payment.UnappliedAmount().Equal(dec("1000.00")))
}

func (s *PaymentServiceTestSuite) TestCreatePaymentRejectsNonPositiveAmount() {
	_, err := s.service.CreatePayment(s.ctx, dto.CreatePaymentRequest{
		ContactID:    "contact-1",
		CurrencyCode: "USD",
		Amount:       dec("-10.00"),
		PaymentDate:  time.Now(),
	}, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *PaymentServiceTestSuite) TestPostPaymentTransitionsToPosted() {
	draft := domain.Payment{PaymentID: "pay-1", Status: domain.PaymentDraft, Amount: dec("500.00"), Version: 1}
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(draft, nil)
	s.paymentRepo.On("UpdatePayment", mock.Anything, mock.Anything).Return(int64(2), nil)

	payment, err := s.service.PostPayment(s.ctx, "pay-1", "user-1")

	s.Require().NoError(err)
	s.Equal(domain.PaymentPosted, payment.Status)
	s.EqualValues(2, payment.Version)
}

func (s *PaymentServiceTestSuite) TestPostPaymentTwiceFails() {
	posted := domain.Payment{PaymentID: "pay-1", Status: domain.PaymentPosted, Amount: dec("500.00"), Version: 2}
	s.paymentRepo.On("FindPaymentByID", mock.Anything, "pay-1").Return(posted, nil)

	_, err := s.service.PostPayment(s.ctx, "pay-1", "user-1")

	s.ErrorIs(err, ErrPaymentAlreadyPosted)
	s.paymentRepo.AssertNotCalled(s.T(), "UpdatePayment", mock.Anything, mock.Anything)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
