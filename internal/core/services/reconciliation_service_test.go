package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	bankTxnRepo *MockBankTransactionRepository
	events      *MockEventSink
	service     *reconciliationService
	ctx         context.Context
}

func (s *ReconciliationServiceTestSuite) SetupTest() {
	s.bankTxnRepo = new(MockBankTransactionRepository)
	s.events = relaxedEventSink()
	s.service = NewReconciliationService(s.bankTxnRepo, s.events).(*reconciliationService)
	s.ctx = context.Background()
}

func unreconciledTxn() domain.BankTransaction {
	return domain.BankTransaction{
		TransactionID:        "txn-1",
		BankAccountID:        "acct-1",
		TransactionDate:      time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		Amount:               dec("1250.00"),
		TransactionType:      domain.BankCredit,
		Description:          "wire transfer",
		ReconciliationStatus: domain.Unreconciled,
		Version:              1,
	}
}

func reconciledTxn() domain.BankTransaction {
	txn := unreconciledTxn()
	actor := "user-9"
	at := time.Date(2026, 2, 20, 9, 30, 0, 0, time.UTC)
	txn.ReconciliationStatus = domain.Reconciled
	txn.ReconciledByID = &actor
	txn.ReconciledAt = &at
	txn.ReconciliationNotes = "matched to deposit slip"
	txn.Version = 2
	return txn
}

func (s *ReconciliationServiceTestSuite) TestReconcileSetsAllFields() {
	s.bankTxnRepo.On("FindBankTransactionByID", mock.Anything, "txn-1").Return(unreconciledTxn(), nil)

	var saved domain.BankTransaction
	s.bankTxnRepo.On("UpdateBankTransaction", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.BankTransaction)
		}).Return(int64(2), nil)

	result, err := s.service.Reconcile(s.ctx, "txn-1", "matched statement line 4", "user-3")

	s.Require().NoError(err)
	s.Equal(domain.Reconciled, saved.ReconciliationStatus)
	s.Require().NotNil(saved.ReconciledByID)
	s.Equal("user-3", *saved.ReconciledByID)
	s.NotNil(saved.ReconciledAt)
	s.Equal("matched statement line 4", saved.ReconciliationNotes)
	s.Equal(domain.Reconciled, result.ReconciliationStatus)
	s.EqualValues(2, result.Version)
}

func (s *ReconciliationServiceTestSuite) TestReconcileTwiceRejectsAndKeepsOriginal() {
	txn := reconciledTxn()
	s.bankTxnRepo.On("FindBankTransactionByID", mock.Anything, "txn-1").Return(txn, nil)

	_, err := s.service.Reconcile(s.ctx, "txn-1", "second attempt", "user-4")

	s.ErrorIs(err, ErrAlreadyReconciled)
	s.bankTxnRepo.AssertNotCalled(s.T(), "UpdateBankTransaction", mock.Anything, mock.Anything)
}

func (s *ReconciliationServiceTestSuite) TestUnreconcileClearsAllFields() {
	s.bankTxnRepo.On("FindBankTransactionByID", mock.Anything, "txn-1").Return(reconciledTxn(), nil)

	var saved domain.BankTransaction
	s.bankTxnRepo.On("UpdateBankTransaction", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.BankTransaction)
		}).Return(int64(3), nil)

	result, err := s.service.Unreconcile(s.ctx, "txn-1", "user-3")

	s.Require().NoError(err)
	s.Equal(domain.Unreconciled, saved.ReconciliationStatus)
	s.Nil(saved.ReconciledByID)
	s.Nil(saved.ReconciledAt)
	s.Empty(saved.ReconciliationNotes)
	s.Equal(domain.Unreconciled, result.ReconciliationStatus)
	s.EqualValues(3, result.Version)
}

func (s *ReconciliationServiceTestSuite) TestUnreconcileUnreconciledFails() {
	s.bankTxnRepo.On("FindBankTransactionByID", mock.Anything, "txn-1").Return(unreconciledTxn(), nil)

	_, err := s.service.Unreconcile(s.ctx, "txn-1", "user-3")

	s.ErrorIs(err, ErrNotReconciled)
	s.bankTxnRepo.AssertNotCalled(s.T(), "UpdateBankTransaction", mock.Anything, mock.Anything)
}

func (s *ReconciliationServiceTestSuite) TestReconcileRetriesOnConflict() {
	s.bankTxnRepo.On("FindBankTransactionByID", mock.Anything, "txn-1").Return(unreconciledTxn(), nil)
	s.bankTxnRepo.On("UpdateBankTransaction", mock.Anything, mock.Anything).
		Return(int64(0), apperrors.ErrConflict).Once()
	s.bankTxnRepo.On("UpdateBankTransaction", mock.Anything, mock.Anything).
		Return(int64(2), nil).Once()

	_, err := s.service.Reconcile(s.ctx, "txn-1", "", "user-3")

	s.Require().NoError(err)
	s.bankTxnRepo.AssertNumberOfCalls(s.T(), "UpdateBankTransaction", 2)
}

func (s *ReconciliationServiceTestSuite) TestReconcileConflictThenAlreadyReconciled() {
	// Lose the race once, then re-read and find someone else got there first.
	s.bankTxnRepo.On("FindBankTransactionByID", mock.Anything, "txn-1").Return(unreconciledTxn(), nil).Once()
	s.bankTxnRepo.On("FindBankTransactionByID", mock.Anything, "txn-1").Return(reconciledTxn(), nil)
	s.bankTxnRepo.On("UpdateBankTransaction", mock.Anything, mock.Anything).Return(int64(0), apperrors.ErrConflict)

	_, err := s.service.Reconcile(s.ctx, "txn-1", "", "user-3")

	s.ErrorIs(err, ErrAlreadyReconciled)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
