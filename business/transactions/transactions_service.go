package transactions

import (
	"context"
	"time"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"

	"github.com/google/uuid"
)

// TransactionRepository contract interface
type TransactionRepository interface {
	Save(ctx context.Context, tx *domain.Transaction) error
	FindByUserID(ctx context.Context, userID uint) ([]domain.Transaction, error)
}

type PaymentInput struct {
	PolicyID      string
	Amount        float64
	PaymentMethod string
	ProviderRef   string
}

type TransactionsService struct {
	txRepo TransactionRepository
}

func NewTransactionsService(txRepo TransactionRepository) *TransactionsService {
	return &TransactionsService{txRepo: txRepo}
}

// ProcessPayment records a simulated, immediately-completed payment. There
// is no payment gateway behind this; the provider reference is carried
// through for reconciliation with the upstream simulator.
func (s *TransactionsService) ProcessPayment(ctx context.Context, userID uint, email string, in PaymentInput) (domain.Transaction, error) {
	providerRef := in.ProviderRef
	if providerRef == "" {
		providerRef = "simulated_ref"
	}

	tx := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		PolicyID:      in.PolicyID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Status:        "completed",
		ProviderRef:   providerRef,
		CreatedAt:     time.Now(),
	}

	if err := s.txRepo.Save(ctx, &tx); err != nil {
		logger.Error("Failed to record payment", err, "email", email, "policy_id", in.PolicyID)
		return domain.Transaction{}, err
	}

	logger.Info("Payment recorded", "email", email, "transaction_id", tx.TransactionID)
	return tx, nil
}

func (s *TransactionsService) ListByUser(ctx context.Context, userID uint) ([]domain.Transaction, error) {
	txs, err := s.txRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to fetch transactions", err, "user_id", userID)
		return nil, err
	}

	return txs, nil
}
