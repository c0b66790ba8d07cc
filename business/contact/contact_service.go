package contact

import (
	"context"
	"time"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"

	"github.com/google/uuid"
)

// InquiryRepository contract interface
type InquiryRepository interface {
	Save(ctx context.Context, inquiry *domain.Inquiry) error
}

type InquiryInput struct {
	ContactName     string
	Phone           string
	Email           string
	Address         string
	AdditionalNotes string
}

type ContactService struct {
	inquiryRepo InquiryRepository
}

func NewContactService(inquiryRepo InquiryRepository) *ContactService {
	return &ContactService{inquiryRepo: inquiryRepo}
}

func (s *ContactService) Submit(ctx context.Context, userID uint, email string, in InquiryInput) (domain.Inquiry, error) {
	inquiry := domain.Inquiry{
		ID:              uuid.NewString(),
		UserID:          userID,
		ContactName:     in.ContactName,
		Phone:           in.Phone,
		Email:           in.Email,
		Address:         in.Address,
		AdditionalNotes: in.AdditionalNotes,
		CreatedAt:       time.Now(),
	}

	if err := s.inquiryRepo.Save(ctx, &inquiry); err != nil {
		logger.Error("Failed to submit inquiry", err, "email", email)
		return domain.Inquiry{}, err
	}

	logger.Info("Contact inquiry submitted", "email", email, "inquiry_id", inquiry.ID)
	return inquiry, nil
}
