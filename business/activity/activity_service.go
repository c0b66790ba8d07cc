package activity

import (
	"context"
	"time"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"

	"github.com/google/uuid"
)

// ActivityRepository contract interface
type ActivityRepository interface {
	Save(ctx context.Context, activity *domain.Activity) error
	FindByUserID(ctx context.Context, userID uint) ([]domain.Activity, error)
}

type LogInput struct {
	Type        string
	Title       string
	Description string
	Date        time.Time
	Page        string
}

type ActivityService struct {
	activityRepo ActivityRepository
}

func NewActivityService(activityRepo ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

func (s *ActivityService) Log(ctx context.Context, userID uint, email string, in LogInput) (domain.Activity, error) {
	activity := domain.Activity{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Page:        in.Page,
	}

	if err := s.activityRepo.Save(ctx, &activity); err != nil {
		logger.Error("Failed to log activity", err, "email", email, "type", in.Type)
		return domain.Activity{}, err
	}

	logger.Info("Activity logged", "email", email, "activity_id", activity.ID)
	return activity, nil
}

func (s *ActivityService) ListByUser(ctx context.Context, userID uint) ([]domain.Activity, error) {
	activities, err := s.activityRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to fetch activities", err, "user_id", userID)
		return nil, err
	}

	return activities, nil
}
