package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"insureAdvisor/business/user"

	"github.com/redis/go-redis/v9"
)

// VerificationRepository keeps signup verification state in Redis so codes
// and verified markers expire on their own.
type VerificationRepository struct {
	client *redis.Client
}

func NewVerificationRepository(client *redis.Client) *VerificationRepository {
	return &VerificationRepository{
		client: client,
	}
}

func pendingKey(email string) string {
	return fmt.Sprintf("verify:pending:%s", email)
}

func verifiedKey(email string) string {
	return fmt.Sprintf("verify:done:%s", email)
}

func (r *VerificationRepository) StorePending(ctx context.Context, email string, pending user.PendingVerification, ttl time.Duration) error {
	jsonData, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to marshal verification data: %w", err)
	}

	err = r.client.Set(ctx, pendingKey(email), jsonData, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store verification code in Redis: %w", err)
	}

	return nil
}

func (r *VerificationRepository) GetPending(ctx context.Context, email string) (user.PendingVerification, error) {
	val, err := r.client.Get(ctx, pendingKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return user.PendingVerification{}, errors.New("verification code not found")
		}
		return user.PendingVerification{}, fmt.Errorf("failed to get verification code from Redis: %w", err)
	}

	var pending user.PendingVerification
	if err := json.Unmarshal([]byte(val), &pending); err != nil {
		return user.PendingVerification{}, fmt.Errorf("failed to unmarshal verification data: %w", err)
	}

	return pending, nil
}

// MarkVerified consumes the pending code and leaves a verified marker whose
// value is the user type chosen at signup.
func (r *VerificationRepository) MarkVerified(ctx context.Context, email, userType string, ttl time.Duration) error {
	err := r.client.Set(ctx, verifiedKey(email), userType, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store verified marker in Redis: %w", err)
	}

	if err := r.client.Del(ctx, pendingKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to delete pending code: %w", err)
	}

	return nil
}

func (r *VerificationRepository) GetVerified(ctx context.Context, email string) (string, error) {
	val, err := r.client.Get(ctx, verifiedKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.New("email not verified or verification expired")
		}
		return "", fmt.Errorf("failed to get verified marker from Redis: %w", err)
	}

	return val, nil
}

func (r *VerificationRepository) Delete(ctx context.Context, email string) error {
	err := r.client.Del(ctx, pendingKey(email), verifiedKey(email)).Err()
	if err != nil {
		return fmt.Errorf("failed to delete verification records: %w", err)
	}

	return nil
}
