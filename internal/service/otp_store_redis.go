package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"referral-auth/internal/domain"
)

const otpKeyPrefix = "otp:"

// TTL ключа нужен только против бесконечного роста хранилища;
// актуальность кода проверяется через IsFresh при чтении
const otpKeyTTL = 24 * time.Hour

// RedisOTPStore - хранилище смс кодов в Redis, общее для всех воркеров
type RedisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

// Put сохраняет код, перезаписывая предыдущий для этого номера
func (s *RedisOTPStore) Put(ctx context.Context, phone, code string, issuedAt time.Time) error {
	payload, err := json.Marshal(OTPChallenge{Code: code, IssuedAt: issuedAt})
	if err != nil {
		return fmt.Errorf("failed to marshal otp challenge: %w", err)
	}

	if err := s.client.Set(ctx, otpKeyPrefix+phone, payload, otpKeyTTL).Err(); err != nil {
		return fmt.Errorf("failed to store otp challenge: %w", err)
	}
	return nil
}

// Get возвращает последний код для номера
func (s *RedisOTPStore) Get(ctx context.Context, phone string) (*OTPChallenge, error) {
	payload, err := s.client.Get(ctx, otpKeyPrefix+phone).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrOTPNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load otp challenge: %w", err)
	}

	var challenge OTPChallenge
	if err := json.Unmarshal(payload, &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp challenge: %w", err)
	}
	return &challenge, nil
}
