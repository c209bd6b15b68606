package service

import (
	"context"
	"sync"
	"time"

	"referral-auth/internal/domain"
)

// OTPChallenge - последний выданный смс код для номера телефона
type OTPChallenge struct {
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
}

// IsFresh сообщает, действует ли еще код: окно включает саму границу,
// т.е. код возрастом ровно ttl еще действителен
func (c *OTPChallenge) IsFresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(c.IssuedAt) <= ttl
}

// OTPStore хранит по одному коду на номер телефона. Повторная отправка
// безусловно перезаписывает предыдущий код. Истекшие коды не удаляются
// при проверке - они просто перестают проходить IsFresh.
type OTPStore interface {
	Put(ctx context.Context, phone, code string, issuedAt time.Time) error
	Get(ctx context.Context, phone string) (*OTPChallenge, error)
}

// Коды старше staleAfter давно бесполезны и вычищаются фоном,
// чтобы хранилище не росло бесконечно
const (
	staleAfter      = time.Hour
	cleanupInterval = 5 * time.Minute
)

// MemoryOTPStore - хранилище кодов в памяти, для разработки и тестов
type MemoryOTPStore struct {
	mu    sync.RWMutex
	codes map[string]OTPChallenge
}

// NewMemoryOTPStore создает хранилище и запускает фоновую очистку
func NewMemoryOTPStore() *MemoryOTPStore {
	store := &MemoryOTPStore{
		codes: make(map[string]OTPChallenge),
	}

	go store.cleanupStale()

	return store
}

// Put сохраняет код, перезаписывая предыдущий для этого номера
func (s *MemoryOTPStore) Put(_ context.Context, phone, code string, issuedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[phone] = OTPChallenge{Code: code, IssuedAt: issuedAt}
	return nil
}

// Get возвращает последний код для номера
func (s *MemoryOTPStore) Get(_ context.Context, phone string) (*OTPChallenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	challenge, exists := s.codes[phone]
	if !exists {
		return nil, domain.ErrOTPNotFound
	}
	return &challenge, nil
}

// cleanupStale периодически удаляет давно истекшие коды
func (s *MemoryOTPStore) cleanupStale() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for phone, challenge := range s.codes {
			if now.Sub(challenge.IssuedAt) > staleAfter {
				delete(s.codes, phone)
			}
		}
		s.mu.Unlock()
	}
}
