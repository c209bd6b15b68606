package service

import (
	"context"

	"referral-auth/internal/domain"
)

// UserRepository - хранилище пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.User, error)

	// GetOrCreate возвращает пользователя по номеру телефона, создавая его при
	// необходимости. newCode вызывается для каждой попытки выделить уникальный
	// собственный реферальный код. Второй результат - true, если пользователь
	// был создан этим вызовом.
	GetOrCreate(ctx context.Context, phone string, newCode func() string) (*domain.User, bool, error)

	// ListReferralPhones возвращает номера телефонов пользователей,
	// активировавших указанный реферальный код
	ListReferralPhones(ctx context.Context, ownCode string) ([]string, error)

	// UpdateContactInfo обновляет только переданные (не-nil) контактные поля
	UpdateContactInfo(ctx context.Context, id uint, firstName, lastName, email *string) error

	// ActivateReferral атомарно устанавливает inviter_referral_code и начисляет
	// баллы обеим сторонам. Запись проходит только если код еще не был
	// установлен (compare-and-set), иначе возвращается
	// domain.ErrReferralAlreadyActivated. Обе мутации выполняются в одной
	// транзакции: либо начисляются оба бонуса, либо ни одного.
	ActivateReferral(ctx context.Context, userID uint, code string, inviteePoints, inviterPoints uint) error
}
