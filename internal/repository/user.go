package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"referral-auth/internal/domain"
)

// Сколько раз пробуем выделить уникальный реферальный код при создании
const createAttempts = 5

// GormUserRepository - хранилище пользователей в PostgreSQL
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("phone_number = ?", phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("own_referral_code = ?", code).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreate возвращает пользователя по номеру, создавая его при первом
// входе. Гонка двух воркеров на одном номере разрешается уникальным индексом:
// проигравший перечитывает созданную запись. Конфликт реферального кода
// повторяется со свежим кодом.
func (r *GormUserRepository) GetOrCreate(ctx context.Context, phone string, newCode func() string) (*domain.User, bool, error) {
	user, err := r.GetByPhone(ctx, phone)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, err
	}

	for attempt := 0; attempt < createAttempts; attempt++ {
		created := &domain.User{
			PhoneNumber:     phone,
			OwnReferralCode: newCode(),
		}
		err := r.db.WithContext(ctx).Create(created).Error
		if err == nil {
			return created, true, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if existing, getErr := r.GetByPhone(ctx, phone); getErr == nil {
				return existing, false, nil
			}
			// конфликт по реферальному коду - пробуем со свежим
			continue
		}
		return nil, false, err
	}
	return nil, false, fmt.Errorf("failed to allocate a unique referral code after %d attempts", createAttempts)
}

func (r *GormUserRepository) ListReferralPhones(ctx context.Context, ownCode string) ([]string, error) {
	var phones []string
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("inviter_referral_code = ?", ownCode).
		Pluck("phone_number", &phones).Error
	if err != nil {
		return nil, err
	}
	return phones, nil
}

func (r *GormUserRepository) UpdateContactInfo(ctx context.Context, id uint, firstName, lastName, email *string) error {
	updates := map[string]interface{}{}
	if firstName != nil {
		updates["first_name"] = *firstName
	}
	if lastName != nil {
		updates["last_name"] = *lastName
	}
	if email != nil {
		updates["email"] = *email
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ActivateReferral выполняет начисление баллов одной транзакцией.
// Первая запись - compare-and-set: inviter_referral_code устанавливается
// только если он еще NULL, поэтому из конкурирующих активаций баллы начислит
// ровно одна.
func (r *GormUserRepository) ActivateReferral(ctx context.Context, userID uint, code string, inviteePoints, inviterPoints uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.User{}).
			Where("id = ? AND inviter_referral_code IS NULL", userID).
			Updates(map[string]interface{}{
				"inviter_referral_code": code,
				"referral_points":       gorm.Expr("referral_points + ?", inviteePoints),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrReferralAlreadyActivated
		}

		res = tx.Model(&domain.User{}).
			Where("own_referral_code = ?", code).
			Update("referral_points", gorm.Expr("referral_points + ?", inviterPoints))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// владелец кода исчез между проверкой и записью - откатываем все
			return domain.ErrReferralCodeNotFound
		}
		return nil
	})
}
