package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"referral-auth/internal/domain"
)

// Реферальные бонусы за активацию кода
const (
	InviteePoints = 100 // приглашенному
	InviterPoints = 200 // пригласившему
)

// ProfileService - профиль пользователя и активация реферального кода
type ProfileService struct {
	users UserRepository
	log   *zap.SugaredLogger
}

func NewProfileService(users UserRepository, log *zap.SugaredLogger) *ProfileService {
	return &ProfileService{users: users, log: log}
}

// GetProfile возвращает профиль пользователя со списком номеров его рефералов
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*domain.ProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := s.users.ListReferralPhones(ctx, user.OwnReferralCode)
	if err != nil {
		return nil, err
	}

	return &domain.ProfileResponse{
		FirstName:           user.FirstName,
		LastName:            user.LastName,
		Email:               user.Email,
		PhoneNumber:         user.PhoneNumber,
		MyReferralCode:      user.OwnReferralCode,
		Referrals:           referrals,
		ReferralPoints:      user.ReferralPoints,
		InviterReferralCode: user.InviterReferralCode,
	}, nil
}

// UpdateProfile обновляет контактные поля и, если передан реферальный код
// пригласителя, активирует его. Номер телефона и собственный реферальный
// код через профиль не изменяются.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, req *domain.UpdateProfileRequest) (*domain.ProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.InviterReferralCode != nil {
		if err := s.activateReferral(ctx, user, *req.InviterReferralCode); err != nil {
			return nil, err
		}
	}

	if req.FirstName != nil || req.LastName != nil || req.Email != nil {
		if err := s.users.UpdateContactInfo(ctx, userID, req.FirstName, req.LastName, req.Email); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}

// activateReferral проверяет реферальный код и один раз начисляет баллы.
// Порядок проверок: уже активирован -> код не существует -> собственный код ->
// взаимное приглашение. Все проверки идут до какой-либо мутации; сама запись
// защищена compare-and-set в хранилище, так что конкурирующие активации
// не приводят к двойному начислению.
func (s *ProfileService) activateReferral(ctx context.Context, user *domain.User, code string) error {
	if user.InviterReferralCode != nil {
		// повторная отправка того же кода - no-op, а не ошибка
		if *user.InviterReferralCode == code {
			return nil
		}
		return domain.ErrReferralAlreadyActivated
	}

	inviter, err := s.users.GetByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrReferralCodeNotFound
		}
		return err
	}

	if code == user.OwnReferralCode {
		return domain.ErrSelfReferral
	}

	if inviter.InviterReferralCode != nil && *inviter.InviterReferralCode == user.OwnReferralCode {
		return domain.ErrReciprocalReferral
	}

	err = s.users.ActivateReferral(ctx, user.ID, code, InviteePoints, InviterPoints)
	if errors.Is(err, domain.ErrReferralAlreadyActivated) {
		// проиграли гонку другой активации: если там оказался тот же код,
		// считаем запрос идемпотентным повтором
		fresh, getErr := s.users.GetByID(ctx, user.ID)
		if getErr != nil {
			return getErr
		}
		if fresh.InviterReferralCode != nil && *fresh.InviterReferralCode == code {
			return nil
		}
		return domain.ErrReferralAlreadyActivated
	}
	if err != nil {
		return err
	}

	s.log.Infof("Referral code %s activated by user %d, inviter %d", code, user.ID, inviter.ID)
	return nil
}
