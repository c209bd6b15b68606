package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"referral-auth/internal/domain"
)

// AuthService - авторизация по номеру телефона: отправка и проверка смс кода
type AuthService struct {
	users      UserRepository
	otp        OTPStore
	codes      *CodeGenerator
	sms        SMSSender
	tokens     *TokenIssuer
	log        *zap.SugaredLogger
	codeTTL    time.Duration
	smsTimeout time.Duration
	now        func() time.Time
}

func NewAuthService(
	users UserRepository,
	otp OTPStore,
	codes *CodeGenerator,
	sms SMSSender,
	tokens *TokenIssuer,
	log *zap.SugaredLogger,
	codeTTL time.Duration,
	smsTimeout time.Duration,
) *AuthService {
	return &AuthService{
		users:      users,
		otp:        otp,
		codes:      codes,
		sms:        sms,
		tokens:     tokens,
		log:        log,
		codeTTL:    codeTTL,
		smsTimeout: smsTimeout,
		now:        time.Now,
	}
}

// WithClock подменяет источник времени, используется в тестах
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// RequestCode генерирует смс код, отправляет его и сохраняет в хранилище.
// Код сохраняется только после успешной отправки: неудачная доставка
// не трогает ранее выданный код.
func (s *AuthService) RequestCode(ctx context.Context, phone string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}

	code := s.codes.SMSCode()

	sendCtx, cancel := context.WithTimeout(ctx, s.smsTimeout)
	defer cancel()
	if err := s.sms.Send(sendCtx, phone, fmt.Sprintf("Ваш смс код: %s", code)); err != nil {
		s.log.Errorf("Failed to deliver sms code to %s: %v", phone, err)
		return domain.ErrSMSDeliveryFailed
	}

	if err := s.otp.Put(ctx, phone, code, s.now()); err != nil {
		return err
	}

	s.log.Infof("SMS code sent to %s", phone)
	return nil
}

// VerifyResult - результат успешной проверки смс кода
type VerifyResult struct {
	AccessToken string
	UserID      uint
	IsNewUser   bool
}

// VerifyCode проверяет смс код и возвращает bearer токен. Для нового номера
// создается пользователь со свежим реферальным кодом. Номер и код проверяются
// как пара: несовпадение кода неотличимо от отсутствия кода для номера.
func (s *AuthService) VerifyCode(ctx context.Context, phone, code string) (*VerifyResult, error) {
	if err := ValidatePhone(phone); err != nil {
		return nil, err
	}
	if err := ValidateSMSCode(code); err != nil {
		return nil, err
	}

	challenge, err := s.otp.Get(ctx, phone)
	if err != nil {
		return nil, err
	}
	if challenge.Code != code {
		return nil, domain.ErrOTPNotFound
	}
	if !challenge.IsFresh(s.now(), s.codeTTL) {
		return nil, domain.ErrOTPExpired
	}

	user, created, err := s.users.GetOrCreate(ctx, phone, s.codes.ReferralCode)
	if err != nil {
		return nil, err
	}
	if created {
		s.log.Infof("New user created: id=%d, phone=%s", user.ID, user.PhoneNumber)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &VerifyResult{
		AccessToken: token,
		UserID:      user.ID,
		IsNewUser:   created,
	}, nil
}
