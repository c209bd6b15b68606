package service

import (
	"context"
	"errors"
	"sync"

	"referral-auth/internal/domain"
)

// fakeUserRepo - потокобезопасная реализация UserRepository в памяти
// с той же compare-and-set семантикой активации, что и у БД
type fakeUserRepo struct {
	mu    sync.Mutex
	seq   uint
	users map[uint]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*domain.User)}
}

func (r *fakeUserRepo) addUser(phone, ownCode string) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user := &domain.User{ID: r.seq, PhoneNumber: phone, OwnReferralCode: ownCode}
	r.users[user.ID] = user
	return copyUser(user)
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	if u.InviterReferralCode != nil {
		code := *u.InviterReferralCode
		c.InviterReferralCode = &code
	}
	return &c
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (r *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.PhoneNumber == phone {
			return copyUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByReferralCode(_ context.Context, code string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.OwnReferralCode == code {
			return copyUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetOrCreate(_ context.Context, phone string, newCode func() string) (*domain.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.PhoneNumber == phone {
			return copyUser(user), false, nil
		}
	}
	r.seq++
	user := &domain.User{ID: r.seq, PhoneNumber: phone, OwnReferralCode: newCode()}
	r.users[user.ID] = user
	return copyUser(user), true, nil
}

func (r *fakeUserRepo) ListReferralPhones(_ context.Context, ownCode string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var phones []string
	for _, user := range r.users {
		if user.InviterReferralCode != nil && *user.InviterReferralCode == ownCode {
			phones = append(phones, user.PhoneNumber)
		}
	}
	return phones, nil
}

func (r *fakeUserRepo) UpdateContactInfo(_ context.Context, id uint, firstName, lastName, email *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}
	if email != nil {
		user.Email = *email
	}
	return nil
}

func (r *fakeUserRepo) ActivateReferral(_ context.Context, userID uint, code string, inviteePoints, inviterPoints uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if user.InviterReferralCode != nil {
		return domain.ErrReferralAlreadyActivated
	}

	var inviter *domain.User
	for _, u := range r.users {
		if u.OwnReferralCode == code {
			inviter = u
			break
		}
	}
	if inviter == nil {
		return domain.ErrReferralCodeNotFound
	}

	activated := code
	user.InviterReferralCode = &activated
	user.ReferralPoints += inviteePoints
	inviter.ReferralPoints += inviterPoints
	return nil
}

// fakeSMSSender записывает отправленные сообщения и умеет имитировать
// отказ провайдера
type fakeSMSSender struct {
	mu   sync.Mutex
	fail bool
	sent []string
}

func (s *fakeSMSSender) Send(_ context.Context, _, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("provider unavailable")
	}
	s.sent = append(s.sent, text)
	return nil
}

func (s *fakeSMSSender) lastSent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return ""
	}
	return s.sent[len(s.sent)-1]
}
