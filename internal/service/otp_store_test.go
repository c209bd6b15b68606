package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"referral-auth/internal/domain"
)

func TestMemoryOTPStoreGetMissing(t *testing.T) {
	store := NewMemoryOTPStore()

	_, err := store.Get(context.Background(), "+79991234567")
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestMemoryOTPStorePutGet(t *testing.T) {
	store := NewMemoryOTPStore()
	issuedAt := time.Now()

	require.NoError(t, store.Put(context.Background(), "+79991234567", "4821", issuedAt))

	challenge, err := store.Get(context.Background(), "+79991234567")
	require.NoError(t, err)
	assert.Equal(t, "4821", challenge.Code)
	assert.True(t, challenge.IssuedAt.Equal(issuedAt))
}

func TestMemoryOTPStoreOverwrite(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "+79991234567", "1111", time.Now()))
	require.NoError(t, store.Put(ctx, "+79991234567", "2222", time.Now()))

	challenge, err := store.Get(ctx, "+79991234567")
	require.NoError(t, err)
	assert.Equal(t, "2222", challenge.Code, "повторная отправка должна перезаписывать код")
}

func TestOTPChallengeFreshnessBoundary(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	challenge := &OTPChallenge{Code: "4821", IssuedAt: issuedAt}
	ttl := 300 * time.Second

	assert.True(t, challenge.IsFresh(issuedAt, ttl))
	assert.True(t, challenge.IsFresh(issuedAt.Add(250*time.Second), ttl))
	assert.True(t, challenge.IsFresh(issuedAt.Add(300*time.Second), ttl), "граница в 300 секунд включительна")
	assert.False(t, challenge.IsFresh(issuedAt.Add(301*time.Second), ttl))
}
