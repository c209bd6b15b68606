package service

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSCodeRange(t *testing.T) {
	gen := NewCodeGenerator(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		code := gen.SMSCode()
		require.Len(t, code, 4)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestSMSCodeDeterministicSource(t *testing.T) {
	a := NewCodeGenerator(rand.NewSource(42))
	b := NewCodeGenerator(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.SMSCode(), b.SMSCode())
	}
}

func TestReferralCode(t *testing.T) {
	gen := NewCodeGenerator(rand.NewSource(7))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := gen.ReferralCode()
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(referralCodeAlphabet, r), "unexpected character %q in code %s", r, code)
		}
		seen[code] = true
	}
	// коллизии на 100 кодах из 62^6 вариантов практически исключены
	assert.Len(t, seen, 100)
}
