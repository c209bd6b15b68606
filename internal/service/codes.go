package service

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

const referralCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const referralCodeLength = 6

// CodeGenerator генерирует смс коды и реферальные коды.
// Источник случайности внедряется, чтобы тесты могли задать детерминированный.
type CodeGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewCodeGenerator создает генератор; при src == nil используется
// источник со временем в качестве seed
func NewCodeGenerator(src rand.Source) *CodeGenerator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &CodeGenerator{rnd: rand.New(src)}
}

// SMSCode возвращает четырехзначный код в диапазоне [1000, 9999]
func (g *CodeGenerator) SMSCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return strconv.Itoa(1000 + g.rnd.Intn(9000))
}

// ReferralCode возвращает шестизначный код из букв и цифр
func (g *CodeGenerator) ReferralCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	code := make([]byte, referralCodeLength)
	for i := range code {
		code[i] = referralCodeAlphabet[g.rnd.Intn(len(referralCodeAlphabet))]
	}
	return string(code)
}
