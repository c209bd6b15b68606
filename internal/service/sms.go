package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SMSSender отправляет текст на номер телефона
type SMSSender interface {
	Send(ctx context.Context, phone, text string) error
}

// LogSMSSender пишет сообщение в лог вместо реальной отправки,
// используется когда Twilio credentials не заданы
type LogSMSSender struct {
	log *zap.SugaredLogger
}

func NewLogSMSSender(log *zap.SugaredLogger) *LogSMSSender {
	return &LogSMSSender{log: log}
}

func (s *LogSMSSender) Send(_ context.Context, phone, text string) error {
	s.log.Infof("SMS to %s: %s", phone, text)
	return nil
}

// TwilioSMSSender отправляет смс через Twilio REST API
type TwilioSMSSender struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	APIURL     string
	HTTPClient *http.Client
}

func NewTwilioSMSSender(accountSID, authToken, fromNumber string) *TwilioSMSSender {
	return &TwilioSMSSender{
		AccountSID: accountSID,
		AuthToken:  authToken,
		FromNumber: fromNumber,
		APIURL:     "https://api.twilio.com/2010-04-01",
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *TwilioSMSSender) Send(ctx context.Context, phone, text string) error {
	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", s.FromNumber)
	form.Set("Body", text)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.APIURL, s.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.AccountSID, s.AuthToken)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio api error: %s (status: %d)", string(body), resp.StatusCode)
	}
	return nil
}
