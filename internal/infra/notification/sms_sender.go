package notification

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nadoran78/mytable/config"
	"github.com/nadoran78/mytable/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultSMSTimeout = 5 * time.Second

// smsSender talks to a CoolSMS-compatible REST gateway (messages/v4/send).
type smsSender struct {
	endpoint     string
	apiKey       string
	apiSecret    string
	callerNumber string
	httpClient   *http.Client
	now          func() time.Time
	logger       *slog.Logger
}

type smsRequest struct {
	Message smsMessage `json:"message"`
}

type smsMessage struct {
	To   string `json:"to"`
	From string `json:"from"`
	Text string `json:"text"`
}

// NewSMSSender builds the gateway client from the sms config section.
func NewSMSSender(cfg *config.Config, logger *slog.Logger) (service.SMSSender, error) {
	if cfg.SMS == nil || cfg.SMS.Endpoint == "" {
		return nil, errors.New("sms endpoint is required")
	}

	timeout := cfg.SMS.Timeout
	if timeout <= 0 {
		timeout = defaultSMSTimeout
	}

	return &smsSender{
		endpoint:     cfg.SMS.Endpoint,
		apiKey:       cfg.SMS.APIKey,
		apiSecret:    cfg.SMS.APISecret,
		callerNumber: normalizePhone(cfg.SMS.CallerNumber),
		httpClient:   &http.Client{Timeout: timeout},
		now:          time.Now,
		logger:       logger,
	}, nil
}

// SendOne sends one text message. Dashes are stripped from the recipient number.
func (s *smsSender) SendOne(ctx context.Context, phone, text string) error {
	body, err := json.Marshal(smsRequest{Message: smsMessage{
		To:   normalizePhone(phone),
		From: s.callerNumber,
		Text: text,
	}})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	authorization, err := s.authorization()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", authorization)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "sms gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("sms gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	s.logger.Debug("SMS accepted by gateway", slog.Int("status", resp.StatusCode))

	return nil
}

// authorization signs date+salt with the API secret (HMAC-SHA256).
func (s *smsSender) authorization() (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate sms salt")
	}
	saltHex := hex.EncodeToString(salt)
	date := s.now().UTC().Format(time.RFC3339)

	mac := hmac.New(sha256.New, []byte(s.apiSecret))
	mac.Write([]byte(date + saltHex))
	signature := hex.EncodeToString(mac.Sum(nil))

	return fmt.Sprintf("HMAC-SHA256 apiKey=%s, date=%s, salt=%s, signature=%s", s.apiKey, date, saltHex, signature), nil
}

func normalizePhone(phone string) string {
	return strings.ReplaceAll(strings.TrimSpace(phone), "-", "")
}
