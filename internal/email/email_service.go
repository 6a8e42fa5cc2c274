package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type Service interface {
	SendResetPasswordEmail(ctx context.Context, to, userName, resetLink string) error
	SendOrderNotification(ctx context.Context, to, customerName string, itemCount int, total float64) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	baseURL   string
}

func NewResendServiceFromEnv() (Service, error) {
	apiKey := strings.Trim(os.Getenv("RESEND_API_KEY"), "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}

	from := strings.TrimSpace(strings.Trim(os.Getenv("RESEND_FROM_EMAIL"), "\""))
	if from == "" {
		from = "onboarding@resend.dev"
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		baseURL:   "https://api.resend.com",
	}, nil
}

func NewNoopService() Service {
	return &noopService{}
}

func (s *resendService) SendResetPasswordEmail(ctx context.Context, to, userName, resetLink string) error {
	html := fmt.Sprintf(
		"<p>Xin chào %s,</p><p>Nhấn vào liên kết sau để đặt lại mật khẩu của bạn:</p><p><a href=\"%s\">Đặt lại mật khẩu</a></p>",
		userName,
		resetLink,
	)
	return s.send(ctx, to, "Đặt lại mật khẩu - Việt Xanh", html)
}

func (s *resendService) SendOrderNotification(ctx context.Context, to, customerName string, itemCount int, total float64) error {
	html := fmt.Sprintf(
		"<p>Đơn hàng mới từ %s.</p><p>Số sản phẩm: %d</p><p>Tổng cộng: %.0f₫</p>",
		customerName,
		itemCount,
		total,
	)
	return s.send(ctx, to, "Đơn hàng mới - Việt Xanh", html)
}

func (s *resendService) send(ctx context.Context, to, subject, html string) error {
	payload := map[string]any{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, string(respBody))
	}

	return nil
}

type noopService struct{}

func (s *noopService) SendResetPasswordEmail(ctx context.Context, to, userName, resetLink string) error {
	return nil
}

func (s *noopService) SendOrderNotification(ctx context.Context, to, customerName string, itemCount int, total float64) error {
	return nil
}
