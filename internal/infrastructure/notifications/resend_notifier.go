package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"

	"plotsite/internal/domain/entities"
	"plotsite/internal/usecase/interfaces"
)

var (
	ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")
	ErrMissingRecipients   = errors.New("missing INQUIRY_EMAIL_TO")
	ErrEmailProvider       = errors.New("email provider error")
)

var inquiryEmailTemplate = template.Must(template.New("inquiry").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a1a; border-bottom: 3px solid #f59e0b; padding-bottom: 10px;">New Plot Inquiry</h2>
  <div style="background: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    {{if .Email}}<p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>{{end}}
    <p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
    {{if .PlotNumber}}<p><strong>Plot:</strong> {{.PlotNumber}}</p>{{end}}
    {{if .Message}}<p><strong>Message:</strong><br/>{{.Message}}</p>{{end}}
  </div>
  <p style="color: #6b7280; font-size: 14px;">-- {{.FromName}} Inquiry System</p>
</div>`))

// ResendNotifier formats the inquiry as an HTML email and sends it through
// the Resend API with a bearer key.
type ResendNotifier struct {
	endpoint   string
	apiKey     string
	from       string
	to         []string
	fromName   string
	httpClient *http.Client
}

var _ interfaces.INotifier = (*ResendNotifier)(nil)

func NewResendNotifier(endpoint, apiKey, from string, to []string, fromName string) (*ResendNotifier, error) {
	if apiKey == "" {
		log.Printf("[notify][resend] missing api key")
		return nil, ErrMissingResendAPIKey
	}
	if len(to) == 0 {
		return nil, ErrMissingRecipients
	}
	return &ResendNotifier{
		endpoint:   endpoint,
		apiKey:     apiKey,
		from:       from,
		to:         to,
		fromName:   fromName,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

func (n *ResendNotifier) Notify(ctx context.Context, msg entities.Notification) error {
	html, err := renderInquiryEmail(msg, n.fromName)
	if err != nil {
		return err
	}
	body, err := json.Marshal(resendRequest{
		From:    n.from,
		To:      n.to,
		Subject: msg.Subject,
		HTML:    html,
		ReplyTo: msg.Email,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.apiKey)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[notify][resend] api error inquiry_id=%s status=%d", msg.InquiryID, resp.StatusCode)
		return fmt.Errorf("%w: status=%d body=%s", ErrEmailProvider, resp.StatusCode, raw)
	}
	log.Printf("[notify][resend] sent inquiry_id=%s", msg.InquiryID)
	return nil
}

func renderInquiryEmail(msg entities.Notification, fromName string) (string, error) {
	var buf bytes.Buffer
	err := inquiryEmailTemplate.Execute(&buf, struct {
		entities.Notification
		FromName string
	}{msg, fromName})
	if err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return buf.String(), nil
}
