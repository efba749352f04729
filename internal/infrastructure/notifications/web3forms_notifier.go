package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"plotsite/internal/domain/entities"
	"plotsite/internal/usecase/interfaces"
)

var (
	ErrMissingWeb3FormsAccessKey = errors.New("missing WEB3FORMS_ACCESS_KEY")
	ErrRelayRejected             = errors.New("form relay rejected the submission")
)

// Web3FormsNotifier relays an inquiry through the Web3Forms submit endpoint,
// which mails it to the address bound to the access key.
type Web3FormsNotifier struct {
	endpoint   string
	accessKey  string
	fromName   string
	httpClient *http.Client
}

var _ interfaces.INotifier = (*Web3FormsNotifier)(nil)

func NewWeb3FormsNotifier(endpoint, accessKey, fromName string) (*Web3FormsNotifier, error) {
	if accessKey == "" {
		log.Printf("[notify][web3forms] missing access key")
		return nil, ErrMissingWeb3FormsAccessKey
	}
	return &Web3FormsNotifier{
		endpoint:   endpoint,
		accessKey:  accessKey,
		fromName:   fromName,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type web3FormsRequest struct {
	AccessKey  string `json:"access_key"`
	Subject    string `json:"subject"`
	FromName   string `json:"from_name"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	PlotNumber string `json:"plotNumber"`
}

type web3FormsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (n *Web3FormsNotifier) Notify(ctx context.Context, msg entities.Notification) error {
	body, err := json.Marshal(web3FormsRequest{
		AccessKey:  n.accessKey,
		Subject:    msg.Subject,
		FromName:   n.fromName,
		Name:       msg.Name,
		Email:      msg.Email,
		Phone:      msg.Phone,
		Message:    msg.Message,
		PlotNumber: msg.PlotNumber,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Web3Forms: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Web3Forms reports the outcome in the body; the status code alone is
	// not enough.
	var out web3FormsResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("%w: status=%d", ErrRelayRejected, resp.StatusCode)
	}
	if !out.Success {
		log.Printf("[notify][web3forms] rejected inquiry_id=%s status=%d message=%q", msg.InquiryID, resp.StatusCode, out.Message)
		return fmt.Errorf("%w: %s", ErrRelayRejected, out.Message)
	}
	log.Printf("[notify][web3forms] sent inquiry_id=%s", msg.InquiryID)
	return nil
}
