package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const defaultChapaBaseURL = "https://api.chapa.co/v1"

type Customization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type InitializeRequest struct {
	Amount        string        `json:"amount"`
	Currency      string        `json:"currency"`
	Email         string        `json:"email"`
	PhoneNumber   string        `json:"phone_number"`
	Customization Customization `json:"customization"`
}

type InitializeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    struct {
		CheckoutURL string `json:"checkout_url"`
		Reference   string `json:"reference"`
	} `json:"data"`
}

// GatewayError carries the upstream status and body for any non-200
// response from the payment initializer.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway returned status %d: %s", e.StatusCode, e.Body)
}

// Initiator is the single outbound payment capability. Tests inject a stub
// instead of the live Chapa transport.
type Initiator interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error)
}

type ChapaService struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

func NewChapaService(baseURL, secretKey string) *ChapaService {
	if baseURL == "" {
		baseURL = defaultChapaBaseURL
	}

	return &ChapaService{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *ChapaService) Initialize(ctx context.Context, payload InitializeRequest) (*InitializeResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initialize payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/transaction/initialize", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create initialize request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Chapa API error: status %d, body: %s", resp.StatusCode, string(respBody))
		return nil, &GatewayError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var initResponse InitializeResponse
	if err := json.Unmarshal(respBody, &initResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gateway response: %v", err)
	}

	return &initResponse, nil
}
