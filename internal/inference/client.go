// SPDX-License-Identifier: EPL-2.0

// Package inference is a client for the emotion inference service
// (POST /predict, GET /health).
package inference

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	PredictPath         = "/predict"
	FederatedUpdatePath = "/federated-update"
	HealthPath          = "/health"
)

// PredictRequest is the body the service expects: a WAV file, base64 encoded.
type PredictRequest struct {
	UserID    string `json:"userId,omitempty"`
	AudioData string `json:"audioData"`
}

type MentalHealth struct {
	Status     string `json:"status"`
	Severity   string `json:"severity"`
	Suggestion string `json:"suggestion"`
}

type Prediction struct {
	Emotion              string       `json:"emotion"`
	Confidence           float64      `json:"confidence"`
	MentalHealth         MentalHealth `json:"mentalHealth"`
	Timestamp            *string      `json:"timestamp"`
	RequiresConfirmation bool         `json:"requiresConfirmation"`
	ModelVersion         string       `json:"modelVersion"`
}

type Health struct {
	Status            string   `json:"status"`
	ModelLoaded       bool     `json:"model_loaded"`
	SupportedEmotions []string `json:"supported_emotions"`
}

// errorBody is the service's failure shape.
type errorBody struct {
	Error string `json:"error"`
}

// Response is an upstream reply as received.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsJSON reports whether Body parses as JSON.
func (r *Response) IsJSON() bool {
	return json.Valid(r.Body)
}

// Options tune the client. Zero values fall back to the defaults.
type Options struct {
	Timeout time.Duration
	Retries int
}

const DefaultTimeout = 30 * time.Second

// Client talks to one inference service. It is safe for concurrent use.
type Client struct {
	http *resty.Client
}

// New returns a client for the service at baseURL (e.g. http://localhost:5000).
func New(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetLogger(slogAdapter{logger: slog.Default().With("component", "inference")})

	if opts.Retries > 0 {
		c.SetRetryCount(opts.Retries).
			SetRetryWaitTime(100 * time.Millisecond).
			SetRetryMaxWaitTime(time.Second)
	}

	return &Client{http: c}
}

// Forward posts a raw JSON body to path and returns the reply whatever its
// status. Only transport failures are errors.
func (c *Client) Forward(ctx context.Context, path string, body []byte) (*Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%w: POST %s: %w", ErrUnavailable, path, err)
	}

	return &Response{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}, nil
}

// Predict sends an encoded WAV file for classification.
func (c *Client) Predict(ctx context.Context, userID string, wav []byte) (*Prediction, error) {
	var (
		out     Prediction
		failure errorBody
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(PredictRequest{
			UserID:    userID,
			AudioData: base64.StdEncoding.EncodeToString(wav),
		}).
		SetResult(&out).
		SetError(&failure).
		Post(PredictPath)
	if err != nil {
		return nil, fmt.Errorf("%w: POST %s: %w", ErrUnavailable, PredictPath, err)
	}

	if err := checkStatus(resp, failure); err != nil {
		return nil, err
	}

	return &out, nil
}

// Health reads the service status.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var (
		out     Health
		failure errorBody
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&failure).
		Get(HealthPath)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrUnavailable, HealthPath, err)
	}

	if err := checkStatus(resp, failure); err != nil {
		return nil, err
	}

	return &out, nil
}

func checkStatus(resp *resty.Response, failure errorBody) error {
	if resp.IsSuccess() {
		return nil
	}

	msg := failure.Error
	if msg == "" {
		msg = strings.TrimSpace(string(resp.Body()))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	return &StatusError{StatusCode: resp.StatusCode(), Message: msg}
}
