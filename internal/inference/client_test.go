// SPDX-License-Identifier: EPL-2.0

package inference

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const predictionJSON = `{
	"emotion": "happy",
	"confidence": 0.91,
	"mentalHealth": {"status": "positive", "severity": "none", "suggestion": "Keep it up"},
	"timestamp": null,
	"requiresConfirmation": true,
	"modelVersion": "VoiceBasedEmotionClassifier_v1.0"
}`

func newService(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return New(srv.URL+"/", Options{Timeout: 5 * time.Second})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestClient_Predict(t *testing.T) {
	t.Parallel()

	wav := []byte("RIFF....WAVE")

	c := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != PredictPath {
			t.Errorf("request = %s %s, want POST %s", r.Method, r.URL.Path, PredictPath)
		}

		var req PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.UserID != "user-1" {
			t.Errorf("userId = %q, want user-1", req.UserID)
		}
		if got, _ := base64.StdEncoding.DecodeString(req.AudioData); string(got) != string(wav) {
			t.Errorf("audioData decodes to %q, want %q", got, wav)
		}

		writeJSON(w, http.StatusOK, predictionJSON)
	})

	got, err := c.Predict(t.Context(), "user-1", wav)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	if got.Emotion != "happy" || got.Confidence != 0.91 {
		t.Errorf("Predict() = %s %.2f, want happy 0.91", got.Emotion, got.Confidence)
	}
	if got.MentalHealth.Status != "positive" || got.MentalHealth.Suggestion != "Keep it up" {
		t.Errorf("MentalHealth = %+v", got.MentalHealth)
	}
	if got.Timestamp != nil {
		t.Errorf("Timestamp = %v, want nil", *got.Timestamp)
	}
	if !got.RequiresConfirmation || got.ModelVersion != "VoiceBasedEmotionClassifier_v1.0" {
		t.Errorf("Predict() = %+v", got)
	}
}

func TestClient_PredictErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMsg     string
	}{
		{"json error", http.StatusBadRequest, "application/json", `{"error": "Missing audioData"}`, "Missing audioData"},
		{"server error", http.StatusInternalServerError, "application/json", `{"error": "bad wav"}`, "bad wav"},
		{"plain text", http.StatusBadGateway, "text/plain", "proxy down\n", "proxy down"},
		{"empty body", http.StatusServiceUnavailable, "text/plain", "", "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newService(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := c.Predict(t.Context(), "", []byte("x"))
			if !errors.Is(err, ErrUpstream) {
				t.Fatalf("Predict() error = %v, want ErrUpstream", err)
			}

			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("Predict() error %T is not a *StatusError", err)
			}
			if se.StatusCode != tt.status || se.Message != tt.wantMsg {
				t.Errorf("StatusError = %d %q, want %d %q", se.StatusCode, se.Message, tt.status, tt.wantMsg)
			}
		})
	}
}

func TestClient_Health(t *testing.T) {
	t.Parallel()

	c := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != HealthPath {
			t.Errorf("request = %s %s, want GET %s", r.Method, r.URL.Path, HealthPath)
		}
		writeJSON(w, http.StatusOK, `{"status":"healthy","model_loaded":true,"supported_emotions":["angry","happy","sad"]}`)
	})

	got, err := c.Health(t.Context())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if got.Status != "healthy" || !got.ModelLoaded || len(got.SupportedEmotions) != 3 {
		t.Errorf("Health() = %+v", got)
	}
}

func TestClient_Forward(t *testing.T) {
	t.Parallel()

	c := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != FederatedUpdatePath {
			t.Errorf("path = %s, want %s", r.URL.Path, FederatedUpdatePath)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"weights":[1,2]}` {
			t.Errorf("body = %s", body)
		}
		writeJSON(w, http.StatusAccepted, `{"accepted":true}`)
	})

	resp, err := c.Forward(t.Context(), FederatedUpdatePath, []byte(`{"weights":[1,2]}`))
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("StatusCode = %d, want 202", resp.StatusCode)
	}
	if string(resp.Body) != `{"accepted":true}` || !resp.IsJSON() {
		t.Errorf("Body = %s", resp.Body)
	}
	if resp.ContentType != "application/json" {
		t.Errorf("ContentType = %q", resp.ContentType)
	}
}

// Forward hands error statuses back instead of failing.
func TestClient_ForwardErrorStatus(t *testing.T) {
	t.Parallel()

	c := newService(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":"Missing audioData"}`)
	})

	resp, err := c.Forward(t.Context(), PredictPath, []byte(`{}`))
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", resp.StatusCode)
	}
}

func TestClient_Unavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, Options{Timeout: time.Second})

	if _, err := c.Forward(t.Context(), PredictPath, []byte(`{}`)); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Forward() error = %v, want ErrUnavailable", err)
	}
	if _, err := c.Predict(t.Context(), "", nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Predict() error = %v, want ErrUnavailable", err)
	}
	if _, err := c.Health(t.Context()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Health() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	c := newService(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.Health(ctx); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Health() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_Retries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Drop the connection to force a transport error.
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Error("response writer cannot hijack")
				return
			}
			conn, _, _ := hj.Hijack()
			conn.Close()
			return
		}
		writeJSON(w, http.StatusOK, `{"status":"healthy","model_loaded":true,"supported_emotions":[]}`)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, Options{Timeout: 5 * time.Second, Retries: 2})
	if _, err := c.Health(t.Context()); err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("service saw %d calls, want 2", n)
	}
}

func TestSlogAdapter(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	l := slogAdapter{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	l.Errorf("retry %d failed\n", 2)
	l.Warnf("slow response")
	l.Debugf("attempt %s", "x")

	out := buf.String()
	for _, want := range []string{`level=ERROR msg="retry 2 failed"`, "level=WARN msg=\"slow response\"", `level=DEBUG msg="attempt x"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}
