package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"text/template"
	"time"

	"golang.org/x/time/rate"
)

const defaultWebhookTimeout = 10 * time.Second

type WebhookConfig struct {
	Enabled  bool     `json:"enabled" yaml:"enabled"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	URL      string   `json:"url" yaml:"url"`
	Headers  []Header `json:"headers,omitempty" yaml:"headers,omitempty"`   // Custom headers
	Template string   `json:"template,omitempty" yaml:"template,omitempty"` // Optional JSON template

	// RatePerMinute caps outbound requests. Zero means unlimited.
	RatePerMinute int `json:"rate_per_minute,omitempty" yaml:"rate_per_minute,omitempty"`

	// AllowInstanceOverride sends to an instance's own webhook_url when set.
	AllowInstanceOverride bool `json:"allow_instance_override,omitempty" yaml:"allow_instance_override,omitempty"`
}

type Header struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// WebhookChannel posts alerts as JSON, optionally rendered through a template.
type WebhookChannel struct {
	config     WebhookConfig
	client     *http.Client
	limiter    *rate.Limiter
	tmpl       *template.Template
	bufferPool *sync.Pool
}

func NewWebhookChannel(config WebhookConfig) (*WebhookChannel, error) {
	w := &WebhookChannel{
		config: config,
		client: &http.Client{
			Timeout: defaultWebhookTimeout,
		},
		bufferPool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}

	if config.RatePerMinute > 0 {
		w.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(config.RatePerMinute)), config.RatePerMinute)
	}

	if config.Template != "" {
		tmpl, err := template.New("webhook").
			Funcs(w.getTemplateFuncs()).
			Parse(config.Template)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errTemplateParse, err)
		}

		w.tmpl = tmpl
	}

	return w, nil
}

func (w *WebhookChannel) Name() string {
	if w.config.Name != "" {
		return w.config.Name
	}

	return "webhook"
}

func (w *WebhookChannel) Accepts(alert *Alert) bool {
	return w.config.Enabled && w.targetURL(alert) != ""
}

func (w *WebhookChannel) Send(ctx context.Context, alert *Alert) error {
	url := w.targetURL(alert)
	if url == "" {
		return errWebhookNoURL
	}

	if w.limiter != nil {
		if err := w.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("webhook rate limit: %w", err)
		}
	}

	payload, err := w.preparePayload(alert)
	if err != nil {
		return fmt.Errorf("failed to prepare payload: %w", err)
	}

	return w.sendRequest(ctx, url, payload)
}

func (w *WebhookChannel) targetURL(alert *Alert) string {
	if w.config.AllowInstanceOverride && alert.WebhookURL != "" {
		return alert.WebhookURL
	}

	return w.config.URL
}

func (w *WebhookChannel) getTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"json": func(v interface{}) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", fmt.Errorf("JSON marshaling failed: %w", err)
			}

			return string(b), nil
		},
		"discordColor": discordColor,
	}
}

func (w *WebhookChannel) preparePayload(alert *Alert) ([]byte, error) {
	buf := w.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer w.bufferPool.Put(buf)

	if w.tmpl == nil {
		if err := json.NewEncoder(buf).Encode(alert); err != nil {
			return nil, fmt.Errorf("failed to marshal alert: %w", err)
		}

		return append([]byte(nil), buf.Bytes()...), nil
	}

	if err := w.tmpl.Execute(buf, map[string]interface{}{
		"alert": alert,
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", errTemplateExecution, err)
	}

	if !json.Valid(buf.Bytes()) {
		return nil, errInvalidJSON
	}

	return append([]byte(nil), buf.Bytes()...), nil
}

func (w *WebhookChannel) sendRequest(ctx context.Context, url string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	w.setHeaders(req)

	resp, err := w.client.Do(req) //nolint:bodyclose // Response body is closed later
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			log.Printf("failed to close response body: %v", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return fmt.Errorf("%w: status=%d body=%s", errWebhookStatus, resp.StatusCode, string(body))
	}

	return nil
}

func (w *WebhookChannel) setHeaders(req *http.Request) {
	hasContentType := false

	for _, header := range w.config.Headers {
		if strings.EqualFold(header.Key, "content-type") {
			hasContentType = true
		}

		req.Header.Set(header.Key, header.Value)
	}

	if !hasContentType {
		req.Header.Set("Content-Type", "application/json")
	}
}
