package alerts

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v3"
)

type EmailConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	From    string `json:"from" yaml:"from"`

	// To receives alerts for instances without their own address.
	To        []string `json:"to,omitempty" yaml:"to,omitempty"`
	APIKeyEnv string   `json:"api_key_env,omitempty" yaml:"api_key_env,omitempty"`
}

// EmailSender is the part of the Resend client the channel uses.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailChannel mails alerts through Resend.
type EmailChannel struct {
	config EmailConfig
	sender EmailSender
}

func NewResendEmailChannel(config EmailConfig, apiKey string) *EmailChannel {
	return NewEmailChannel(config, resend.NewClient(apiKey).Emails)
}

func NewEmailChannel(config EmailConfig, sender EmailSender) *EmailChannel {
	return &EmailChannel{
		config: config,
		sender: sender,
	}
}

func (*EmailChannel) Name() string {
	return "email"
}

func (e *EmailChannel) Accepts(alert *Alert) bool {
	return e.config.Enabled && len(e.recipients(alert)) > 0
}

func (e *EmailChannel) Send(ctx context.Context, alert *Alert) error {
	to := e.recipients(alert)
	if len(to) == 0 {
		return errNoRecipient
	}

	var body strings.Builder
	if err := emailTemplate.Execute(&body, alert); err != nil {
		return fmt.Errorf("%w: %w", errTemplateExecution, err)
	}

	params := &resend.SendEmailRequest{
		From:    e.config.From,
		To:      to,
		Subject: fmt.Sprintf("[pgradar %s] %s", strings.ToUpper(string(alert.Level)), alert.Title),
		Html:    body.String(),
		Text:    fmt.Sprintf("%s\n\n%s\nInstance: %s\nFired at: %s", alert.Title, alert.Message, alert.InstanceID, alert.Timestamp),
	}

	if _, err := e.sender.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("%w: %w", errEmailSend, err)
	}

	return nil
}

func (e *EmailChannel) recipients(alert *Alert) []string {
	if alert.Email != "" {
		return []string{alert.Email}
	}

	return e.config.To
}

var emailTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,Helvetica,sans-serif;">
  <h2>{{.Title}}</h2>
  <p>{{.Message}}</p>
  <table cellpadding="4">
    <tr><td><b>Instance</b></td><td>{{.InstanceID}}</td></tr>
    <tr><td><b>Alert</b></td><td>{{.Type}}</td></tr>
    <tr><td><b>Level</b></td><td>{{.Level}}</td></tr>
    <tr><td><b>Fired at</b></td><td>{{.Timestamp}}</td></tr>
    {{range $key, $value := .Details}}<tr><td><b>{{$key}}</b></td><td>{{$value}}</td></tr>
    {{end}}
  </table>
</body>
</html>`))
