package alerts

const (
	DiscordColorRed    = 15158332 // Error
	DiscordColorYellow = 16776960 // Warning
	DiscordColorBlue   = 3447003  // Info
)

func discordColor(level AlertLevel) int {
	switch level {
	case Error:
		return DiscordColorRed
	case Warning:
		return DiscordColorYellow
	default:
		return DiscordColorBlue
	}
}

const DiscordTemplate = `{
  "embeds": [{
    "title": {{json .alert.Title}},
    "description": {{json .alert.Message}},
    "color": {{discordColor .alert.Level}},
    "timestamp": {{json .alert.Timestamp}},
    "fields": [
      {
        "name": "Instance",
        "value": {{json .alert.InstanceID}},
        "inline": true
      },
      {
        "name": "Alert",
        "value": {{json .alert.Type}},
        "inline": true
      }
      {{range $key, $value := .alert.Details}},
      {
        "name": {{json $key}},
        "value": {{json (printf "%v" $value)}},
        "inline": true
      }
      {{end}}
    ]
  }]
}`

// NewDiscordChannel posts alerts as Discord embeds.
func NewDiscordChannel(webhookURL string, ratePerMinute int) (*WebhookChannel, error) {
	return NewWebhookChannel(WebhookConfig{
		Enabled:       true,
		Name:          "discord",
		URL:           webhookURL,
		Template:      DiscordTemplate,
		RatePerMinute: ratePerMinute,
	})
}
