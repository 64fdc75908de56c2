package core

import (
	"fmt"
	"log"
	"os"

	"github.com/mfreeman451/pgradar/pkg/alerts"
	"github.com/mfreeman451/pgradar/pkg/config"
)

const defaultResendKeyEnv = "RESEND_API_KEY"

// buildChannels creates every enabled alert channel. The NATS channel, when
// configured, is returned separately so its connection can be closed.
func buildChannels(cfg *config.ConsoleConfig) ([]alerts.Channel, *alerts.NATSChannel, error) {
	var channels []alerts.Channel

	for i, w := range cfg.Webhooks {
		if !w.Enabled {
			continue
		}

		ch, err := alerts.NewWebhookChannel(w)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: webhook %d: %w", errBuildChannels, i, err)
		}

		channels = append(channels, ch)
	}

	if d := cfg.Discord; d != nil && d.Enabled {
		ch, err := alerts.NewDiscordChannel(d.URL, d.RatePerMinute)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: discord: %w", errBuildChannels, err)
		}

		channels = append(channels, ch)
	}

	if e := cfg.Email; e != nil && e.Enabled {
		keyEnv := e.APIKeyEnv
		if keyEnv == "" {
			keyEnv = defaultResendKeyEnv
		}

		if key := os.Getenv(keyEnv); key != "" {
			channels = append(channels, alerts.NewResendEmailChannel(*e, key))
		} else {
			log.Printf("Email alerts enabled but %s is not set, skipping email channel", keyEnv)
		}
	}

	var natsChannel *alerts.NATSChannel

	if n := cfg.NATS; n != nil && n.Enabled {
		ch, err := alerts.DialNATSChannel(*n)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: nats: %w", errBuildChannels, err)
		}

		natsChannel = ch
		channels = append(channels, ch)
	}

	for _, ch := range channels {
		log.Printf("Alert channel %s enabled", ch.Name())
	}

	return channels, natsChannel, nil
}
