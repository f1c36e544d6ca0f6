package notifysvc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/hcmut-hub/tkb/core"
)

type (
	// discordService pushes notifications to a Discord webhook.
	discordService struct {
		webhookURL string
		username   string
		client     *http.Client
		logger     core.Logger
	}

	discordEmbedField struct {
		Name   string `json:"name"`
		Value  string `json:"value"`
		Inline bool   `json:"inline"`
	}

	discordEmbed struct {
		Title       string              `json:"title"`
		Description string              `json:"description,omitempty"`
		Fields      []discordEmbedField `json:"fields,omitempty"`
		Timestamp   string              `json:"timestamp,omitempty"`
	}

	discordPayload struct {
		Username string         `json:"username,omitempty"`
		Embeds   []discordEmbed `json:"embeds"`
	}
)

var _ core.NotificationService = (*discordService)(nil)

func NewDiscordService(conf *core.Config, logger core.Logger) core.NotificationService {
	return &discordService{
		webhookURL: conf.NotifyWebhookURL,
		username:   conf.AppName,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// SendNotifications posts notifications concurrently, fire and forget.
func (svc discordService) SendNotifications(notifications ...*core.Notification) {
	for _, n := range notifications {
		n := n
		go func() {
			if err := svc.send(n); err != nil {
				svc.logger.Error(fmt.Sprintf("sending notification %q: %v", n.Event, err), err)
			}
		}()
	}
}

func (svc discordService) send(n *core.Notification) error {
	embed := discordEmbed{
		Title:       n.Event,
		Description: n.Message,
	}
	if !n.At.IsZero() {
		embed.Timestamp = n.At.UTC().Format(time.RFC3339)
	}
	for k, v := range n.Fields {
		embed.Fields = append(embed.Fields, discordEmbedField{Name: k, Value: v, Inline: true})
	}

	body, err := json.Marshal(discordPayload{Username: svc.username, Embeds: []discordEmbed{embed}})
	if err != nil {
		return errors.Wrap(err, "marshaling webhook payload")
	}
	resp, err := svc.client.Post(svc.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "posting webhook")
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return errors.Errorf("webhook responded %s", resp.Status)
	}
	return nil
}
