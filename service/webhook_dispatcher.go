package service

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	json "github.com/bytedance/sonic"

	"github.com/jiocb86/gridflow/contracts"
)

// WebhookWorkersCount is the teacher's fixed pool size.
const WebhookWorkersCount = 5

type sheetWebhooks map[string]string

type webhookSendCommand struct {
	webhookURL string
	cell       *contracts.CellResponse
}

// WebhookDispatcher keeps the teacher's in-memory map + bounded
// channel-backed worker pool shape, with its subscriptions additionally
// mirrored into a WebhookSubscriptionStore so a restart doesn't silently
// drop them.
type WebhookDispatcher struct {
	queue    chan webhookSendCommand
	webhooks map[string]sheetWebhooks
	store    contracts.WebhookSubscriptionStore
	logger   *slog.Logger
}

func NewWebhookDispatcher(store contracts.WebhookSubscriptionStore, logger *slog.Logger) (*WebhookDispatcher, error) {
	d := &WebhookDispatcher{
		queue:    make(chan webhookSendCommand, 20),
		webhooks: map[string]sheetWebhooks{},
		store:    store,
		logger:   logger,
	}

	loaded, err := store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load webhook subscriptions: %w", err)
	}
	for sheetID, cells := range loaded {
		d.webhooks[sheetID] = sheetWebhooks(cells)
	}

	return d, nil
}

func (d *WebhookDispatcher) SetWebhookURL(sheetID string, canonicalCellID string, webhookURL string) error {
	if _, ok := d.webhooks[sheetID]; !ok {
		d.webhooks[sheetID] = sheetWebhooks{}
	}

	if webhookURL == "" {
		delete(d.webhooks[sheetID], canonicalCellID)
	} else {
		d.webhooks[sheetID][canonicalCellID] = webhookURL
	}

	return d.store.Set(sheetID, canonicalCellID, webhookURL)
}

func (d *WebhookDispatcher) GetWebhookURL(sheetID string, canonicalCellID string) string {
	return d.webhooks[sheetID][canonicalCellID]
}

func (d *WebhookDispatcher) Notify(sheetID string, cells []*contracts.CellResponse) {
	if _, ok := d.webhooks[sheetID]; !ok {
		return
	}
	go d.addToQueue(sheetID, cells)
}

func (d *WebhookDispatcher) addToQueue(sheetID string, cells []*contracts.CellResponse) {
	subscriptions, ok := d.webhooks[sheetID]
	if !ok {
		return
	}

	for _, cell := range cells {
		if url, ok := subscriptions[cell.CanonicalKey]; ok {
			d.queue <- webhookSendCommand{webhookURL: url, cell: cell}
		}
	}
}

func (d *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go d.runWorker()
	}
}

func (d *WebhookDispatcher) Close() {
	close(d.queue)
}

func (d *WebhookDispatcher) runWorker() {
	client := &http.Client{Timeout: 5 * time.Second}

	for command := range d.queue {
		payload, _ := json.Marshal(command.cell)
		resp, err := client.Post(command.webhookURL, "application/json", bytes.NewReader(payload))
		if err != nil {
			d.logger.Warn("webhook send failed", "url", command.webhookURL, "error", err)
			continue
		}
		if resp.StatusCode >= 300 {
			d.logger.Warn("webhook responded with unexpected status", "url", command.webhookURL, "status", resp.Status)
		}
		resp.Body.Close()
	}
}

var _ contracts.WebhookDispatcher = (*WebhookDispatcher)(nil)
