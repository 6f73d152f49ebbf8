package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiocb86/gridflow/contracts"
)

// memorySubscriptionStore is an in-memory contracts.WebhookSubscriptionStore
// double, standing in for BoltWebhookSubscriptionStore so the dispatcher
// can be exercised without touching disk.
type memorySubscriptionStore struct {
	records map[string]map[string]string
}

func newMemorySubscriptionStore() *memorySubscriptionStore {
	return &memorySubscriptionStore{records: map[string]map[string]string{}}
}

func (s *memorySubscriptionStore) Set(sheetID, cellID, url string) error {
	if _, ok := s.records[sheetID]; !ok {
		s.records[sheetID] = map[string]string{}
	}
	if url == "" {
		delete(s.records[sheetID], cellID)
	} else {
		s.records[sheetID][cellID] = url
	}
	return nil
}

func (s *memorySubscriptionStore) LoadAll() (map[string]map[string]string, error) {
	return s.records, nil
}

func (s *memorySubscriptionStore) Close() error { return nil }

var _ contracts.WebhookSubscriptionStore = (*memorySubscriptionStore)(nil)

func TestWebhookDispatcher_NotifySendsToSubscribedCell(t *testing.T) {
	received := make(chan contracts.CellResponse, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cell contracts.CellResponse
		_ = json.NewDecoder(r.Body).Decode(&cell)
		received <- cell
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := newMemorySubscriptionStore()
	dispatcher, err := NewWebhookDispatcher(store, testLogger())
	require.NoError(t, err)

	require.NoError(t, dispatcher.SetWebhookURL("sheet1", "A1", server.URL))
	dispatcher.Start()
	defer dispatcher.Close()

	dispatcher.Notify("sheet1", []*contracts.CellResponse{{CanonicalKey: "A1", Value: "10", Result: "10"}})

	select {
	case cell := <-received:
		assert.Equal(t, "10", cell.Result)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never delivered")
	}
}

func TestWebhookDispatcher_NotifyIgnoresUnsubscribedCell(t *testing.T) {
	store := newMemorySubscriptionStore()
	dispatcher, err := NewWebhookDispatcher(store, testLogger())
	require.NoError(t, err)

	dispatcher.Start()
	defer dispatcher.Close()

	// No subscription registered anywhere: Notify must be a no-op, not a
	// panic or a block.
	dispatcher.Notify("sheet1", []*contracts.CellResponse{{CanonicalKey: "A1"}})
}

func TestWebhookDispatcher_LoadsSubscriptionsFromStore(t *testing.T) {
	store := newMemorySubscriptionStore()
	require.NoError(t, store.Set("sheet1", "A1", "https://example.com/hook"))

	dispatcher, err := NewWebhookDispatcher(store, testLogger())
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/hook", dispatcher.GetWebhookURL("sheet1", "A1"))
}

func TestWebhookDispatcher_SetWebhookURLClearsOnEmpty(t *testing.T) {
	store := newMemorySubscriptionStore()
	dispatcher, err := NewWebhookDispatcher(store, testLogger())
	require.NoError(t, err)

	require.NoError(t, dispatcher.SetWebhookURL("sheet1", "A1", "https://example.com/hook"))
	assert.Equal(t, "https://example.com/hook", dispatcher.GetWebhookURL("sheet1", "A1"))

	require.NoError(t, dispatcher.SetWebhookURL("sheet1", "A1", ""))
	assert.Equal(t, "", dispatcher.GetWebhookURL("sheet1", "A1"))
}
