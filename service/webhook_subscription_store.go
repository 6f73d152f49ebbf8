package service

import (
	"fmt"
	"time"

	json "github.com/bytedance/sonic"
	"go.etcd.io/bbolt"

	"github.com/jiocb86/gridflow/contracts"
)

// bucketPrefix keeps webhook-subscription buckets out of any future
// bucket namespace, the same way the teacher prefixes its dependency-tree
// buckets — adapted here to index subscriptions instead of dependency
// edges, since the in-memory sheet graph (spreadsheet.Sheet) now owns
// dependency tracking entirely.
var bucketPrefix = [4]byte{'_', '_', 'w', '_'}

// subscriptionRecord is what actually lives at a bucket key: not a bare
// URL, but when the subscription was registered, so a store dump can tell
// a fresh subscription from a stale one. Encoded with sonic, the same
// library the dispatcher already uses to encode outgoing webhook payloads.
type subscriptionRecord struct {
	WebhookURL string    `json:"webhook_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// BoltWebhookSubscriptionStore persists `sheetID -> canonicalCellID ->
// subscriptionRecord` in a bbolt bucket per sheet.
type BoltWebhookSubscriptionStore struct {
	db *bbolt.DB
}

func NewBoltWebhookSubscriptionStore(db *bbolt.DB) *BoltWebhookSubscriptionStore {
	return &BoltWebhookSubscriptionStore{db: db}
}

func bucketID(sheetID string) []byte {
	return append(append([]byte{}, bucketPrefix[:]...), []byte(sheetID)...)
}

// Set stores or clears the webhook URL for a single cell. An empty
// webhookURL deletes the record, mirroring the dispatcher's own
// delete-on-empty-URL convention.
func (s *BoltWebhookSubscriptionStore) Set(sheetID string, canonicalCellID string, webhookURL string) error {
	return s.db.Batch(func(tx *bbolt.Tx) error {
		if webhookURL == "" {
			bucket := tx.Bucket(bucketID(sheetID))
			if bucket == nil {
				return nil
			}
			return bucket.Delete([]byte(canonicalCellID))
		}

		bucket, err := tx.CreateBucketIfNotExists(bucketID(sheetID))
		if err != nil {
			return err
		}

		record, err := json.Marshal(subscriptionRecord{WebhookURL: webhookURL, CreatedAt: time.Now()})
		if err != nil {
			return fmt.Errorf("encode subscription record: %w", err)
		}

		return bucket.Put([]byte(canonicalCellID), record)
	})
}

// LoadAll reconstructs every subscription on disk, for the dispatcher to
// hydrate its in-memory map at startup.
func (s *BoltWebhookSubscriptionStore) LoadAll() (map[string]map[string]string, error) {
	result := make(map[string]map[string]string)

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, bucket *bbolt.Bucket) error {
			if len(name) < len(bucketPrefix) || string(name[:len(bucketPrefix)]) != string(bucketPrefix[:]) {
				return nil
			}
			sheetID := string(name[len(bucketPrefix):])

			cells := make(map[string]string)
			c := bucket.Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				var record subscriptionRecord
				if err := json.Unmarshal(v, &record); err != nil {
					return fmt.Errorf("sheet %q cell %q: %w", sheetID, string(k), err)
				}
				cells[string(k)] = record.WebhookURL
			}
			result[sheetID] = cells
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *BoltWebhookSubscriptionStore) Close() error {
	return s.db.Close()
}

var _ contracts.WebhookSubscriptionStore = (*BoltWebhookSubscriptionStore)(nil)
