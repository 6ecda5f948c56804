package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// analysisPrefix namespaces analysis history keys. Full keys look like
// analysis/<position hash, 16 hex digits>/<unix nanos, zero-padded>,
// so a prefix scan walks one position's records in insertion order.
const analysisPrefix = "analysis/"

// AnalysisRecord is one stored search outcome for a position.
type AnalysisRecord struct {
	FEN         string    `json:"fen"`
	Depth       int       `json:"depth"`
	TimeLimitMS int       `json:"time_limit_ms"`
	BestMove    *string   `json:"best_move"`
	Score       int       `json:"score"`
	Nodes       int64     `json:"nodes"`
	NPS         int64     `json:"nps"`
	ElapsedMS   float64   `json:"elapsed_ms"`
	PV          []string  `json:"pv"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store wraps BadgerDB for persistent analysis history.
type Store struct {
	db *badger.DB
}

// Open opens the database at dir, creating it if needed.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func analysisKey(positionHash uint64, createdAt time.Time) []byte {
	return []byte(fmt.Sprintf("%s%016x/%020d", analysisPrefix, positionHash, createdAt.UnixNano()))
}

// SaveAnalysis stores one analysis record under the position hash,
// stamping CreatedAt when the caller left it zero.
func (s *Store) SaveAnalysis(positionHash uint64, rec AnalysisRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(analysisKey(positionHash, rec.CreatedAt), data)
	})
}

// Analyses returns up to limit records stored for the position hash,
// newest first. A limit of zero or below returns everything.
func (s *Store) Analyses(positionHash uint64, limit int) ([]AnalysisRecord, error) {
	prefix := []byte(fmt.Sprintf("%s%016x/", analysisPrefix, positionHash))

	records := []AnalysisRecord{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.Reverse = true

		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration starts past the last prefixed key.
		seek := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) >= limit {
				break
			}

			var rec AnalysisRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})

	return records, err
}
