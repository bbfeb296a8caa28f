package journey

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/michaelloftdk/rejsekort-parser/internal/parsing"
)

const importBucket = "imports"

// Import is one processed invoice recorded in the history database, keyed by
// its source file name so re-importing the same invoice overwrites instead
// of duplicating.
type Import struct {
	Source     string            `json:"source"`
	ImportedAt time.Time         `json:"imported_at"`
	Journeys   []parsing.Journey `json:"journeys"`
}

// DB defines the interface for the journey history store.
type DB interface {
	// SaveImport records the journeys extracted from one source file.
	SaveImport(source string, journeys []parsing.Journey) error

	// ListImports returns all recorded imports.
	ListImports() ([]*Import, error)

	// Close closes the database.
	Close() error
}

// BoltDB implements DB using a local bbolt file.
type BoltDB struct {
	db  *bbolt.DB
	now func() time.Time
}

// NewBoltDB opens (or creates) the history database at the given path.
func NewBoltDB(path string) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(importBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltDB{db: db, now: time.Now}, nil
}

// SaveImport records the journeys extracted from one source file.
func (b *BoltDB) SaveImport(source string, journeys []parsing.Journey) error {
	record := &Import{
		Source:     source,
		ImportedAt: b.now(),
		Journeys:   journeys,
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(importBucket))
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshaling import: %w", err)
		}
		return bucket.Put([]byte(source), data)
	})
}

// ListImports returns all recorded imports.
func (b *BoltDB) ListImports() ([]*Import, error) {
	imports := make([]*Import, 0)
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(importBucket))
		return bucket.ForEach(func(k, v []byte) error {
			var record Import
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("unmarshaling import: %w", err)
			}
			imports = append(imports, &record)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return imports, nil
}

// Close closes the database.
func (b *BoltDB) Close() error {
	return b.db.Close()
}
