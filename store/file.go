// Package store persists learned agent state, one JSON document per agent
// identity.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/zeu5/tabular-agent/core"
)

// ErrNotFound is returned by Load when no record has been written yet.
var ErrNotFound = errors.New("no persisted record")

// Record is the serialized form of an agent's learned state.
type Record struct {
	AgentID      string                             `json:"agent_id"`
	Behaviors    map[core.Action]float64            `json:"behaviors"`
	Experience   map[string]map[core.Action]float64 `json:"experience"`
	TotalRewards float64                            `json:"total_rewards"`
	Timestamp    time.Time                          `json:"timestamp"`
}

// Store reads and writes agent records. Implementations make a single
// attempt per call, there is no retry.
type Store interface {
	Save(*Record) error
	Load() (*Record, error)
}

// FileStore keeps the record in a single file. Writes fully overwrite the
// previous content. There is no atomic rename, a crash mid-write can corrupt
// the file.
type FileStore struct {
	path string
}

var _ Store = &FileStore{}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Save(r *Record) error {
	bs, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding record: %w", err)
	}
	if err := os.WriteFile(s.path, bs, 0644); err != nil {
		return fmt.Errorf("error writing record: %w", err)
	}
	return nil
}

func (s *FileStore) Load() (*Record, error) {
	bs, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading record: %w", err)
	}
	record := &Record{}
	if err := json.Unmarshal(bs, record); err != nil {
		return nil, fmt.Errorf("error decoding record: %w", err)
	}
	return record, nil
}
