package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeu5/tabular-agent/core"
)

func testRecord() *Record {
	return &Record{
		AgentID: "agent_1",
		Behaviors: map[core.Action]float64{
			"stake_tokens": 0.5,
			"idle":         0.1,
		},
		Experience: map[string]map[core.Action]float64{
			"user_login": {"stake_tokens": 0.05, "idle": 0},
		},
		TotalRewards: 1.25,
		Timestamp:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")
	s := NewFileStore(path)

	want := testRecord()
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")
	s := NewFileStore(path)

	first := testRecord()
	require.NoError(t, s.Save(first))

	second := testRecord()
	second.TotalRewards = 9.0
	second.Experience["low_balance"] = map[core.Action]float64{"idle": 0.2}
	require.NoError(t, s.Save(second))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestFileStoreLoadNotFound(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")
	require.NoError(t, os.WriteFile(path, []byte("][not json"), 0644))

	s := NewFileStore(path)
	_, err := s.Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

// The on-disk document keys are part of the external contract.
func TestFileStoreDocumentFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")
	s := NewFileStore(path)
	require.NoError(t, s.Save(testRecord()))

	bs, err := os.ReadFile(path)
	require.NoError(t, err)

	doc := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(bs, &doc))
	for _, key := range []string{"agent_id", "behaviors", "experience", "total_rewards", "timestamp"} {
		assert.Contains(t, doc, key)
	}

	// timestamp serializes as RFC 3339
	ts, ok := doc["timestamp"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}
