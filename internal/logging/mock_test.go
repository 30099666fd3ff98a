package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	m := &MockLogger{}
	m.Info("hello", Field{Key: FieldCount, Value: 3})

	require.Len(t, m.Entries(), 1)
	entry := m.Entries()[0]
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "hello", entry.Message)
	require.Len(t, entry.Fields, 1)
	assert.Equal(t, FieldCount, entry.Fields[0].Key)
}

func TestMockLoggerDerivedLoggersShareEntries(t *testing.T) {
	m := &MockLogger{}
	m.WithField(FieldFile, "a.csv").Warn("bad row")
	m.WithError(errors.New("boom")).Error("failed")

	assert.True(t, m.HasEntry("WARN", "bad row"))
	assert.True(t, m.HasEntry("ERROR", "failed"))
	assert.False(t, m.HasEntry("INFO", "bad row"))
}

func TestMockLoggerFieldsDoNotLeakAcrossDerivations(t *testing.T) {
	m := &MockLogger{}
	withFile := m.WithField(FieldFile, "a.csv")
	withFile.Info("first")
	m.Info("second")

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Len(t, entries[0].Fields, 1)
	assert.Empty(t, entries[1].Fields)
}

func TestLogrusAdapterImplementsLogger(t *testing.T) {
	var _ Logger = NewLogrusAdapter("debug", "json")
	var _ Logger = NewLogrusAdapterFromLogger(nil)
	var _ Logger = &MockLogger{}
}
