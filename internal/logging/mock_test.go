package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_CapturesEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("hello", Field{Key: "k", Value: 1})
	mock.Warn("careful")

	entries := mock.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "hello", entries[0].Message)
	require.Len(t, entries[0].Fields, 1)
	assert.Equal(t, "k", entries[0].Fields[0].Key)

	assert.True(t, mock.HasEntry("WARN", "careful"))
	assert.False(t, mock.HasEntry("ERROR", "careful"))
}

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.WithField("sheet", "Budget").WithError(errors.New("boom")).Error("failed")

	require.Len(t, mock.Entries(), 1)
	entry := mock.Entries()[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.EqualError(t, entry.Error, "boom")
	require.Len(t, entry.Fields, 1)
	assert.Equal(t, "Budget", entry.Fields[0].Value)
}

func TestMockLogger_EntriesByLevel(t *testing.T) {
	mock := NewMockLogger()

	mock.Debug("a")
	mock.Info("b")
	mock.Debug("c")

	assert.Len(t, mock.EntriesByLevel("DEBUG"), 2)
	assert.Len(t, mock.EntriesByLevel("INFO"), 1)
	assert.Empty(t, mock.EntriesByLevel("WARN"))
}
