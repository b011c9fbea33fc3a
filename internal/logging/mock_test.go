package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	logger := &MockLogger{}

	logger.Info("started", Field{Key: "count", Value: 3})
	logger.Warn("slow")

	require.Len(t, logger.Entries, 2)
	assert.Equal(t, "INFO", logger.Entries[0].Level)
	assert.Equal(t, "started", logger.Entries[0].Message)
	assert.Equal(t, 3, logger.Entries[0].Fields[0].Value)
	assert.True(t, logger.HasEntry("WARN", "slow"))
	assert.False(t, logger.HasEntry("ERROR", "slow"))
}

func TestMockLoggerDerivedLoggersShareEntries(t *testing.T) {
	logger := &MockLogger{}
	err := errors.New("boom")

	logger.WithError(err).WithField("file", "data.csv").Warn("failed to read")

	require.Len(t, logger.Entries, 1)
	assert.Equal(t, err, logger.Entries[0].Error)
	assert.Equal(t, "file", logger.Entries[0].Fields[0].Key)
	assert.True(t, logger.HasEntry("WARN", "failed to read"))
}

func TestMockLoggerFieldsDoNotLeakAcrossDerivations(t *testing.T) {
	logger := &MockLogger{}
	base := logger.WithField("a", 1)

	base.WithField("b", 2).Info("first")
	base.WithField("c", 3).Info("second")

	require.Len(t, logger.Entries, 2)
	assert.Len(t, logger.Entries[0].Fields, 2)
	assert.Len(t, logger.Entries[1].Fields, 2)
	assert.Equal(t, "c", logger.Entries[1].Fields[1].Key)
}
