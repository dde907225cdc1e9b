package stats

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordToolUsageAggregates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	manager, err := NewStatsManager(path)
	require.NoError(t, err)

	require.NoError(t, manager.RecordToolUsage("spellcheck", 100*time.Millisecond, 50, 200))
	require.NoError(t, manager.RecordToolUsage("spellcheck", 300*time.Millisecond, 70, 100))

	session := manager.GetSessionStats()
	tool := session.Tools["spellcheck"]
	require.NotNil(t, tool)
	assert.Equal(t, 2, tool.CallCount)
	assert.Equal(t, 400*time.Millisecond, tool.TotalExecutionTime)
	assert.Equal(t, 200*time.Millisecond, tool.AverageExecutionTime)
	assert.Equal(t, 120, tool.InputTokens)
	assert.Equal(t, 300, tool.OutputTokens)
}

func TestPersistentStatsSurviveReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	manager, err := NewStatsManager(path)
	require.NoError(t, err)
	require.NoError(t, manager.RecordToolUsage("globmatch", 50*time.Millisecond, 10, 20))

	reloaded, err := NewStatsManager(path)
	require.NoError(t, err)

	persistent := reloaded.GetPersistentStats()
	tool := persistent.Tools["globmatch"]
	require.NotNil(t, tool)
	assert.Equal(t, 1, tool.CallCount)

	// Session stats start fresh
	assert.Empty(t, reloaded.GetSessionStats().Tools)
}

func TestResetSessionStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	manager, err := NewStatsManager(path)
	require.NoError(t, err)
	require.NoError(t, manager.RecordToolUsage("wordsplit", time.Millisecond, 5, 5))

	manager.ResetSessionStats()
	assert.Empty(t, manager.GetSessionStats().Tools)
	assert.NotEmpty(t, manager.GetPersistentStats().Tools)
}
