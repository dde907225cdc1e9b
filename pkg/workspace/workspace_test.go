package workspace

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetWorkspaceInfo(t *testing.T) {
	SetWorkspaceInfo(WorkspaceInfo{
		SessionID:   "session-roundtrip",
		RootDir:     "/tmp/project",
		UserTask:    "check the sources",
		RulesetPath: "rules.toml",
	})

	info, exists := GetWorkspaceInfo("session-roundtrip")
	require.True(t, exists)
	assert.Equal(t, "/tmp/project", info.RootDir)
	assert.Equal(t, "check the sources", info.UserTask)
	assert.Equal(t, "rules.toml", info.RulesetPath)
	assert.False(t, info.InitTime.IsZero())
	assert.False(t, info.LastAccess.IsZero())
}

func TestSetWorkspaceInfoAssignsSessionID(t *testing.T) {
	before := len(ListSessions())
	SetWorkspaceInfo(WorkspaceInfo{RootDir: "."})
	assert.Len(t, ListSessions(), before+1)
}

func TestUnknownSessionDefaults(t *testing.T) {
	_, exists := GetWorkspaceInfo("no-such-session")
	assert.False(t, exists)
	assert.Equal(t, ".", GetRootDir("no-such-session"))
	assert.Equal(t, "", GetRulesetPath("no-such-session"))
}

func TestResolveRelativePath(t *testing.T) {
	SetWorkspaceInfo(WorkspaceInfo{SessionID: "session-resolve", RootDir: "/srv/code"})

	resolved := ResolveRelativePath("pkg/a.go", "session-resolve")
	assert.Equal(t, filepath.Join("/srv/code", "pkg/a.go"), resolved)

	abs := filepath.Join(string(filepath.Separator), "abs", "b.go")
	assert.Equal(t, abs, ResolveRelativePath(abs, "session-resolve"))
}

func TestConcurrentGetWorkspaceInfo(t *testing.T) {
	SetWorkspaceInfo(WorkspaceInfo{SessionID: "session-concurrent", RootDir: "."})

	// GetWorkspaceInfo refreshes LastAccess, so concurrent lookups also
	// write the store; under -race this fails if the store takes only a
	// read lock for the lookup
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, exists := GetWorkspaceInfo("session-concurrent")
				assert.True(t, exists)
			}
		}()
	}
	wg.Wait()
}
