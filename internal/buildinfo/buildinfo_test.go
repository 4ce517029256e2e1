package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stamp(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
	Version, Commit, Date = version, commit, date
}

func TestUnstamped(t *testing.T) {
	stamp(t, "dev", "unknown", "unknown")
	assert.Equal(t, "dev", Short())
	assert.Equal(t, "ledtris dev", Long())
}

func TestCommitOnly(t *testing.T) {
	stamp(t, "", "3f2a9c1", "unknown")
	assert.Equal(t, "3f2a9c1", Short())
	assert.Equal(t, "ledtris 3f2a9c1", Long())
}

func TestRelease(t *testing.T) {
	stamp(t, "v0.3.0", "3f2a9c1", "2026-10-01")
	assert.Equal(t, "v0.3.0", Short())
	assert.Equal(t, "ledtris v0.3.0 commit 3f2a9c1 built 2026-10-01", Long())
}
