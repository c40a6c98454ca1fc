package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"jig.dev/jig/internal/config"
	"jig.dev/jig/internal/engine"
	"jig.dev/jig/internal/workspace"
	"jig.dev/jig/testhelpers"
)

const trunkRevset = "trunk()"

var (
	currentArgs = testhelpers.LogArgs("@", false)
	parentArgs  = testhelpers.LogArgs("@-", false)
	childArgs   = testhelpers.LogArgs("@+", false)
	trunkArgs   = testhelpers.LogArgs(trunkRevset, false)
	stackArgs   = testhelpers.LogArgs(trunkRevset+"..@", true)
)

type fixture struct {
	eng     engine.Engine
	runner  *testhelpers.FakeRunner
	forge   *testhelpers.FakeForge
	tracker *testhelpers.FakeTracker
	events  *testhelpers.FakeSubscriber
	root    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".jj"), 0o755))

	f := &fixture{
		runner:  testhelpers.NewFakeRunner(),
		forge:   testhelpers.NewFakeForge(),
		tracker: testhelpers.NewFakeTracker(),
		events:  testhelpers.NewFakeSubscriber(),
		root:    root,
	}
	f.eng = engine.NewEngine(root, &config.RepoConfig{}, engine.Deps{
		Runner:  f.runner,
		Forge:   f.forge,
		Tracker: f.tracker,
		Events:  f.events,
	})
	return f
}

// bindWorkspaceState writes the state file marking the fixture's root as a
// named workspace.
func (f *fixture) bindWorkspaceState(t *testing.T, st workspace.State) {
	t.Helper()
	require.NoError(t, workspace.NewStore().Save(f.root, &st))
}

// trunkLine is the scripted record for a trunk change carrying the main
// bookmark.
func trunkLine() string {
	return testhelpers.ChangeLine(testhelpers.ChangeSpec{
		ChangeID:  "t0",
		Bookmarks: []string{"main"},
		Title:     "merge release",
	})
}

// placeholderLine is the empty undescribed working-copy change the backend
// parks on trunk.
func placeholderLine() string {
	return testhelpers.ChangeLine(testhelpers.ChangeSpec{
		ChangeID:    "w0",
		WorkingCopy: true,
		Empty:       true,
	})
}
