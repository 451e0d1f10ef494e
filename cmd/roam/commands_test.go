package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/roam/engine"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile = ""
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "roam dev (none)\n", out)
}

func TestWorldsCommandListsBuiltins(t *testing.T) {
	out, err := execute(t, "worlds")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	for _, name := range []string{"corridor", "gallery", "holodeck"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "guided tour")
}

func TestEntriesCommand(t *testing.T) {
	t.Run("list file by kind", func(t *testing.T) {
		out, err := execute(t, "entries", "--kind", "projects", "--entries", "../../content/testdata/projects.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "/projects/roam/")
		assert.Contains(t, out, "beep cues")
		assert.Contains(t, out, "2 projects from")
	})

	t.Run("directory by world", func(t *testing.T) {
		out, err := execute(t, "entries", "--world", "corridor", "--entries", "../../content/testdata/posts")
		require.NoError(t, err)
		assert.Contains(t, out, "/posts/ring-buffers/")
		assert.Contains(t, out, "3 posts from")
	})

	t.Run("schema", func(t *testing.T) {
		out, err := execute(t, "entries", "--schema")
		require.NoError(t, err)
		assert.Contains(t, out, `"destination"`)
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := execute(t, "entries")
		require.ErrorContains(t, err, "--entries is required")
		assert.Equal(t, engine.CodeEntriesEmpty, codeOf(t, err))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := execute(t, "entries", "--kind", "recipes", "--entries", "x")
		require.ErrorContains(t, err, "unknown collection kind")
		assert.Equal(t, codeConfigInvalid, codeOf(t, err))
	})
}

func TestRunFailsBeforeOpeningScreen(t *testing.T) {
	t.Run("no entries", func(t *testing.T) {
		_, err := execute(t, "run", "--world", "corridor")
		require.ErrorContains(t, err, "no entries given")
		assert.Equal(t, engine.CodeEntriesEmpty, codeOf(t, err))
	})

	t.Run("log file not writable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "roam.log")
		_, err := execute(t, "run", "--log-file", path, "--entries", "../../content/testdata/posts")
		require.ErrorContains(t, err, "open log file")
		assert.Equal(t, engine.CodeSetupFailed, codeOf(t, err))
	})

	t.Run("unknown world", func(t *testing.T) {
		_, err := execute(t, "run", "--world", "nowhere", "--entries", "../../content/testdata/posts")
		assert.ErrorContains(t, err, "unknown world")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := execute(t, "run", "--log-level", "loud", "--entries", "../../content/testdata/posts")
		assert.Error(t, err)
	})
}
