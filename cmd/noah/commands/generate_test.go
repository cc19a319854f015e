package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cran/noah/internal/format"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newGenerateCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestGenerateText(t *testing.T) {
	out, err := runCommand(t, "--seed", "7", "alice", "bob", "alice")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, lines[0], lines[2], "repeated value keeps its pseudonym")
	assert.NotEqual(t, lines[0], lines[1])
}

func TestGenerateSeedReproducible(t *testing.T) {
	first, err := runCommand(t, "--seed", "11", "alice", "bob")
	require.NoError(t, err)
	second, err := runCommand(t, "--seed", "11", "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateJSONL(t *testing.T) {
	out, err := runCommand(t, "--seed", "7", "--output", "jsonl", "alice", "bob")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	var e format.Entry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &e))
	assert.Equal(t, "alice", e.Key)
	assert.NotEmpty(t, e.Pseudonym)
}

func TestGenerateTable(t *testing.T) {
	out, err := runCommand(t, "--seed", "7", "--output", "table", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "PSEUDONYM")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "1 pseudonym")
}

func TestGenerateAnonymousCount(t *testing.T) {
	out, err := runCommand(t, "--count", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	distinct := make(map[string]bool)
	for _, l := range lines {
		distinct[l] = true
	}
	assert.Len(t, distinct, 5, "anonymous pseudonyms are all distinct")
}

func TestGenerateAlliterate(t *testing.T) {
	out, err := runCommand(t, "--count", "10", "--alliterate")
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		words := strings.Fields(line)
		require.Len(t, words, 2)
		assert.Equal(t, strings.ToLower(words[0][:1]), strings.ToLower(words[1][:1]),
			"%q should alliterate", line)
	}
}

func TestGenerateNoInput(t *testing.T) {
	_, err := runCommand(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to pseudonymize")
}

func TestGenerateCountWithValues(t *testing.T) {
	_, err := runCommand(t, "--count", "2", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--count cannot be combined")
}

func TestGenerateUnknownOutput(t *testing.T) {
	_, err := runCommand(t, "--output", "xml", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format 'xml'")
}

func TestGenerateCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: "1.0"
categories:
  - name: adjectives
    words: [Big]
  - name: animals
    words: [Bear]
`), 0o644))

	out, err := runCommand(t, "--config", path, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Big Bear\n", out)
}

func TestGenerateCapacityExhausted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: "1.0"
categories:
  - name: adjectives
    words: [Big, Red]
  - name: animals
    words: [Bear, Rat]
`), 0o644))

	_, err := runCommand(t, "--config", path, "a", "b", "c", "d", "e")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name space exhausted")
}

func TestGenerateBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"9.9\"\n"), 0o644))

	_, err := runCommand(t, "--config", path, "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid word-list configuration")
}
