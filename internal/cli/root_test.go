package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpattern/codec"
	"github.com/katalvlaran/lvpattern/combinatorics"
	"github.com/katalvlaran/lvpattern/matrix"
)

// execute runs the root command with args on a fresh CLI.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := New(&out, &logs, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, &bytes.Buffer{}, LogInfo).RootCommand()
	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"find", "verify", "generate"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))
}

func TestGenerateThenFind(t *testing.T) {
	dir := t.TempDir()
	fixturePath := filepath.Join(dir, "fixture.yaml")
	resultPath := filepath.Join(dir, "result.json")

	out, err := execute(t, "generate", "-o", fixturePath, "--seed", "3", "--source-size", "7", "--pattern-size", "3", "--plant", "2")
	require.NoError(t, err)
	assert.Contains(t, out, fixturePath)

	doc, err := codec.ReadFile(fixturePath)
	require.NoError(t, err)
	assert.Len(t, doc.Source, 7)
	assert.Len(t, doc.Pattern, 3)
	assert.NotEmpty(t, doc.Planted)

	out, err = execute(t, "find", fixturePath, "-o", resultPath, "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "embeddings")
	assert.Contains(t, out, "planted assignments found")
	assert.Contains(t, out, "source (7×7)")

	res, err := codec.ReadFile(resultPath)
	require.NoError(t, err)
	found := combinatorics.NewSet()
	for _, m := range res.Matches {
		found.Add(m)
	}
	for _, p := range doc.PlantedAssignments() {
		assert.True(t, found.Has(p), "planted %v not in matches", p)
	}
}

func TestFind_BothAlgorithmsAgree(t *testing.T) {
	dir := t.TempDir()
	src := matrix.MustDense([][]int{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	pat := matrix.MustDense([][]int{
		{0, 1},
		{0, 0},
	})
	doc, err := codec.NewDocument(src, pat, true)
	require.NoError(t, err)
	path := filepath.Join(dir, "cycle.toml")
	require.NoError(t, codec.WriteFile(path, doc))

	for _, algo := range []string{"fast", "brute"} {
		out, err := execute(t, "find", path, "--algo", algo)
		require.NoError(t, err, algo)
		assert.Contains(t, out, "3 embeddings", algo)
		assert.Contains(t, out, "[0 1]", algo)
		assert.Contains(t, out, "[2 0]", algo)
	}
}

func TestFind_HardFlagOverridesDocument(t *testing.T) {
	dir := t.TempDir()
	src := matrix.MustDense([][]int{
		{0, 1, 1},
		{1, 0, 0},
		{0, 0, 0},
	})
	pat := matrix.MustDense([][]int{
		{0, 1},
		{0, 0},
	})
	doc, err := codec.NewDocument(src, pat, false)
	require.NoError(t, err)
	path := filepath.Join(dir, "f.json")
	require.NoError(t, codec.WriteFile(path, doc))

	// Soft: 0→1, 1→0 and 0→2. Hard drops the first two (reverse edge present).
	out, err := execute(t, "find", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 embeddings")

	out, err = execute(t, "find", path, "--hard")
	require.NoError(t, err)
	assert.Contains(t, out, "1 embeddings")
}

func TestFind_MissingPlanted(t *testing.T) {
	dir := t.TempDir()
	src := matrix.MustDense([][]int{
		{0, 1},
		{0, 0},
	})
	pat := matrix.MustDense([][]int{
		{0, 1},
		{0, 0},
	})
	doc, err := codec.NewDocument(src, pat, false)
	require.NoError(t, err)
	doc.SetPlanted([]combinatorics.Sequence{{1, 0}})
	path := filepath.Join(dir, "f.json")
	require.NoError(t, codec.WriteFile(path, doc))

	out, err := execute(t, "find", path)
	require.ErrorIs(t, err, errPlantedMissing)
	assert.Contains(t, out, "1 of 1 planted assignments missing")
}

func TestFind_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "find", filepath.Join(dir, "absent.json"))
	require.Error(t, err)

	_, err = execute(t, "find")
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("{}"), 0o644))
	_, err = execute(t, "find", bad)
	require.ErrorIs(t, err, codec.ErrUnknownFormat)
}

func TestGenerate_RequiresOutput(t *testing.T) {
	_, err := execute(t, "generate")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "output"))
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "verify", "--trials", "4", "--workers", "2", "--seed", "9", "--dump-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "verified on 4 trials")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVerify_Config(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "profile.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("trials = 2\nseed = 4\nmodes = [\"hard\"]\n"), 0o644))

	out, err := execute(t, "verify", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "verified on 2 trials")

	// Flags override the profile.
	out, err = execute(t, "verify", "--config", cfg, "--trials", "3", "--oracle=false")
	require.NoError(t, err)
	assert.Contains(t, out, "verified on 3 trials")

	badCfg := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(badCfg, []byte("trials = 2\nbogus = 1\n"), 0o644))
	_, err = execute(t, "verify", "--config", badCfg)
	require.Error(t, err)
}
