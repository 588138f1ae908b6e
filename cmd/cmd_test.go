package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gestures "github.com/ThatOtherAndrew/qdollar/internal/gesture"
	"github.com/ThatOtherAndrew/qdollar/internal/models"
	"github.com/ThatOtherAndrew/qdollar/pkg/qdollar"
)

const (
	squareJSON   = `[{"x":0,"y":0},{"x":0,"y":1},{"x":1,"y":1},{"x":1,"y":0},{"x":0,"y":0}]`
	triangleJSON = `[{"x":0,"y":0},{"x":0.5,"y":1},{"x":1,"y":0},{"x":0,"y":0}]`
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configDir, learnCommand, execMatch, plotOutput, plotNormalized = "", "", false, "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLearnRecognizeRemove(t *testing.T) {
	dir := t.TempDir()
	square := writeFile(t, dir, "square.json", squareJSON)
	triangle := writeFile(t, dir, "triangle.json", triangleJSON)

	out, err := run(t, "--config-dir", dir, "learn", "square", square, square)
	require.NoError(t, err)
	assert.Contains(t, out, "Gesture saved: square (2 template(s))")

	_, err = run(t, "--config-dir", dir, "learn", "triangle", "-c", "true", triangle)
	require.NoError(t, err)

	out, err = run(t, "--config-dir", dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "square (2 template(s))")
	assert.Contains(t, out, "triangle (1 template(s)): true")

	out, err = run(t, "--config-dir", dir, "recognize", triangle)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "triangle\t1.000\t"), out)

	out, err = run(t, "--config-dir", dir, "remove", "triangle")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed gesture: triangle")

	_, err = run(t, "--config-dir", dir, "remove", "triangle")
	assert.EqualError(t, err, "gesture not found: triangle")

	out, err = run(t, "--config-dir", dir, "recognize", triangle)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "square\t"), out)
}

func TestRecognize_EmptyStore(t *testing.T) {
	dir := t.TempDir()
	square := writeFile(t, dir, "square.json", squareJSON)

	_, err := run(t, "--config-dir", dir, "recognize", square)
	assert.ErrorIs(t, err, qdollar.ErrNoRegisteredGestures)

	out, err := run(t, "--config-dir", dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No gestures registered")
}

func TestRecognize_Exec(t *testing.T) {
	dir := t.TempDir()
	square := writeFile(t, dir, "square.json", squareJSON)
	marker := filepath.Join(dir, "ran")

	_, err := run(t, "--config-dir", dir, "learn", "square", "-c", "touch "+marker, square)
	require.NoError(t, err)

	_, err = run(t, "--config-dir", dir, "recognize", "--exec", square)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
}

func TestPlot(t *testing.T) {
	dir := t.TempDir()
	triangle := writeFile(t, dir, "triangle.json", triangleJSON)
	output := filepath.Join(dir, "triangle.svg")
	normalized := filepath.Join(dir, "triangle_norm.svg")

	out, err := run(t, "plot", triangle, "-o", output, "--normalized", normalized)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+output)
	assert.FileExists(t, output)
	assert.FileExists(t, normalized)
}

func TestLearn_TooShort(t *testing.T) {
	dir := t.TempDir()
	dot := writeFile(t, dir, "dot.json", `[{"x":1,"y":1}]`)

	_, err := run(t, "--config-dir", dir, "learn", "dot", dot)
	assert.Error(t, err)
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, err := run(t, "completion", shell)
		require.NoError(t, err, shell)
		assert.Contains(t, out, "qdollar", shell)
	}

	_, err := run(t, "completion", "tcsh")
	assert.EqualError(t, err, "unsupported shell: tcsh")

	_, err = run(t, "completion")
	assert.Error(t, err)
}

func TestCompleteGestureNames(t *testing.T) {
	dir := t.TempDir()
	square := writeFile(t, dir, "square.json", squareJSON)
	triangle := writeFile(t, dir, "triangle.json", triangleJSON)
	_, err := run(t, "--config-dir", dir, "learn", "square", square)
	require.NoError(t, err)
	_, err = run(t, "--config-dir", dir, "learn", "triangle", triangle)
	require.NoError(t, err)

	configDir = dir
	names, directive := completeGestureNames(removeCmd, nil, "")
	assert.Equal(t, []string{"square", "triangle"}, names)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	names, _ = completeGestureNames(removeCmd, []string{"square"}, "")
	assert.Empty(t, names)
}

func TestRunMatched(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "ran")
	stored := []models.GestureConfig{
		{Name: "square", Command: "touch " + marker},
		{Name: "triangle"},
	}

	err := runMatched(stored, qdollar.Result{Name: "circle", Score: 1})
	assert.ErrorIs(t, err, gestures.ErrGestureNotFound)

	assert.NoError(t, runMatched(stored, qdollar.Result{Name: "triangle", Score: 1}))

	require.NoError(t, runMatched(stored, qdollar.Result{Name: "square", Score: 1}))
	assert.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
}
