package core

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimeout(t *testing.T) {
	d, err := ParseTimeout("10s")
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, d)

	_, err = ParseTimeout("not-a-duration")
	require.Error(t, err)

	_, err = ParseTimeout("-5s")
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shrink.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"command = [\"./crashcheck\", \"--strict\"]\ntimeout = \"2m\"\n",
	), 0o644))

	opts, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, []string{"./crashcheck", "--strict"}, opts.Command)
	require.Equal(t, 2*time.Minute, opts.Timeout)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shrink.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"command = [\"true\"]\ntimeout = \"soon\"\n",
	), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestWriteRandomReproducible(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")

	require.NoError(t, WriteRandom(a, 7, 128))
	require.NoError(t, WriteRandom(b, 7, 128))
	require.NoError(t, WriteRandom(c, 8, 128))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	dc, err := os.ReadFile(c)
	require.NoError(t, err)

	require.Len(t, da, 128)
	require.Equal(t, da, db, "same seed must produce the same bytes")
	require.NotEqual(t, da, dc, "different seeds should diverge")
}

func TestWriteRandomRejectsNegativeSize(t *testing.T) {
	err := WriteRandom(filepath.Join(t.TempDir(), "x"), 1, -1)
	require.Error(t, err)
}

// TestRunShrinksAroundPattern shrinks a file against a shell check that
// fails while the file still contains a marker; the minimized output
// must be exactly the marker.
func TestRunShrinksAroundPattern(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "crash.bin")
	output := filepath.Join(dir, "crash.min")
	require.NoError(t, os.WriteFile(input, []byte("xxxmagicyyyzzz"), 0o644))

	opts := Options{
		Command: []string{"sh", "-c", `! grep -q magic "$0"`},
		Timeout: time.Minute,
	}
	require.NoError(t, Run(input, output, opts))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "magic", string(got))
}

// TestRunRejectsPassingInput checks the guard against shrinking an input
// that does not reproduce the failure in the first place.
func TestRunRejectsPassingInput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "fine.bin")
	require.NoError(t, os.WriteFile(input, []byte("nothing wrong here"), 0o644))

	opts := Options{Command: []string{"true"}, Timeout: time.Minute}
	err := Run(input, filepath.Join(dir, "out"), opts)
	require.Error(t, err)
	require.ErrorContains(t, err, "did not fail")
}
