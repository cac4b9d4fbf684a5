package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRun_RoundTrip(t *testing.T) {
	input := []byte("a file worth compressing, compressing, compressing")

	for _, ascii := range []bool{false, true} {
		dir := t.TempDir()
		in := writeTemp(t, dir, "in.txt", input)
		packed := filepath.Join(dir, "packed")
		unpacked := filepath.Join(dir, "out.txt")

		var flags []string
		if ascii {
			flags = append(flags, "-ascii")
		}

		var stderr bytes.Buffer
		args := append([]string{"compress", "-verify"}, flags...)
		require.Equal(t, exitOK, run(append(args, in, packed), &stderr), stderr.String())

		// Flags may also follow the positional arguments.
		args = append([]string{"decompress", packed, unpacked}, flags...)
		require.Equal(t, exitOK, run(args, &stderr), stderr.String())

		actual, err := os.ReadFile(unpacked)
		require.NoError(t, err)
		require.Equal(t, input, actual)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	for _, command := range []string{"compress", "decompress"} {
		dir := t.TempDir()
		in := writeTemp(t, dir, "empty", nil)
		out := filepath.Join(dir, "out")

		var stderr bytes.Buffer
		require.Equal(t, exitOK, run([]string{command, in, out}, &stderr), stderr.String())

		fi, err := os.Stat(out)
		require.NoError(t, err)
		require.Equal(t, int64(0), fi.Size())
	}
}

func TestRun_InvalidInputPath(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	var stderr bytes.Buffer
	code := run([]string{"compress", filepath.Join(dir, "missing"), out}, &stderr)
	require.Equal(t, exitError, code)
	require.Contains(t, stderr.String(), "input path is missing or unreadable")
	require.Contains(t, stderr.String(), "usage: hcz compress")

	_, err := os.Stat(out)
	require.True(t, os.IsNotExist(err), "output created for invalid input")

	stderr.Reset()
	require.Equal(t, exitError, run([]string{"decompress", dir, out}, &stderr))
}

func TestRun_Usage(t *testing.T) {
	var stderr bytes.Buffer
	require.Equal(t, exitUsage, run(nil, &stderr))
	require.Contains(t, stderr.String(), "usage:")

	stderr.Reset()
	require.Equal(t, exitUsage, run([]string{"squash", "a", "b"}, &stderr))

	stderr.Reset()
	require.Equal(t, exitUsage, run([]string{"compress", "only-one"}, &stderr))

	stderr.Reset()
	require.Equal(t, exitUsage, run([]string{"decompress", "-verify", "a", "b"}, &stderr))
}

func TestRun_CorruptArchive(t *testing.T) {
	dir := t.TempDir()
	in := writeTemp(t, dir, "bogus", []byte{0, 0, 0, 9, 0, 0, 0, 9, 0xff, 0xff})
	out := filepath.Join(dir, "out")

	var stderr bytes.Buffer
	require.Equal(t, exitError, run([]string{"decompress", in, out}, &stderr))
	require.Contains(t, stderr.String(), "corrupt archive")
}

func TestRun_Verbose(t *testing.T) {
	dir := t.TempDir()
	in := writeTemp(t, dir, "in", []byte("aab"))

	var stderr bytes.Buffer
	require.Equal(t, exitOK, run([]string{"compress", "-v", in, filepath.Join(dir, "out")}, &stderr))
	require.Contains(t, stderr.String(), "xxhash")
	require.Contains(t, stderr.String(), "Encode(97) = \"1\"")
}
