package app

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeminter/codeminter/internal/generator"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestGenerateEndToEnd(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "",
		"generate", "10", "4",
		"--charset", "numeric",
		"--filename", "codes.csv",
		"--maxlines", "5",
		"--outdir", dir,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Codes saved successfully.")

	seen := make(map[string]struct{})

	for _, name := range []string{"codes_1.csv", "codes_2.csv"} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, f.Close())
		require.NoError(t, err)
		require.Len(t, rows, 5, "%s must hold exactly 5 rows", name)

		for _, row := range rows {
			require.Len(t, row, 1)
			assert.Len(t, row[0], 4)
			assert.NotContainsf(t, seen, row[0], "duplicate code %s", row[0])

			for _, r := range row[0] {
				assert.Contains(t, "0123456789", string(r))
			}

			seen[row[0]] = struct{}{}
		}
	}

	assert.Len(t, seen, 10)
}

func TestGenerateCapacityError(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "",
		"generate", "100000", "1",
		"--charset", "numeric",
		"--filename", "codes.csv",
		"--maxlines", "0",
		"--outdir", dir,
	)
	require.ErrorIs(t, err, generator.ErrCapacityExceeded)

	// no file may be written on a capacity failure
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestGenerateRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name    string
		count   string
		length  string
		wantErr error
	}{
		{"count not a number", "many", "4", ErrCountNotInteger},
		{"count zero", "0", "4", ErrCountNotInteger},
		{"length not a number", "10", "long", ErrLengthNotInteger},
		{"length zero", "10", "0", ErrLengthNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, "",
				"generate", tt.count, tt.length,
				"--charset", "numeric",
				"--filename", "codes.csv",
				"--maxlines", "0",
				"--outdir", t.TempDir(),
			)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateCustomCharsetPrompt(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "01\n",
		"generate", "2", "1",
		"--charset", "custom",
		"--filename", "codes.csv",
		"--maxlines", "0",
		"--outdir", dir,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Enter a custom character set: ")

	f, err := os.Open(filepath.Join(dir, "codes.csv"))
	require.NoError(t, err)

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, f.Close())
	require.NoError(t, err)

	assert.ElementsMatch(t, [][]string{{"0"}, {"1"}}, rows)
}

func TestGenerateCustomCharsetEmptyPromptAborts(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "\n",
		"generate", "2", "1",
		"--charset", "custom",
		"--filename", "codes.csv",
		"--maxlines", "0",
		"--outdir", dir,
	)
	require.ErrorIs(t, err, ErrEmptyCustomCharset)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestGeneratePrefixSuffixFlags(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "",
		"generate", "5", "3",
		"--charset", "numeric",
		"--prefix", "X-",
		"--suffix", "",
		"--filename", "codes.csv",
		"--maxlines", "0",
		"--outdir", dir,
	)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "codes.csv"))
	require.NoError(t, err)

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, f.Close())
	require.NoError(t, err)
	require.Len(t, rows, 5)

	for _, row := range rows {
		assert.True(t, strings.HasPrefix(row[0], "X-"), "code %q misses prefix", row[0])
		assert.Len(t, row[0], 5)
	}
}
