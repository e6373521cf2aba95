package streets

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	list := Default()

	require.NotEmpty(t, list)
	assert.Contains(t, list, "Bundesstraße 1")
	assert.Contains(t, list, "Straße des 17. Juni")
	assert.Contains(t, list, "1 Maja")
	assert.Contains(t, list, "D 4")
	for _, s := range list {
		assert.False(t, strings.HasPrefix(s, "#"), "comment leaked: %q", s)
		assert.NotEmpty(t, s)
	}
}

func TestRead(t *testing.T) {
	input := "# header\n\n  Straße 73  \r\nB 4\nStraße 6;\n;;\n"

	list, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Straße 73", "B 4", "Straße 6"}, list)
}

func TestDecodeReader(t *testing.T) {
	tests := []struct {
		name  string
		enc   string
		input []byte
		want  string
	}{
		{"latin1", "latin1", []byte{'S', 't', 'r', 'a', 0xDF, 'e'}, "Straße"},
		{"windows-1252", "windows-1252", []byte{'M', 0xFC, 'h', 'l', 'w', 'e', 'g'}, "Mühlweg"},
		{"utf-8 with BOM", "utf-8", append([]byte{0xEF, 0xBB, 0xBF}, "Straße"...), "Straße"},
		{"default is utf-8", "", []byte("Straße"), "Straße"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := DecodeReader(strings.NewReader(string(tt.input)), tt.enc)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}

	_, err := DecodeReader(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streets.txt")
	require.NoError(t, os.WriteFile(path, []byte{'S', 't', 'r', 'a', 0xDF, 'e', ' ', '6', '\n'}, 0o644))

	list, err := ReadFile(path, "latin1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Straße 6"}, list)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"), "")
	assert.Error(t, err)
}
