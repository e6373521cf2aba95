package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetdivider/internal/config"
	"github.com/streetdivider/internal/divider"
)

func testSettings() *config.Settings {
	return &config.Settings{
		DictSource:   "embedded",
		DictEncoding: "utf-8",
		Workers:      2,
		LogLevel:     "disabled",
	}
}

func run(t *testing.T, settings *config.Settings, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(settings)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := run(t, testSettings(), "", "demo")
	require.NoError(t, err)
	assert.Equal(t, "Starting Streetdivider\n"+
		"Location(street=1;2 23a, houseNumber=null, houseNumberAffix=null)\n"+
		"Location(street=Markt-Str., houseNumber=25, houseNumberAffix=null)\n", out)
}

func TestParseArgs(t *testing.T) {
	out, err := run(t, testSettings(), "", "parse", "Bundesstraße 1 25 1/3", "   ")
	require.NoError(t, err)
	assert.Equal(t, "Location(street=Bundesstraße 1, houseNumber=25, houseNumberAffix=1/3)\n"+
		`"   ": `+divider.ErrEmptyInput.Error()+"\n", out)
}

func TestParseStdinJSON(t *testing.T) {
	out, err := run(t, testSettings(), "L 1 5\n\nHeideweg2a\n", "parse", "--json")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var got []parseOutput
	for dec.More() {
		var res parseOutput
		require.NoError(t, dec.Decode(&res))
		got = append(got, res)
	}
	require.Len(t, got, 2)
	assert.Equal(t, divider.Location{Street: "L 1", HouseNumber: 5}, *got[0].Location)
	assert.Equal(t, divider.Location{Street: "Heideweg", HouseNumber: 2, Affix: "a"}, *got[1].Location)
}

func TestParseExpand(t *testing.T) {
	out, err := run(t, testSettings(), "", "parse", "--expand", "Heideweg 3-5", "Heideweg 32/5")
	require.NoError(t, err)
	assert.Equal(t, "Location(street=Heideweg, houseNumber=3, houseNumberAffix=-5)\n"+
		"  house numbers: 3, 4, 5\n"+
		"Location(street=Heideweg, houseNumber=32, houseNumberAffix=/5)\n", out)
}

func TestParsePostalWithoutLibpostal(t *testing.T) {
	out, err := run(t, testSettings(), "", "parse", "--postal", "Gartenstr. 25")
	require.NoError(t, err)
	assert.Contains(t, out, "Location(street=Gartenstr., houseNumber=25, houseNumberAffix=null)")
}

func TestBatch(t *testing.T) {
	out, err := run(t, testSettings(), "Heideweg 3-5\n\nD 4, 3\n1;2 23a\n", "batch", "-")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		batchHeader,
		{"Heideweg 3-5", "Heideweg", "3", "-5", ""},
		{"", "", "", "", divider.ErrEmptyInput.Error()},
		{"D 4, 3", "D 4", "3", "", ""},
		{"1;2 23a", "1;2 23a", "", "", ""},
	}, records)
}

func TestBatchLatin1File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addresses.txt")
	// "Allertshäuser Straße 25a" in ISO-8859-1
	data := []byte("Allertsh\xe4user Stra\xdfe 25a\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out, err := run(t, testSettings(), "", "batch", "--encoding", "latin1", "--workers", "1", path)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Allertshäuser Straße 25a", "Allertshäuser Straße", "25", "a", ""}, records[1])
}

func TestBatchMissingFile(t *testing.T) {
	_, err := run(t, testSettings(), "", "batch", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestFileDictionarySource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streets.txt")
	require.NoError(t, os.WriteFile(path, []byte("# local\nPlatz der 7 Linden\n"), 0o644))

	out, err := run(t, testSettings(), "", "--dict-source", "file:"+path, "parse", "Platz der 7 Linden 12")
	require.NoError(t, err)
	assert.Equal(t, "Location(street=Platz der 7 Linden, houseNumber=12, houseNumberAffix=null)\n", out)
}

func TestUnknownDictionarySource(t *testing.T) {
	for _, source := range []string{"ftp", "file:"} {
		_, err := run(t, testSettings(), "", "--dict-source", source, "demo")
		assert.Error(t, err, source)
	}
}
