package titles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	data, err := Encode([]Entry{
		{Name: "Sword", RareType: "Legendary"},
		{Name: "Shield", RareType: ""},
	})
	require.NoError(t, err)

	want := `[
  {
    "name": "Sword",
    "rareType": "Legendary"
  },
  {
    "name": "Shield",
    "rareType": ""
  }
]`
	assert.Equal(t, want, string(data))
}

func TestEncode_Empty(t *testing.T) {
	for _, entries := range [][]Entry{nil, {}} {
		data, err := Encode(entries)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	}
}

func TestEncode_KeepsUnicodeAndMarkup(t *testing.T) {
	data, err := Encode([]Entry{{Name: "勇者 <Hero> & Co", RareType: "伝説"}})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"name": "勇者 <Hero> & Co"`)
	assert.Contains(t, string(data), `"rareType": "伝説"`)
	assert.NotContains(t, string(data), `\u`)
}

func TestEncode_KeepsLineSeparatorsRaw(t *testing.T) {
	entries := []Entry{
		{Name: "x\u2028y\u2029z"},
		{Name: `literal \u2028 text`, RareType: `\\u2029`},
	}
	data, err := Encode(entries)
	require.NoError(t, err)

	assert.Contains(t, string(data), "\"name\": \"x\u2028y\u2029z\"")
	assert.Contains(t, string(data), `"name": "literal \\u2028 text"`)
	assert.Contains(t, string(data), `"rareType": "\\\\u2029"`)

	var decoded []Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entries, decoded)
}

func TestEncode_EscapesJSONSpecials(t *testing.T) {
	entry := Entry{Name: "quote \" and \\ backslash\nnewline"}
	data, err := Encode([]Entry{entry})
	require.NoError(t, err)

	var decoded []Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []Entry{entry}, decoded)
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "title.json")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than the new output"), 0644))

	require.NoError(t, WriteFile(path, []Entry{{Name: "A"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"A\",\n    \"rareType\": \"\"\n  }\n]", string(data))
}

func TestWriteFile_MissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "title.json")

	err := WriteFile(path, []Entry{{Name: "A"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
