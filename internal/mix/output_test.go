package mix

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReaction() *Reaction {
	return &Reaction{
		Fragments: []Fragment{
			{Name: "backbone", Length: 5.0, Conc: 100.0},
			{Name: "insert 1", Length: 1.0, Conc: 150.0},
		},
		Ratio: 2.0,
		Total: 0.5,
	}
}

func TestNewOutput(t *testing.T) {
	r := testReaction()
	results, err := r.Plan()
	require.NoError(t, err)

	o, err := newOutput(r, results)
	require.NoError(t, err)

	// values are rounded to the two decimals shown to the user
	assert.Equal(t, 0.17, o.Fragments[0].Moles)
	assert.Equal(t, 550.0, o.Fragments[0].Mass)
	assert.Equal(t, 5.5, o.Fragments[0].Volume)
	assert.Equal(t, 0.33, o.Fragments[1].Moles)
	assert.Equal(t, 220.0, o.Fragments[1].Mass)
	assert.Equal(t, 1.47, o.Fragments[1].Volume)

	// the total is rounded after summing, not a sum of rounded values
	assert.Equal(t, 6.97, o.TotalVolume)

	assert.Equal(t, BpMolarMass, o.BpMass)
	assert.NotEmpty(t, o.Time)
}

func TestOutputTable(t *testing.T) {
	r := testReaction()
	results, err := r.Plan()
	require.NoError(t, err)

	o, err := newOutput(r, results)
	require.NoError(t, err)

	table := o.Table()
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")

	// header + one row per fragment + total
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "volume (µL)")
	assert.Contains(t, lines[1], "backbone")
	assert.Contains(t, lines[1], "5.50")
	assert.Contains(t, lines[2], "insert 1")
	assert.Contains(t, lines[2], "1.47")
	assert.Contains(t, lines[3], "total")
	assert.Contains(t, lines[3], "6.97")
}

func TestWriteJSON(t *testing.T) {
	r := testReaction()
	results, err := r.Plan()
	require.NoError(t, err)

	o, err := newOutput(r, results)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mix.json")
	require.NoError(t, o.writeJSON(path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	var read Output
	require.NoError(t, json.Unmarshal(contents, &read))

	assert.Equal(t, o.Fragments, read.Fragments)
	assert.Equal(t, 6.97, read.TotalVolume)
	assert.Equal(t, 2.0, read.Ratio)
	assert.Equal(t, 0.5, read.Total)
}
