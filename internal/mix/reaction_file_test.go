package mix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mibohl/cloning-calculator/config"
)

func writeReactionFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reaction.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestReadReactionFile(t *testing.T) {
	path := writeReactionFile(t, `
ratio = 3.0
total = 0.25

[[fragments]]
name = "pUC19"
length = 2.7
conc = 80.0

[[fragments]]
name = "gfp insert"
length = 0.7
conc = 120.0
`)

	r, err := ReadReactionFile(path, config.New())
	require.NoError(t, err)

	assert.Equal(t, 3.0, r.Ratio)
	assert.Equal(t, 0.25, r.Total)
	require.Len(t, r.Fragments, 2)
	assert.Equal(t, Fragment{Name: "pUC19", Length: 2.7, Conc: 80.0}, r.Fragments[0])
	assert.Equal(t, Fragment{Name: "gfp insert", Length: 0.7, Conc: 120.0}, r.Fragments[1])
}

// ratio, total and fragment names may be omitted and fall back to defaults
func TestReadReactionFileDefaults(t *testing.T) {
	path := writeReactionFile(t, `
[[fragments]]
length = 5.0
conc = 100.0

[[fragments]]
length = 1.0
conc = 150.0
`)

	conf := config.New()
	r, err := ReadReactionFile(path, conf)
	require.NoError(t, err)

	assert.Equal(t, conf.Defaults.Ratio, r.Ratio)
	assert.Equal(t, conf.Defaults.Total, r.Total)
	assert.Equal(t, "backbone", r.Fragments[0].Name)
	assert.Equal(t, "insert 1", r.Fragments[1].Name)
	assert.Equal(t, conf.BpMass, r.BpMass)
}

func TestReadReactionFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadReactionFile(filepath.Join(t.TempDir(), "nope.toml"), config.New())
		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeReactionFile(t, "ratio = [[[")
		_, err := ReadReactionFile(path, config.New())
		assert.Error(t, err)
	})

	t.Run("backbone only", func(t *testing.T) {
		path := writeReactionFile(t, `
[[fragments]]
length = 5.0
conc = 100.0
`)
		_, err := ReadReactionFile(path, config.New())
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}
