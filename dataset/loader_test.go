package dataset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaovitor2710/dashboard-ibge/dataset"
)

const sampleCSV = `municipio,estado,populacao_estimada_2024,idh_2010,latitude,longitude
São Paulo,SP,12000000,0.805,-23.5505,-46.6333
Rio de Janeiro,RJ,6000000,0.799,-22.9068,-43.1729
Campinas,SP,1200000,0.805,-22.9099,-47.0626
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dados_lista.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesHeaderAndRows(t *testing.T) {
	path := writeSample(t, sampleCSV)

	table, err := dataset.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, table.NumRows())
	assert.Equal(t, 6, len(table.Columns))
	assert.True(t, table.HasColumn("populacao_estimada_2024"))
	assert.Equal(t, "São Paulo", table.Value(table.Rows[0], dataset.ColMunicipio))
}

func TestLoadIsMemoizedPerPath(t *testing.T) {
	path := writeSample(t, sampleCSV)

	first, err := dataset.Load(path)
	require.NoError(t, err)

	// Rewriting the file must not be visible: the second Load has to come
	// from the cache, not from a re-read.
	require.NoError(t, os.WriteFile(path, []byte("municipio,estado\nOuro Preto,MG\n"), 0o644))

	second, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 3, second.NumRows())

	// After invalidation the new content shows up.
	dataset.Invalidate(path)
	third, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, third.NumRows())
	assert.Equal(t, []string{"municipio", "estado"}, third.Columns)
}

func TestLoadMissingFileIsFatal(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestLoadMalformedFileIsFatal(t *testing.T) {
	path := writeSample(t, "municipio,estado\n\"unterminated\n")
	_, err := dataset.Load(path)
	require.Error(t, err)
}

func TestExportRoundTrip(t *testing.T) {
	path := writeSample(t, sampleCSV)
	table, err := dataset.Load(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteCSV(&buf, table))

	outPath := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(outPath, buf.Bytes(), 0o644))

	reloaded, err := dataset.Load(outPath)
	require.NoError(t, err)
	assert.Equal(t, table.Columns, reloaded.Columns)
	assert.Equal(t, table.NumRows(), reloaded.NumRows())
	assert.Equal(t, table.Rows, reloaded.Rows)
}
