package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodlab/chartbench/internal/contract"
	"github.com/lodlab/chartbench/schema"
)

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "3.14", fmtFloat(3.14159))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(1)
	assert.Equal(t, "3.1", fmtFloat(3.14159))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"a": 1}))

	var parsed map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, 1, parsed["a"])
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, records)
}

func TestWriteWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	err := writeWithFile(path, func(w io.Writer) error {
		_, err := w.Write([]byte("hello"))
		return err
	}, "Wrote test")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestGetMaxValuePreviewWidth(t *testing.T) {
	t.Run("explicit width override", func(t *testing.T) {
		cfg := &contract.Config{Width: 160}
		assert.Equal(t, 72, getMaxValuePreviewWidth(cfg))
	})

	t.Run("narrow terminal clamps to minimum", func(t *testing.T) {
		cfg := &contract.Config{Width: 40}
		assert.Equal(t, 16, getMaxValuePreviewWidth(cfg))
	})

	t.Run("mid width passes through", func(t *testing.T) {
		cfg := &contract.Config{Width: 100}
		assert.Equal(t, 45, getMaxValuePreviewWidth(cfg))
	})
}

func TestPrintDispatchUnsupportedParquet(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, Precision: 1}

	err := PrintQueryResult(&schema.QueryResult{Kind: schema.RawKind}, cfg, time.Millisecond)
	assert.Error(t, err)

	err = PrintCheckResults(schema.CheckResult{}, cfg, time.Millisecond)
	assert.Error(t, err)

	err = PrintProfiles(schema.ProfilesRenderModel{}, cfg)
	assert.Error(t, err)
}
