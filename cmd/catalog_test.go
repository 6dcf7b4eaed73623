package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCatalog(t *testing.T, category string) catalogOutput {
	t.Helper()
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)

	require.NoError(t, printCatalog(c, category))

	var out catalogOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestPrintCatalog(t *testing.T) {
	out := runCatalog(t, "")
	assert.Len(t, out.Modules, 8)
	assert.Equal(t, 8, out.Progress.Total)
	assert.Equal(t, 0, out.Progress.Percentage)
	assert.Len(t, out.Categories, 3)
}

func TestPrintCatalog_Filtered(t *testing.T) {
	assert.Len(t, runCatalog(t, "AI").Modules, 2)
	assert.Empty(t, runCatalog(t, "Robotics").Modules)
}
