package integration

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rpgo/numfmt/internal/cli"
	"github.com/rpgo/numfmt/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIWithExampleConfig(t *testing.T) {
	var stdout bytes.Buffer
	root := cli.NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", "../testdata/example_config.yaml", "group", "1000"})
	require.NoError(t, root.Execute())

	var result output.Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, "group", result.Operation)
	assert.Equal(t, "1000", result.Input)
	assert.Equal(t, "1 000", result.Output)
	assert.Equal(t, "fr-FR", result.Locale)
}

func TestCLISubunit(t *testing.T) {
	var stdout bytes.Buffer
	root := cli.NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"subunit", "2"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "2000000000\n", stdout.String())
}
