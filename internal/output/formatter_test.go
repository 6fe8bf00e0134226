package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() Result {
	return Result{Operation: "group", Input: "1000", Output: "1 000", Locale: "en-US"}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, "1 000\n", string(out))
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	var got Result
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, sampleResult(), got)
	assert.True(t, strings.HasSuffix(string(out), "}\n"))
}

func TestJSONFormatter_OmitsEmptyLocale(t *testing.T) {
	out, err := JSONFormatter{}.Format(Result{Operation: "subunit", Input: "2", Output: "2000000000"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "locale")
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(sampleResult())
	require.NoError(t, err)
	assert.Contains(t, string(out), "output: 1 000\n")

	var got Result
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, sampleResult(), got)
}

func TestGetFormatterByName(t *testing.T) {
	tests := map[string]string{
		"console":     "console",
		"  JSON ":     "json",
		"text":        "console",
		"plain":       "console",
		"json-pretty": "json",
		"yml":         "yaml",
	}
	for name, want := range tests {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, want, f.Name(), name)
	}
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestAvailableNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"console", "json", "yaml"}, AvailableFormatterNames())
	assert.Equal(t, []string{"json-pretty", "plain", "text", "yml"}, AvailableFormatAliases())
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "upper", F: func(r Result) ([]byte, error) {
		return []byte(strings.ToUpper(r.Operation)), nil
	}}
	out, err := f.Format(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, "GROUP", string(out))
	assert.Equal(t, "upper", f.Name())
}
