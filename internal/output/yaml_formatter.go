package output

import "gopkg.in/yaml.v3"

// YAMLFormatter serializes the result as a YAML document.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(result Result) ([]byte, error) {
	return yaml.Marshal(result)
}
