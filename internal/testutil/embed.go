// Package testutil holds test data shared by the test suites.
package testutil

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Case is one end-to-end program with its expected results.
type Case struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	// Output is everything the program prints.
	Output string `yaml:"output"`
	// Diagnostics lists the scan and parse errors in reporting order.
	Diagnostics []string `yaml:"diagnostics"`
	// RuntimeError is the runtime error, if execution fails.
	RuntimeError string `yaml:"runtime_error"`
}

// LoadCases decodes the named YAML case file.
func LoadCases(name string) ([]Case, error) {
	data, err := ReadTestData(name)
	if err != nil {
		return nil, err
	}
	var cases []Case
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cases); err != nil {
		return nil, fmt.Errorf("failed to decode test cases '%s': %w", name, err)
	}
	return cases, nil
}
