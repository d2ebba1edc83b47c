// SPDX-License-Identifier: MIT

package problem

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/longpath/apsp"
	"github.com/katalvlaran/longpath/matrix"
)

// Format is an encoding of a problem file.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat resolves a format name ("yaml", "yml", "json").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// Problem is one longpath instance.
type Problem struct {
	Budget int64     `yaml:"budget" json:"budget"`
	Oracle string    `yaml:"oracle,omitempty" json:"oracle,omitempty"`
	Graph  [][]int64 `yaml:"graph" json:"graph"`
}

// Decode reads one problem from r. Unknown fields are an error.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	p := &Problem{}
	if err := dec.Decode(p); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("Decode: %w", ErrMissingGraph)
		}
		return nil, fmt.Errorf("Decode: %w", err)
	}
	if len(p.Graph) == 0 {
		return nil, fmt.Errorf("Decode: %w", ErrMissingGraph)
	}

	return p, nil
}

// Load decodes the problem file at path; "-" reads standard input.
func Load(path string) (*Problem, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return p, nil
}

// Encode writes p to w in the given format.
func (p *Problem) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
		return nil
	}

	return fmt.Errorf("Encode(%q): %w", format, ErrUnknownFormat)
}

// Matrix validates the graph rows and returns them as a cost matrix.
func (p *Problem) Matrix() (*matrix.Cost, error) {
	if len(p.Graph) == 0 {
		return nil, fmt.Errorf("Matrix: %w", ErrMissingGraph)
	}

	return matrix.FromRows(p.Graph)
}

// OracleOrDefault resolves the configured oracle, apsp.Default() when unset.
func (p *Problem) OracleOrDefault() (apsp.Oracle, error) {
	if p.Oracle == "" {
		return apsp.Default(), nil
	}

	return apsp.ByName(p.Oracle)
}
