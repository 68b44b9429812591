// SPDX-License-Identifier: MIT

package algebra

import (
	"bytes"
	"errors"
	"io"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
	"gopkg.in/yaml.v3"
)

// Config is the static description of one algebra.
type Config struct {
	Name         string              `yaml:"name"`
	Signature    basis.Signature     `yaml:"signature"`
	Basis        []string            `yaml:"basis"`
	Coefficients map[string][]string `yaml:"coefficients"`
	Filters      []FilterConfig      `yaml:"filters,omitempty"`
	Products     []ProductDefinition `yaml:"products"`
}

// FilterConfig declares an extra named grade set, or overrides a default one.
type FilterConfig struct {
	Name   string `yaml:"name"`
	Grades []int  `yaml:"grades"`
}

// ProductDefinition groups the cases emitted for one product.
type ProductDefinition struct {
	Product string        `yaml:"product"`
	Cases   []ProductCase `yaml:"cases"`
}

// ProductCase is one emitted block: lhs ∘ rhs with the operands masked by
// their filters. An empty filter means "mv". ResultFilter, when set, bounds
// the support of the emitted result.
type ProductCase struct {
	Desc         string `yaml:"desc"`
	LHS          string `yaml:"lhs"`
	RHS          string `yaml:"rhs"`
	LHSFilter    string `yaml:"lhs_filter,omitempty"`
	RHSFilter    string `yaml:"rhs_filter,omitempty"`
	ResultFilter string `yaml:"result_filter,omitempty"`
	Enabled      *bool  `yaml:"enabled,omitempty"`
}

// IsEnabled reports whether the case is emitted; cases are enabled unless
// they say otherwise.
func (c ProductCase) IsEnabled() bool { return c.Enabled == nil || *c.Enabled }

// Keys lists the coefficient and filter keys the case references.
func (c ProductCase) Keys() []string {
	out := []string{c.LHS, c.RHS}
	for _, f := range []string{c.LHSFilter, c.RHSFilter, c.ResultFilter} {
		if f != "" {
			out = append(out, f)
		}
	}

	return out
}

// Parse decodes every YAML document in data. Unknown fields are rejected.
// Key references inside product cases are not resolved here.
func Parse(source string, data []byte) ([]Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var out []Config
	for {
		var cfg Config
		err := dec.Decode(&cfg)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, configWrap(source, err)
		}
		if err := cfg.validate(source); err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	if len(out) == 0 {
		return nil, configErrorf(source, "no algebra documents")
	}

	return out, nil
}

// validate checks the shape of a document; the signature and basis names are
// checked by basis.New when the algebra is built.
func (c Config) validate(source string) error {
	if c.Name == "" {
		return configErrorf(source, "document without name")
	}
	doc := source + "/" + c.Name
	if len(c.Basis) == 0 {
		return configErrorf(doc, "empty basis")
	}
	for key, lits := range c.Coefficients {
		if key == "" || len(lits) == 0 {
			return configErrorf(doc, "empty coefficient vector %q", key)
		}
	}
	for _, f := range c.Filters {
		if f.Name == "" || len(f.Grades) == 0 {
			return configErrorf(doc, "empty filter %q", f.Name)
		}
	}
	for i, p := range c.Products {
		if p.Product == "" {
			return configErrorf(doc, "product definition %d without product", i)
		}
		for j, pc := range p.Cases {
			if pc.LHS == "" || pc.RHS == "" {
				return configErrorf(doc, "%s case %d: missing operand", p.Product, j)
			}
		}
	}

	return nil
}
