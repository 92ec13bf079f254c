// SPDX-License-Identifier: MIT

// yaml.go — reaction-network ingestion from YAML documents.
//
// Document shape:
//
//	reactions:
//	  - name: birth          # optional label
//	    rate: 0.8            # mass-action rate constant, ≥ 0
//	    reactants: {X: 1}    # species → multiplicity (omit for ∅)
//	    products:  {X: 2}
//
// Decoding failures and validation failures both surface as ErrBadDocument;
// the underlying cause is preserved through %w for inspection.

package markov

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlNetwork struct {
	Reactions []yamlReaction `yaml:"reactions"`
}

type yamlReaction struct {
	Name      string         `yaml:"name"`
	Rate      float64        `yaml:"rate"`
	Reactants map[string]int `yaml:"reactants"`
	Products  map[string]int `yaml:"products"`
}

// ParseNetworkYAML decodes a reaction network from a YAML document and
// validates it through NewNetwork.
func ParseNetworkYAML(data []byte) (*Network, error) {
	var doc yamlNetwork
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	if len(doc.Reactions) == 0 {
		return nil, fmt.Errorf("%w: no reactions", ErrBadDocument)
	}

	reactions := make([]Reaction, len(doc.Reactions))
	for i, r := range doc.Reactions {
		reactions[i] = Reaction{
			Name:      r.Name,
			Rate:      r.Rate,
			Reactants: speciesMap(r.Reactants),
			Products:  speciesMap(r.Products),
		}
	}

	net, err := NewNetwork(reactions...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	return net, nil
}

func speciesMap(m map[string]int) map[Species]int {
	if len(m) == 0 {
		return nil
	}
	out := make(map[Species]int, len(m))
	for s, n := range m {
		out[Species(s)] = n
	}

	return out
}
