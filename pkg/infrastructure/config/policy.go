package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

// ErrInvalidPolicy is returned for policy files that do not parse or validate
var ErrInvalidPolicy = errors.New("invalid BOM policy")

// policyFile is the YAML layout of a BOM policy:
//
//	required_categories: [resistor, capacitor, microcontroller]
//	min_score: 0.75
//	workers: 8
//	fail_on_unknown: true
type policyFile struct {
	RequiredCategories []string `yaml:"required_categories"`
	MinScore           *float64 `yaml:"min_score"`
	Workers            int      `yaml:"workers"`
	FailOnUnknown      bool     `yaml:"fail_on_unknown"`
}

// ParsePolicy decodes a YAML policy. Unknown keys are rejected.
func ParsePolicy(r io.Reader) (entities.BOMPolicy, error) {
	var file policyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return entities.BOMPolicy{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	policy := entities.DefaultBOMPolicy()
	if file.MinScore != nil {
		policy.MinScore = *file.MinScore
	}
	policy.Workers = file.Workers
	policy.FailOnUnknown = file.FailOnUnknown

	for _, name := range file.RequiredCategories {
		category, ok := entities.ParseCategory(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return entities.BOMPolicy{}, fmt.Errorf("%w: unknown category %q", ErrInvalidPolicy, name)
		}
		policy.RequiredCategories = append(policy.RequiredCategories, category)
	}

	if err := policy.Validate(); err != nil {
		return entities.BOMPolicy{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	return policy, nil
}

// LoadPolicy reads a YAML policy file
func LoadPolicy(path string) (entities.BOMPolicy, error) {
	f, err := os.Open(path)
	if err != nil {
		return entities.BOMPolicy{}, fmt.Errorf("failed to open policy file: %w", err)
	}
	defer f.Close()
	return ParsePolicy(f)
}

// Policy resolves the BOM policy for this configuration: the policy file
// when MPN_POLICY_FILE is set, else the default, with MPN_MIN_SCORE and
// MPN_WORKERS overriding either.
func (c *Config) Policy() (entities.BOMPolicy, error) {
	policy := entities.DefaultBOMPolicy()
	if path := c.GetString(EnvPolicyFile, ""); path != "" {
		p, err := LoadPolicy(path)
		if err != nil {
			return entities.BOMPolicy{}, err
		}
		policy = p
	}
	policy.MinScore = c.GetFloat(EnvMinScore, policy.MinScore)
	policy.Workers = c.GetInt(EnvWorkers, policy.Workers)
	if err := policy.Validate(); err != nil {
		return entities.BOMPolicy{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	return policy, nil
}
