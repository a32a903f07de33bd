// Copyright (c) 2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc, abdul@blockwatch.cc

package authspec

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/chainsquad/bitshares-core/bitshares"
	"github.com/chainsquad/bitshares-core/chain"
	"github.com/chainsquad/bitshares-core/codec"
)

// File is the top level layout of a declarative authority spec file.
type File struct {
	Authorities []AuthoritySpec `yaml:"authorities"`
}

// AuthoritySpec declares one custom authority in YAML form.
type AuthoritySpec struct {
	Account      string            `yaml:"account"`
	Enabled      *bool             `yaml:"enabled"`
	ValidFrom    string            `yaml:"valid_from"`
	ValidTo      string            `yaml:"valid_to"`
	Operation    string            `yaml:"operation"`
	Restrictions []RestrictionSpec `yaml:"restrictions"`
}

// RestrictionSpec declares one restriction. Value, Values, Threshold and
// Restrictions are alternatives selected by Type.
type RestrictionSpec struct {
	Type         string            `yaml:"type"`
	Field        string            `yaml:"field"`
	Value        *ValueSpec        `yaml:"value,omitempty"`
	Values       []ValueSpec       `yaml:"values,omitempty"`
	Threshold    int64             `yaml:"threshold,omitempty"`
	Restrictions []RestrictionSpec `yaml:"restrictions,omitempty"`
}

// ValueSpec declares a typed operand value.
type ValueSpec struct {
	Type   string   `yaml:"type"`
	Value  string   `yaml:"value,omitempty"`
	Values []string `yaml:"values,omitempty"`
}

// ParseFile loads a YAML spec file and compiles it into authority
// records ready for store insertion. Compiled records are statically
// validated against their operation schemas.
func ParseFile(path string) ([]*chain.CustomAuthority, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(buf)
}

// Parse compiles YAML spec data into authority records.
func Parse(buf []byte) ([]*chain.CustomAuthority, error) {
	var f File
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return nil, errors.Wrap(err, "parse spec")
	}
	out := make([]*chain.CustomAuthority, 0, len(f.Authorities))
	for i, spec := range f.Authorities {
		rec, err := compile(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "authority %d", i)
		}
		out = append(out, rec)
	}
	return out, nil
}

func compile(spec AuthoritySpec) (*chain.CustomAuthority, error) {
	acc, err := bitshares.ParseAccountID(spec.Account)
	if err != nil {
		return nil, err
	}
	from, err := bitshares.ParseTimePointSec(spec.ValidFrom)
	if err != nil {
		return nil, errors.Wrap(err, "valid_from")
	}
	to, err := bitshares.ParseTimePointSec(spec.ValidTo)
	if err != nil {
		return nil, errors.Wrap(err, "valid_to")
	}
	schema, err := codec.SchemaByName(spec.Operation)
	if err != nil {
		return nil, err
	}
	rs := make([]codec.Restriction, 0, len(spec.Restrictions))
	for _, rspec := range spec.Restrictions {
		r, err := compileRestriction(rspec)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	if err := codec.ValidateRestrictions(rs, schema.OpType); err != nil {
		return nil, err
	}
	enabled := true
	if spec.Enabled != nil {
		enabled = *spec.Enabled
	}
	return &chain.CustomAuthority{
		Account:       acc,
		Enabled:       enabled,
		ValidFrom:     from,
		ValidTo:       to,
		OperationType: schema.OpType,
		Restrictions:  rs,
	}, nil
}

func compileRestriction(spec RestrictionSpec) (r codec.Restriction, err error) {
	r.Type, err = codec.ParseRestrictionType(spec.Type)
	if err != nil {
		return
	}
	r.Field = spec.Field
	switch {
	case r.Type == codec.RestrictionEq || r.Type == codec.RestrictionNeq:
		if spec.Value == nil {
			return r, errors.Errorf("%s restriction needs a value", r.Type)
		}
		if r.Value, err = ParseValue(*spec.Value); err != nil {
			return
		}
	case r.Type.IsOrdered():
		r.Threshold = spec.Threshold
	case r.Type.IsList():
		for _, vspec := range spec.Values {
			v, err := ParseValue(vspec)
			if err != nil {
				return r, err
			}
			r.Values = append(r.Values, v)
		}
	default:
		for _, rspec := range spec.Restrictions {
			in, err := compileRestriction(rspec)
			if err != nil {
				return r, err
			}
			r.Inner = append(r.Inner, in)
		}
	}
	return
}
