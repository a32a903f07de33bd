// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// FieldDescriptor declares a single named field of an operation: its wire
// name, value type and whether the field may be absent.
type FieldDescriptor struct {
	Name     string
	Type     ValueType
	Optional bool
}

// FieldAccessor reads the current value of a named field from a concrete
// operation instance. The second result is false when an optional field
// is unset.
type FieldAccessor func(op Operation, name string) (Value, bool)

// Schema describes one operation variant: its type id, wire name, field
// list and accessor. Schemas are registered once at init time; the
// registry is immutable afterwards and safe for concurrent reads.
type Schema struct {
	OpType OpType
	Name   string
	Fields []FieldDescriptor
	New    func() Operation
	Access FieldAccessor

	index map[string]int
}

// HasField reports whether the schema declares a field with this name.
func (s *Schema) HasField(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Field returns the descriptor of a named field.
func (s *Schema) Field(name string) (FieldDescriptor, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return s.Fields[i], true
}

// GetField reads the named field from op, lifting the concrete type into
// the value union. Unset optional fields return present == false. A name
// the schema does not declare is an UnknownField error.
func (s *Schema) GetField(op Operation, name string) (Value, bool, error) {
	if !s.HasField(name) {
		return Value{}, false, bitshares.Errorf(bitshares.ErrUnknownField,
			"operation %s has no field %q", s.Name, name).WithField(name).WithOpType(uint32(s.OpType))
	}
	v, present := s.Access(op, name)
	return v, present, nil
}

var registry = make(map[OpType]*Schema)

// RegisterSchema adds an operation schema to the process wide registry.
// The wire name is derived from the Go type name of the prototype. Called
// from init functions only.
func RegisterSchema(s *Schema) {
	proto := s.New()
	name := fmt.Sprintf("%T", proto)
	name = name[strings.LastIndexByte(name, '.')+1:]
	s.Name = strcase.ToSnake(name)
	s.index = make(map[string]int, len(s.Fields))
	for i, f := range s.Fields {
		if _, ok := s.index[f.Name]; ok {
			panic(fmt.Sprintf("codec: duplicate field %s.%s", s.Name, f.Name))
		}
		s.index[f.Name] = i
	}
	if _, ok := registry[s.OpType]; ok {
		panic(fmt.Sprintf("codec: duplicate schema for op type %d", s.OpType))
	}
	registry[s.OpType] = s
}

// SchemaByType looks up the schema registered for an operation type id.
func SchemaByType(id OpType) (*Schema, error) {
	s, ok := registry[id]
	if !ok {
		return nil, bitshares.Errorf(bitshares.ErrUnknownOperation,
			"operation type %d is not registered", uint32(id)).WithOpType(uint32(id))
	}
	return s, nil
}

// SchemaOf returns the schema of a concrete operation instance.
func SchemaOf(op Operation) (*Schema, error) {
	return SchemaByType(op.Kind())
}

// SchemaByName resolves a wire name like "transfer" to its schema.
func SchemaByName(name string) (*Schema, error) {
	for _, s := range registry {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, bitshares.Errorf(bitshares.ErrUnknownOperation,
		"operation %q is not registered", name)
}

// RegisteredOpTypes lists all registered type ids. Test helper.
func RegisteredOpTypes() []OpType {
	ids := make([]OpType, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}
