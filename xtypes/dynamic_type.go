/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package xtypes

import (
	"fmt"
)

// Kind enumerates the primitive field kinds a dynamic type can carry.
type Kind int

const (
	KindBool Kind = iota + 1
	KindInt
	KindFloat
	KindString
	KindTime
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindBytes:
		return "bytes"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field describes one member of a dynamic type.
type Field struct {
	Name string
	Kind Kind
}

// DynamicType is a runtime schema descriptor for a message or service
// type, independent of any compiled Go type. Conversion plugins build one
// per registered type; the factory core treats it as opaque.
type DynamicType struct {
	name   string
	fields []Field
	kinds  map[string]Kind
}

// NewType builds a dynamic type descriptor. Field names must be unique
// and non-empty.
func NewType(name string, fields ...Field) (*DynamicType, error) {
	if name == "" {
		return nil, fmt.Errorf("xtypes: type name must not be empty")
	}
	kinds := make(map[string]Kind, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("xtypes: type %q has a field with no name", name)
		}
		if _, dup := kinds[f.Name]; dup {
			return nil, fmt.Errorf("xtypes: type %q declares field %q twice", name, f.Name)
		}
		kinds[f.Name] = f.Kind
	}
	return &DynamicType{
		name:   name,
		fields: append([]Field(nil), fields...),
		kinds:  kinds,
	}, nil
}

// MustType is NewType panicking on error, for use in plugin declarations
// where the shape is a literal.
func MustType(name string, fields ...Field) *DynamicType {
	t, err := NewType(name, fields...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the fully qualified type name, e.g. "std_msgs/String".
func (t *DynamicType) Name() string { return t.name }

// Fields returns a copy of the field list in declaration order.
func (t *DynamicType) Fields() []Field {
	return append([]Field(nil), t.fields...)
}

// FieldKind returns the kind of the named field.
func (t *DynamicType) FieldKind(name string) (Kind, bool) {
	k, ok := t.kinds[name]
	return k, ok
}
