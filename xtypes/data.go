/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package xtypes

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
)

// Data is one message instance of a DynamicType. Values are validated
// against the field kinds on every write.
type Data struct {
	t      *DynamicType
	values map[string]any
}

// NewData creates a zero-filled instance of t.
func NewData(t *DynamicType) *Data {
	values := make(map[string]any, len(t.fields))
	for _, f := range t.fields {
		values[f.Name] = zeroValue(f.Kind)
	}
	return &Data{t: t, values: values}
}

func zeroValue(k Kind) any {
	switch k {
	case KindBool:
		return false
	case KindInt:
		return int64(0)
	case KindFloat:
		return float64(0)
	case KindString:
		return ""
	case KindTime:
		return strfmt.DateTime{}
	case KindBytes:
		return []byte(nil)
	default:
		return nil
	}
}

// Type returns the schema descriptor this instance conforms to.
func (d *Data) Type() *DynamicType { return d.t }

// Set stores a field value after checking it against the field's kind.
// Int fields accept int and int64; time fields accept time.Time and
// strfmt.DateTime.
func (d *Data) Set(field string, value any) error {
	kind, ok := d.t.kinds[field]
	if !ok {
		return fmt.Errorf("xtypes: type %q has no field %q", d.t.name, field)
	}

	switch kind {
	case KindBool:
		if v, ok := value.(bool); ok {
			d.values[field] = v
			return nil
		}
	case KindInt:
		switch v := value.(type) {
		case int:
			d.values[field] = int64(v)
			return nil
		case int64:
			d.values[field] = v
			return nil
		}
	case KindFloat:
		if v, ok := value.(float64); ok {
			d.values[field] = v
			return nil
		}
	case KindString:
		if v, ok := value.(string); ok {
			d.values[field] = v
			return nil
		}
	case KindTime:
		switch v := value.(type) {
		case time.Time:
			d.values[field] = strfmt.DateTime(v)
			return nil
		case strfmt.DateTime:
			d.values[field] = v
			return nil
		}
	case KindBytes:
		if v, ok := value.([]byte); ok {
			d.values[field] = v
			return nil
		}
	}
	return fmt.Errorf("xtypes: field %q of %q is %s, got %T", field, d.t.name, kind, value)
}

// Get returns the stored value for field.
func (d *Data) Get(field string) (any, error) {
	v, ok := d.values[field]
	if !ok {
		return nil, fmt.Errorf("xtypes: type %q has no field %q", d.t.name, field)
	}
	return v, nil
}

// StringValue returns the value of a string field.
func (d *Data) StringValue(field string) (string, error) {
	v, err := d.Get(field)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("xtypes: field %q of %q is not a string", field, d.t.name)
	}
	return s, nil
}

// Time returns the value of a time field as time.Time.
func (d *Data) Time(field string) (time.Time, error) {
	v, err := d.Get(field)
	if err != nil {
		return time.Time{}, err
	}
	ts, ok := v.(strfmt.DateTime)
	if !ok {
		return time.Time{}, fmt.Errorf("xtypes: field %q of %q is not a time", field, d.t.name)
	}
	return time.Time(ts), nil
}

// Values returns a snapshot of all field values keyed by field name.
// Mutating the returned map does not affect the instance.
func (d *Data) Values() map[string]any {
	out := make(map[string]any, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}
