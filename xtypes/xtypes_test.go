/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package xtypes

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
)

func headerType(t *testing.T) *DynamicType {
	t.Helper()
	dt, err := NewType("test_msgs/Header",
		Field{Name: "seq", Kind: KindInt},
		Field{Name: "stamp", Kind: KindTime},
		Field{Name: "frame_id", Kind: KindString},
	)
	if err != nil {
		t.Fatalf("NewType failed: %v", err)
	}
	return dt
}

func TestNewTypeValidation(t *testing.T) {
	t.Run("EmptyName", func(t *testing.T) {
		if _, err := NewType(""); err == nil {
			t.Fatal("Expected error for empty type name")
		}
	})

	t.Run("DuplicateField", func(t *testing.T) {
		_, err := NewType("pkg/Msg",
			Field{Name: "data", Kind: KindString},
			Field{Name: "data", Kind: KindInt},
		)
		if err == nil {
			t.Fatal("Expected error for duplicate field")
		}
	})

	t.Run("UnnamedField", func(t *testing.T) {
		if _, err := NewType("pkg/Msg", Field{Kind: KindBool}); err == nil {
			t.Fatal("Expected error for unnamed field")
		}
	})
}

func TestDataSetGet(t *testing.T) {
	dt := headerType(t)
	msg := NewData(dt)

	if err := msg.Set("seq", 7); err != nil {
		t.Fatalf("Set int failed: %v", err)
	}
	if err := msg.Set("frame_id", "base_link"); err != nil {
		t.Fatalf("Set string failed: %v", err)
	}

	v, err := msg.Get("seq")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v.(int64) != 7 {
		t.Fatalf("Expected seq 7, got %v", v)
	}

	s, err := msg.StringValue("frame_id")
	if err != nil || s != "base_link" {
		t.Fatalf("Expected frame_id base_link, got %q (%v)", s, err)
	}
}

func TestDataKindMismatch(t *testing.T) {
	msg := NewData(headerType(t))

	if err := msg.Set("seq", "not a number"); err == nil {
		t.Fatal("Expected kind mismatch error")
	}
	if err := msg.Set("nope", 1); err == nil {
		t.Fatal("Expected unknown field error")
	}
	if _, err := msg.Get("nope"); err == nil {
		t.Fatal("Expected unknown field error on Get")
	}
}

func TestDataTimeField(t *testing.T) {
	msg := NewData(headerType(t))

	stamp := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	if err := msg.Set("stamp", stamp); err != nil {
		t.Fatalf("Set time.Time failed: %v", err)
	}

	got, err := msg.Time("stamp")
	if err != nil {
		t.Fatalf("Time failed: %v", err)
	}
	if !got.Equal(stamp) {
		t.Fatalf("Expected %v, got %v", stamp, got)
	}

	// strfmt.DateTime is accepted directly as well
	if err := msg.Set("stamp", strfmt.DateTime(stamp.Add(time.Hour))); err != nil {
		t.Fatalf("Set strfmt.DateTime failed: %v", err)
	}
}

func TestDataZeroValues(t *testing.T) {
	msg := NewData(headerType(t))

	values := msg.Values()
	if values["seq"].(int64) != 0 {
		t.Errorf("Expected zero seq, got %v", values["seq"])
	}
	if values["frame_id"].(string) != "" {
		t.Errorf("Expected empty frame_id, got %v", values["frame_id"])
	}

	// Values is a snapshot
	values["seq"] = int64(99)
	v, _ := msg.Get("seq")
	if v.(int64) != 0 {
		t.Error("Mutating the Values snapshot must not affect the instance")
	}
}
