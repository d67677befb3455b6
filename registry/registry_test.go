/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/suparena/bridgekit/errors"
)

// makeFactory is the factory signature used throughout these tests.
type makeFactory func(name string) (string, error)

func invoke(name string) func(makeFactory) (string, error) {
	return func(f makeFactory) (string, error) { return f(name) }
}

func TestRegisterAndCreate(t *testing.T) {
	r := New[makeFactory]("publisher")

	r.Register("pkg/Msg", func(name string) (string, error) {
		return "pub:" + name, nil
	})

	got, err := Create(r, "pkg/Msg", invoke("/topic"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got != "pub:/topic" {
		t.Fatalf("Expected factory result %q, got %q", "pub:/topic", got)
	}
}

func TestCreateUnregisteredKey(t *testing.T) {
	r := New[makeFactory]("subscription")

	_, err := Create(r, "unknown/Type", invoke("/topic"))
	if err == nil {
		t.Fatal("Expected error for unregistered key")
	}
	if !errors.IsNotFound(err) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	// A failed create must leave no trace
	if r.Len() != 0 {
		t.Fatalf("Expected empty registry, got %d entries", r.Len())
	}
}

func TestLookup(t *testing.T) {
	r := New[makeFactory]("type")

	if _, ok := r.Lookup("pkg/Msg"); ok {
		t.Fatal("Lookup should miss on an empty registry")
	}

	r.Register("pkg/Msg", func(name string) (string, error) { return name, nil })

	f, ok := r.Lookup("pkg/Msg")
	if !ok {
		t.Fatal("Lookup should find registered key")
	}
	if got, _ := f("x"); got != "x" {
		t.Fatalf("Lookup returned wrong factory, got %q", got)
	}
}

func TestLastRegistrationWins(t *testing.T) {
	r := New[makeFactory]("publisher")

	r.Register("pkg/Msg", func(name string) (string, error) { return "old", nil })
	r.Register("pkg/Msg", func(name string) (string, error) { return "new", nil })

	got, err := Create(r, "pkg/Msg", invoke("/topic"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got != "new" {
		t.Fatalf("Expected overwriting factory to win, got %q", got)
	}
	if r.Len() != 1 {
		t.Fatalf("Expected 1 entry after overwrite, got %d", r.Len())
	}
}

func TestFactoryErrorPropagates(t *testing.T) {
	r := New[makeFactory]("service client")

	boom := fmt.Errorf("transport refused")
	r.Register("pkg/Srv", func(name string) (string, error) { return "", boom })

	_, err := Create(r, "pkg/Srv", invoke("/srv"))
	if err != boom {
		t.Fatalf("Expected factory error to pass through unwrapped, got %v", err)
	}
}

func TestKeysSorted(t *testing.T) {
	r := New[makeFactory]("type")

	for _, k := range []string{"std_msgs/String", "geometry_msgs/Twist", "sensor_msgs/Imu"} {
		r.Register(k, func(name string) (string, error) { return name, nil })
	}

	keys := r.Keys()
	expected := []string{"geometry_msgs/Twist", "sensor_msgs/Imu", "std_msgs/String"}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %d keys, got %d", len(expected), len(keys))
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Fatalf("Expected keys %v, got %v", expected, keys)
		}
	}
}

func TestConcurrentRegisterAndCreate(t *testing.T) {
	r := New[makeFactory]("subscription")

	const workers = 16
	const rounds = 200

	var wg sync.WaitGroup
	wg.Add(workers * 2)

	for i := 0; i < workers; i++ {
		key := fmt.Sprintf("pkg/Msg%d", i)

		// Writer: keeps re-registering its key
		go func(key string) {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				r.Register(key, func(name string) (string, error) {
					return key + ":" + name, nil
				})
			}
		}(key)

		// Reader: creates against its own key; misses are fine while the
		// first registration races, partial entries are not.
		go func(key string) {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				got, err := Create(r, key, invoke("/t"))
				if err != nil {
					if !errors.IsNotFound(err) {
						t.Errorf("Unexpected error: %v", err)
						return
					}
					continue
				}
				if got != key+":/t" {
					t.Errorf("Observed partially-updated entry: %q", got)
					return
				}
			}
		}(key)
	}

	wg.Wait()

	if r.Len() != workers {
		t.Fatalf("Expected %d keys, got %d", workers, r.Len())
	}
}
