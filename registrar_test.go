/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bridgekit

import (
	"testing"

	"github.com/suparena/bridgekit/system"
	"github.com/suparena/bridgekit/xtypes"
)

func TestRegistrarApply(t *testing.T) {
	f := New()

	r := TypeRegistrar("std_msgs/String", func() *xtypes.DynamicType { return stringType })

	// Construction alone registers nothing
	if _, err := f.CreateType("std_msgs/String"); err == nil {
		t.Fatal("Registrar construction must not register")
	}

	r.Apply(f)

	dt, err := f.CreateType("std_msgs/String")
	if err != nil {
		t.Fatalf("CreateType after Apply failed: %v", err)
	}
	if dt.Name() != "std_msgs/String" {
		t.Fatalf("Wrong descriptor: %s", dt.Name())
	}
}

func TestLoadPlugins(t *testing.T) {
	f := New()

	unit := Registrars{
		TypeRegistrar("pkg/Msg", func() *xtypes.DynamicType {
			return xtypes.MustType("pkg/Msg", xtypes.Field{Name: "v", Kind: xtypes.KindInt})
		}),
		PublisherRegistrar("pkg/Msg", func(r system.RuntimeContext, topic string, queueSize int, latch bool) (system.TopicPublisher, error) {
			return &fakePublisher{topic: topic}, nil
		}),
	}

	var called bool
	extra := PluginFunc(func(f *Factory) { called = true })

	Load(f, unit, extra)

	if !called {
		t.Error("Load should register every plugin passed")
	}
	if _, err := f.CreateType("pkg/Msg"); err != nil {
		t.Errorf("Type registrar was not applied: %v", err)
	}
	if got := f.Registrations()["publisher"]; len(got) != 1 || got[0] != "pkg/Msg" {
		t.Errorf("Publisher registrar was not applied: %v", got)
	}
}

func TestLoadOrderLastWins(t *testing.T) {
	f := New()

	old := xtypes.MustType("pkg/Msg", xtypes.Field{Name: "old", Kind: xtypes.KindInt})
	updated := xtypes.MustType("pkg/Msg", xtypes.Field{Name: "new", Kind: xtypes.KindInt})

	Load(f,
		Registrars{TypeRegistrar("pkg/Msg", func() *xtypes.DynamicType { return old })},
		Registrars{TypeRegistrar("pkg/Msg", func() *xtypes.DynamicType { return updated })},
	)

	dt, err := f.CreateType("pkg/Msg")
	if err != nil {
		t.Fatalf("CreateType failed: %v", err)
	}
	if _, ok := dt.FieldKind("new"); !ok {
		t.Fatal("Expected the later plugin's registration to win")
	}
}
