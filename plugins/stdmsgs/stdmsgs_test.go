/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package stdmsgs

import (
	"testing"

	"github.com/suparena/bridgekit"
	"github.com/suparena/bridgekit/system/inproc"
	"github.com/suparena/bridgekit/xtypes"
)

func TestPluginRegistersTopicKinds(t *testing.T) {
	f := bridgekit.New()
	bridgekit.Load(f, Plugin)

	regs := f.Registrations()
	for _, kind := range []string{"type", "subscription", "publisher"} {
		keys := regs[kind]
		if len(keys) != 1 || keys[0] != TypeName {
			t.Errorf("Expected %s registry [%s], got %v", kind, TypeName, keys)
		}
	}
	if len(regs["service client"]) != 0 {
		t.Error("A message unit must not register service factories")
	}
}

func TestEndToEndBridge(t *testing.T) {
	f := bridgekit.New()
	bridgekit.Load(f, Plugin)

	node := inproc.NewNode("bridge_node")

	msgType, err := f.CreateType(TypeName)
	if err != nil {
		t.Fatalf("CreateType failed: %v", err)
	}

	var got string
	sub, err := f.CreateSubscription(node, msgType, "/chatter", func(msg *xtypes.Data) {
		got, _ = msg.StringValue("data")
	}, 10, nil)
	if err != nil {
		t.Fatalf("CreateSubscription failed: %v", err)
	}
	defer sub.Unsubscribe()

	pub, err := f.CreatePublisher(node, TypeName, "/chatter", 10, false)
	if err != nil {
		t.Fatalf("CreatePublisher failed: %v", err)
	}

	msg := xtypes.NewData(msgType)
	if err := msg.Set("data", "hello"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := pub.Publish(msg); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	if got != "hello" {
		t.Fatalf("Expected bridged message %q, got %q", "hello", got)
	}
}

func TestWrongRuntimeRejected(t *testing.T) {
	f := bridgekit.New()
	bridgekit.Load(f, Plugin)

	_, err := f.CreatePublisher(otherRuntime{}, TypeName, "/chatter", 10, false)
	if err == nil {
		t.Fatal("Expected error for a runtime this unit was not generated for")
	}
}

type otherRuntime struct{}

func (otherRuntime) Name() string { return "other" }
