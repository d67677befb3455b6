/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package stdsrvs

import (
	"testing"

	"github.com/suparena/bridgekit"
	"github.com/suparena/bridgekit/system/inproc"
	"github.com/suparena/bridgekit/xtypes"
)

func TestPluginRegistersServiceKinds(t *testing.T) {
	f := bridgekit.New()
	bridgekit.Load(f, Plugin)

	regs := f.Registrations()
	if got := regs["type"]; len(got) != 2 {
		t.Errorf("Expected request and response type registrations, got %v", got)
	}
	if got := regs["service client"]; len(got) != 1 || got[0] != ServiceName {
		t.Errorf("Expected service client registry [%s], got %v", ServiceName, got)
	}
	if got := regs["service provider"]; len(got) != 1 || got[0] != ServiceName {
		t.Errorf("Expected service provider registry [%s], got %v", ServiceName, got)
	}
}

func TestTriggerRoundTrip(t *testing.T) {
	f := bridgekit.New()
	bridgekit.Load(f, Plugin)

	node := inproc.NewNode("bridge_node")

	provider, err := f.CreateServerProxy(node, ServiceName, "/trigger")
	if err != nil {
		t.Fatalf("CreateServerProxy failed: %v", err)
	}
	defer provider.Close()

	var resp *xtypes.Data
	client, err := f.CreateClientProxy(node, ServiceName, "/trigger", func(r *xtypes.Data) {
		resp = r
	})
	if err != nil {
		t.Fatalf("CreateClientProxy failed: %v", err)
	}

	reqType, err := f.CreateType(RequestTypeName)
	if err != nil {
		t.Fatalf("CreateType failed: %v", err)
	}
	if err := client.Request(xtypes.NewData(reqType)); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if resp == nil {
		t.Fatal("Expected a response through the request callback")
	}
	success, err := resp.Get("success")
	if err != nil || success.(bool) != true {
		t.Fatalf("Expected success=true, got %v (%v)", success, err)
	}
	msg, _ := resp.StringValue("message")
	if msg != "triggered on bridge_node" {
		t.Fatalf("Unexpected response message %q", msg)
	}
}
