/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package stdsrvs is the conversion unit for std_srvs/Trigger targeting
// the inproc runtime: service-client and service-provider factories plus
// the request/response type descriptors.
package stdsrvs

import (
	"fmt"

	"github.com/suparena/bridgekit"
	"github.com/suparena/bridgekit/system"
	"github.com/suparena/bridgekit/system/inproc"
	"github.com/suparena/bridgekit/xtypes"
)

// ServiceName is the key the client and provider factories register
// under. Request/response descriptors register under their own names.
const (
	ServiceName      = "std_srvs/Trigger"
	RequestTypeName  = "std_srvs/TriggerRequest"
	ResponseTypeName = "std_srvs/TriggerResponse"
)

var (
	requestType  = xtypes.MustType(RequestTypeName)
	responseType = xtypes.MustType(ResponseTypeName,
		xtypes.Field{Name: "success", Kind: xtypes.KindBool},
		xtypes.Field{Name: "message", Kind: xtypes.KindString},
	)
)

func node(rt system.RuntimeContext) (*inproc.Node, error) {
	n, ok := rt.(*inproc.Node)
	if !ok {
		return nil, fmt.Errorf("stdsrvs: runtime %q is not an inproc node", rt.Name())
	}
	return n, nil
}

func newClient(
	rt system.RuntimeContext,
	serviceName string,
	callback system.RequestCallback,
) (system.ServiceClient, error) {
	n, err := node(rt)
	if err != nil {
		return nil, err
	}
	return n.NewServiceClient(serviceName, callback), nil
}

func newProvider(
	rt system.RuntimeContext,
	serviceName string,
) (system.ServiceProvider, error) {
	n, err := node(rt)
	if err != nil {
		return nil, err
	}
	server := n.AdvertiseService(serviceName, func(req *xtypes.Data) (*xtypes.Data, error) {
		resp := xtypes.NewData(responseType)
		if err := resp.Set("success", true); err != nil {
			return nil, err
		}
		if err := resp.Set("message", "triggered on "+n.Name()); err != nil {
			return nil, err
		}
		return resp, nil
	})
	return server, nil
}

// Plugin contributes the std_srvs/Trigger registrations.
var Plugin = bridgekit.Registrars{
	bridgekit.TypeRegistrar(RequestTypeName, func() *xtypes.DynamicType { return requestType }),
	bridgekit.TypeRegistrar(ResponseTypeName, func() *xtypes.DynamicType { return responseType }),
	bridgekit.ServiceClientRegistrar(ServiceName, newClient),
	bridgekit.ServiceProviderRegistrar(ServiceName, newProvider),
}
