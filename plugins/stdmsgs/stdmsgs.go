/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package stdmsgs is the conversion unit for std_msgs/String targeting
// the inproc runtime. Loading its Plugin gives a Factory topic-side
// support for the type; it is also the reference for what generated
// conversion units look like.
package stdmsgs

import (
	"fmt"

	"github.com/suparena/bridgekit"
	"github.com/suparena/bridgekit/system"
	"github.com/suparena/bridgekit/system/inproc"
	"github.com/suparena/bridgekit/xtypes"
)

// TypeName is the key this unit registers under.
const TypeName = "std_msgs/String"

var stringType = xtypes.MustType(TypeName,
	xtypes.Field{Name: "data", Kind: xtypes.KindString},
)

func newType() *xtypes.DynamicType { return stringType }

func node(rt system.RuntimeContext) (*inproc.Node, error) {
	n, ok := rt.(*inproc.Node)
	if !ok {
		return nil, fmt.Errorf("stdmsgs: runtime %q is not an inproc node", rt.Name())
	}
	return n, nil
}

func newSubscription(
	rt system.RuntimeContext,
	topicName string,
	msgType *xtypes.DynamicType,
	callback system.MessageCallback,
	queueSize int,
	hints system.TransportHints,
) (system.Subscription, error) {
	n, err := node(rt)
	if err != nil {
		return nil, err
	}
	return n.Subscribe(topicName, queueSize, callback), nil
}

func newPublisher(
	rt system.RuntimeContext,
	topicName string,
	queueSize int,
	latch bool,
) (system.TopicPublisher, error) {
	n, err := node(rt)
	if err != nil {
		return nil, err
	}
	return n.Advertise(topicName, queueSize, latch), nil
}

// Plugin contributes the std_msgs/String registrations.
var Plugin = bridgekit.Registrars{
	bridgekit.TypeRegistrar(TypeName, newType),
	bridgekit.SubscriptionRegistrar(TypeName, newSubscription),
	bridgekit.PublisherRegistrar(TypeName, newPublisher),
}
