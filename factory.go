/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bridgekit

import (
	"github.com/suparena/bridgekit/errors"
	"github.com/suparena/bridgekit/registry"
	"github.com/suparena/bridgekit/system"
	"github.com/suparena/bridgekit/xtypes"
)

// TypeFactory creates the dynamic type descriptor for one registered
// message or service type.
type TypeFactory func() *xtypes.DynamicType

// SubscriptionFactory creates a subscription on the runtime for one
// message type. Generated per type by its conversion plugin.
type SubscriptionFactory func(
	rt system.RuntimeContext,
	topicName string,
	msgType *xtypes.DynamicType,
	callback system.MessageCallback,
	queueSize int,
	hints system.TransportHints,
) (system.Subscription, error)

// PublisherFactory creates a publisher on the runtime for one message
// type.
type PublisherFactory func(
	rt system.RuntimeContext,
	topicName string,
	queueSize int,
	latch bool,
) (system.TopicPublisher, error)

// ServiceClientFactory creates a service client proxy for one service
// type, keyed by the service response type name.
type ServiceClientFactory func(
	rt system.RuntimeContext,
	serviceName string,
	callback system.RequestCallback,
) (system.ServiceClient, error)

// ServiceProviderFactory creates a service server proxy for one service
// type, keyed by the service request type name.
type ServiceProviderFactory func(
	rt system.RuntimeContext,
	serviceName string,
) (system.ServiceProvider, error)

// Factory is the access point conversion plugins register against and
// the orchestration layer creates bridge endpoints through. It owns one
// registry per factory kind; the kinds are independent, related only by
// the convention that they usually key on the same type names.
//
// The embedding process constructs one Factory at startup and passes it
// to every component that needs registry access. All methods are safe
// for concurrent use, including registration interleaved with creation
// when plugin units are loaded after startup.
type Factory struct {
	types         *registry.Registry[TypeFactory]
	subscriptions *registry.Registry[SubscriptionFactory]
	publishers    *registry.Registry[PublisherFactory]
	clients       *registry.Registry[ServiceClientFactory]
	providers     *registry.Registry[ServiceProviderFactory]
}

// New creates an empty Factory.
func New() *Factory {
	return &Factory{
		types:         registry.New[TypeFactory]("type"),
		subscriptions: registry.New[SubscriptionFactory]("subscription"),
		publishers:    registry.New[PublisherFactory]("publisher"),
		clients:       registry.New[ServiceClientFactory]("service client"),
		providers:     registry.New[ServiceProviderFactory]("service provider"),
	}
}

// RegisterTypeFactory registers the dynamic type constructor for
// typeName. Last registration wins.
func (f *Factory) RegisterTypeFactory(typeName string, fn TypeFactory) {
	f.types.Register(typeName, fn)
}

// CreateType builds the dynamic type descriptor for typeName using the
// registered constructor. Returns errors.ErrNotFound for unregistered
// types.
func (f *Factory) CreateType(typeName string) (*xtypes.DynamicType, error) {
	return registry.Create(f.types, typeName, func(fn TypeFactory) (*xtypes.DynamicType, error) {
		return fn(), nil
	})
}

// RegisterSubscriptionFactory registers the subscription constructor for
// the message type named topicType.
func (f *Factory) RegisterSubscriptionFactory(topicType string, fn SubscriptionFactory) {
	f.subscriptions.Register(topicType, fn)
}

// CreateSubscription creates a subscription to topicName carrying
// messages of msgType. The callback must outlive the returned handle.
func (f *Factory) CreateSubscription(
	rt system.RuntimeContext,
	msgType *xtypes.DynamicType,
	topicName string,
	callback system.MessageCallback,
	queueSize int,
	hints system.TransportHints,
) (system.Subscription, error) {
	if rt == nil {
		return nil, errors.NewValidationError("runtime", "runtime context must not be nil")
	}
	if msgType == nil {
		return nil, errors.NewValidationError("message type", "message type must not be nil")
	}
	if topicName == "" {
		return nil, errors.NewValidationError("topic", "topic name must not be empty")
	}
	if callback == nil {
		return nil, errors.NewValidationError("callback", "message callback must not be nil")
	}
	if queueSize < 0 {
		return nil, errors.NewValidationError("queue size", "queue size must be >= 0")
	}
	return registry.Create(f.subscriptions, msgType.Name(), func(fn SubscriptionFactory) (system.Subscription, error) {
		return fn(rt, topicName, msgType, callback, queueSize, hints)
	})
}

// RegisterPublisherFactory registers the publisher constructor for the
// message type named topicType.
func (f *Factory) RegisterPublisherFactory(topicType string, fn PublisherFactory) {
	f.publishers.Register(topicType, fn)
}

// CreatePublisher creates a publisher for topicName. A queueSize of 0
// means "use the transport default". When latch is true the runtime
// delivers the last published message to late subscribers.
func (f *Factory) CreatePublisher(
	rt system.RuntimeContext,
	topicType string,
	topicName string,
	queueSize int,
	latch bool,
) (system.TopicPublisher, error) {
	if rt == nil {
		return nil, errors.NewValidationError("runtime", "runtime context must not be nil")
	}
	if topicName == "" {
		return nil, errors.NewValidationError("topic", "topic name must not be empty")
	}
	if queueSize < 0 {
		return nil, errors.NewValidationError("queue size", "queue size must be >= 0")
	}
	return registry.Create(f.publishers, topicType, func(fn PublisherFactory) (system.TopicPublisher, error) {
		return fn(rt, topicName, queueSize, latch)
	})
}

// RegisterServiceClientFactory registers the service client constructor
// for the service response type named serviceType.
func (f *Factory) RegisterServiceClientFactory(serviceType string, fn ServiceClientFactory) {
	f.clients.Register(serviceType, fn)
}

// CreateClientProxy creates a service client for serviceName. The
// callback must outlive the returned handle.
func (f *Factory) CreateClientProxy(
	rt system.RuntimeContext,
	serviceType string,
	serviceName string,
	callback system.RequestCallback,
) (system.ServiceClient, error) {
	if rt == nil {
		return nil, errors.NewValidationError("runtime", "runtime context must not be nil")
	}
	if serviceName == "" {
		return nil, errors.NewValidationError("service", "service name must not be empty")
	}
	if callback == nil {
		return nil, errors.NewValidationError("callback", "request callback must not be nil")
	}
	return registry.Create(f.clients, serviceType, func(fn ServiceClientFactory) (system.ServiceClient, error) {
		return fn(rt, serviceName, callback)
	})
}

// RegisterServiceProviderFactory registers the service server constructor
// for the service request type named serviceType.
func (f *Factory) RegisterServiceProviderFactory(serviceType string, fn ServiceProviderFactory) {
	f.providers.Register(serviceType, fn)
}

// CreateServerProxy creates a service server for serviceName.
func (f *Factory) CreateServerProxy(
	rt system.RuntimeContext,
	serviceType string,
	serviceName string,
) (system.ServiceProvider, error) {
	if rt == nil {
		return nil, errors.NewValidationError("runtime", "runtime context must not be nil")
	}
	if serviceName == "" {
		return nil, errors.NewValidationError("service", "service name must not be empty")
	}
	return registry.Create(f.providers, serviceType, func(fn ServiceProviderFactory) (system.ServiceProvider, error) {
		return fn(rt, serviceName)
	})
}

// Registrations returns the registered type keys per factory kind, for
// introspection and tooling. Keys are sorted within each kind.
func (f *Factory) Registrations() map[string][]string {
	return map[string][]string{
		f.types.Name():         f.types.Keys(),
		f.subscriptions.Name(): f.subscriptions.Keys(),
		f.publishers.Name():    f.publishers.Keys(),
		f.clients.Name():       f.clients.Keys(),
		f.providers.Name():     f.providers.Keys(),
	}
}
