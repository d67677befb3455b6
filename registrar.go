/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bridgekit

// Registrar binds one (type key, factory) registration as a value, so a
// conversion plugin can declare support for a type instead of calling
// register methods imperatively. Applying a Registrar performs the bound
// registration; construction alone has no effect and cannot fail.
type Registrar struct {
	apply func(*Factory)
}

// Apply performs the bound registration against f.
func (r Registrar) Apply(f *Factory) {
	r.apply(f)
}

// TypeRegistrar declares a dynamic type constructor for typeName.
func TypeRegistrar(typeName string, fn TypeFactory) Registrar {
	return Registrar{apply: func(f *Factory) { f.RegisterTypeFactory(typeName, fn) }}
}

// SubscriptionRegistrar declares a subscription constructor for the
// message type named topicType.
func SubscriptionRegistrar(topicType string, fn SubscriptionFactory) Registrar {
	return Registrar{apply: func(f *Factory) { f.RegisterSubscriptionFactory(topicType, fn) }}
}

// PublisherRegistrar declares a publisher constructor for the message
// type named topicType.
func PublisherRegistrar(topicType string, fn PublisherFactory) Registrar {
	return Registrar{apply: func(f *Factory) { f.RegisterPublisherFactory(topicType, fn) }}
}

// ServiceClientRegistrar declares a service client constructor for the
// service response type named serviceType.
func ServiceClientRegistrar(serviceType string, fn ServiceClientFactory) Registrar {
	return Registrar{apply: func(f *Factory) { f.RegisterServiceClientFactory(serviceType, fn) }}
}

// ServiceProviderRegistrar declares a service server constructor for the
// service request type named serviceType.
func ServiceProviderRegistrar(serviceType string, fn ServiceProviderFactory) Registrar {
	return Registrar{apply: func(f *Factory) { f.RegisterServiceProviderFactory(serviceType, fn) }}
}

// Plugin is implemented by conversion units that contribute factory
// registrations for one message or service type. The embedding process
// loads plugins deterministically after constructing the Factory instead
// of relying on package init side effects.
type Plugin interface {
	Register(f *Factory)
}

// PluginFunc adapts a plain function to the Plugin interface.
type PluginFunc func(*Factory)

func (fn PluginFunc) Register(f *Factory) { fn(f) }

// Registrars is a Plugin assembled from a list of Registrar values, the
// usual shape of a generated conversion unit:
//
//	var Plugin = bridgekit.Registrars{
//	    bridgekit.TypeRegistrar("std_msgs/String", newStringType),
//	    bridgekit.PublisherRegistrar("std_msgs/String", newStringPublisher),
//	}
type Registrars []Registrar

func (rs Registrars) Register(f *Factory) {
	for _, r := range rs {
		r.Apply(f)
	}
}

// Load registers every plugin into f, in order. Linking a new conversion
// unit into the process and listing it here is all it takes for the
// bridge to gain support for its type.
func Load(f *Factory, plugins ...Plugin) {
	for _, p := range plugins {
		p.Register(f)
	}
}
