/*
Package registry provides the generic engine behind BridgeKit's factory
system: a concurrency-safe map from a type key to a factory function of a
fixed signature.

The bridge core instantiates one Registry per factory kind (dynamic type,
subscription, publisher, service client, service provider); the kinds
differ only in their factory signature, which is the type parameter F:

	subs := registry.New[SubscriptionFactory]("subscription")
	subs.Register("std_msgs/String", makeStringSubscription)

	sub, err := registry.Create(subs, "std_msgs/String",
	    func(f SubscriptionFactory) (system.Subscription, error) {
	        return f(node, topic, msgType, callback, queueSize, hints)
	    })

Registration is silent last-write-wins so that reloaded plugin units can
re-register their types. Create for an unregistered key returns
errors.ErrNotFound; an unsupported type is an expected outcome the caller
handles, never a fault.
*/
package registry
