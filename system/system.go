/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package system

import (
	"github.com/suparena/bridgekit/xtypes"
)

// RuntimeContext is the node/transport runtime that created entities
// attach to. The factory core passes it through to factory functions
// unmodified; a conversion plugin type-asserts it to the concrete runtime
// it was generated for.
type RuntimeContext interface {
	// Name identifies the runtime node, for diagnostics only.
	Name() string
}

// TransportHints carries caller-supplied delivery preferences (for
// example "tcp_nodelay": "true"). Opaque to the factory core.
type TransportHints map[string]string

// MessageCallback is invoked by a created subscription for every message
// that arrives. The callback is caller-owned and must remain valid for
// the lifetime of the subscription handle.
type MessageCallback func(msg *xtypes.Data)

// RequestCallback is invoked by a created service client for every
// incoming request. Caller-owned, same lifetime rule as MessageCallback.
type RequestCallback func(req *xtypes.Data)

// Subscription is a live topic subscription. Beyond Unsubscribe it is
// opaque; the caller owns it once created.
type Subscription interface {
	Unsubscribe()
}

// TopicPublisher publishes messages of one type to one topic.
type TopicPublisher interface {
	Publish(msg *xtypes.Data) error
}

// ServiceClient forwards requests into the runtime on behalf of the
// bridge and reports activity through the RequestCallback supplied at
// creation.
type ServiceClient interface {
	Request(req *xtypes.Data) error
}

// ServiceProvider exposes a service endpoint on the runtime. The caller
// owns the handle and closes it when the bridge for that service is
// released.
type ServiceProvider interface {
	Close() error
}
