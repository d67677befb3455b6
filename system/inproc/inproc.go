/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package inproc provides an in-process runtime implementing the
// system.RuntimeContext boundary: an in-memory topic bus with latching
// and simple service endpoints. Tests, demo conversion plugins and the
// CLI dry-run use it in place of a real middleware transport.
package inproc

import (
	"fmt"
	"sync"

	"github.com/suparena/bridgekit/system"
	"github.com/suparena/bridgekit/xtypes"
)

// Node hosts topics and services for one in-process runtime.
type Node struct {
	name string

	mu       sync.RWMutex
	topics   map[string]*topic
	services map[string]ServiceHandler
}

// ServiceHandler serves one request and returns the response.
type ServiceHandler func(req *xtypes.Data) (*xtypes.Data, error)

// NewNode creates an empty node.
func NewNode(name string) *Node {
	return &Node{
		name:     name,
		topics:   make(map[string]*topic),
		services: make(map[string]ServiceHandler),
	}
}

// Name implements system.RuntimeContext.
func (n *Node) Name() string { return n.name }

type topic struct {
	mu      sync.RWMutex
	nextID  int
	subs    map[int]system.MessageCallback
	latched *xtypes.Data
}

func (n *Node) topicFor(name string) *topic {
	n.mu.Lock()
	defer n.mu.Unlock()
	t, ok := n.topics[name]
	if !ok {
		t = &topic{subs: make(map[int]system.MessageCallback)}
		n.topics[name] = t
	}
	return t
}

// Subscription is a live attachment of one callback to one topic.
type Subscription struct {
	t    *topic
	id   int
	once sync.Once
}

// Unsubscribe implements system.Subscription. Safe to call repeatedly.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.t.mu.Lock()
		delete(s.t.subs, s.id)
		s.t.mu.Unlock()
	})
}

// Subscribe attaches cb to topicName. If a latching publisher already
// published there, the retained message is delivered before Subscribe
// returns. The bus delivers synchronously, so queue depth does not apply
// and is accepted only for interface parity with real transports.
func (n *Node) Subscribe(topicName string, queueSize int, cb system.MessageCallback) *Subscription {
	t := n.topicFor(topicName)

	// Hand off the retained message before cb is visible to publishers,
	// so a racing publish cannot be delivered ahead of it.
	t.mu.RLock()
	latched := t.latched
	t.mu.RUnlock()
	if latched != nil {
		cb(latched)
	}

	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.subs[id] = cb
	t.mu.Unlock()

	return &Subscription{t: t, id: id}
}

// Publisher publishes to one topic.
type Publisher struct {
	t     *topic
	latch bool
}

// Advertise creates a publisher on topicName. With latch enabled the bus
// retains the last published message and hands it to late subscribers.
func (n *Node) Advertise(topicName string, queueSize int, latch bool) *Publisher {
	return &Publisher{t: n.topicFor(topicName), latch: latch}
}

// Publish implements system.TopicPublisher. Delivery is synchronous and
// in-order per publisher; callbacks run on the publishing goroutine.
func (p *Publisher) Publish(msg *xtypes.Data) error {
	if msg == nil {
		return fmt.Errorf("inproc: cannot publish nil message")
	}

	p.t.mu.Lock()
	if p.latch {
		p.t.latched = msg
	}
	callbacks := make([]system.MessageCallback, 0, len(p.t.subs))
	for _, cb := range p.t.subs {
		callbacks = append(callbacks, cb)
	}
	p.t.mu.Unlock()

	for _, cb := range callbacks {
		cb(msg)
	}
	return nil
}

// AdvertiseService registers handler under serviceName, replacing any
// previous endpoint.
func (n *Node) AdvertiseService(serviceName string, handler ServiceHandler) *ServiceServer {
	n.mu.Lock()
	n.services[serviceName] = handler
	n.mu.Unlock()
	return &ServiceServer{node: n, service: serviceName}
}

// Call invokes the service endpoint registered under serviceName.
func (n *Node) Call(serviceName string, req *xtypes.Data) (*xtypes.Data, error) {
	n.mu.RLock()
	handler, ok := n.services[serviceName]
	n.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("inproc: no service advertised on %q", serviceName)
	}
	return handler(req)
}

// ServiceServer is a live service endpoint.
type ServiceServer struct {
	node    *Node
	service string
	once    sync.Once
}

// Close implements system.ServiceProvider, withdrawing the endpoint.
func (s *ServiceServer) Close() error {
	s.once.Do(func() {
		s.node.mu.Lock()
		delete(s.node.services, s.service)
		s.node.mu.Unlock()
	})
	return nil
}

// ServiceClient forwards requests to a service endpoint and reports each
// response through the callback supplied at creation.
type ServiceClient struct {
	node     *Node
	service  string
	callback system.RequestCallback
}

// NewServiceClient creates a client for serviceName. The callback is
// invoked with the response of every successful request.
func (n *Node) NewServiceClient(serviceName string, callback system.RequestCallback) *ServiceClient {
	return &ServiceClient{node: n, service: serviceName, callback: callback}
}

// Request implements system.ServiceClient.
func (c *ServiceClient) Request(req *xtypes.Data) error {
	resp, err := c.node.Call(c.service, req)
	if err != nil {
		return err
	}
	if c.callback != nil && resp != nil {
		c.callback(resp)
	}
	return nil
}
