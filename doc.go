/*
Package bridgekit provides the factory registry at the core of a
middleware bridge: a type-keyed dispatch layer that lets the bridge gain
support for new message and service types by loading conversion plugins,
without the core knowing those types in advance.

The library follows a plugin → registration → creation workflow:
  - Plugin: a conversion unit declares factories for one type
  - Registration: the process loads plugins into a Factory at startup
  - Creation: the orchestration layer creates bridge endpoints by type name

Key Features:
  - One generic registry engine instantiated per factory kind
  - Five factory kinds: type, subscription, publisher, service client,
    service server
  - Silent last-write-wins registration for reloadable plugins
  - Safe concurrent registration and creation
  - Semantic error types; a missing registration never aborts the bridge

Basic Usage:

	// Construct the factory and load conversion plugins
	factory := bridgekit.New()
	bridgekit.Load(factory, stdmsgs.Plugin, stdsrvs.Plugin)

	// Create bridge endpoints by type name
	pub, err := factory.CreatePublisher(node, "std_msgs/String", "/chatter", 10, false)
	if errors.IsNotFound(err) {
	    // type not linked in; skip this topic
	}

For more information, see the documentation at https://github.com/suparena/bridgekit
*/
package bridgekit
