/*
Package config loads the YAML bridge configuration consumed by bridgectl
and by orchestration layers embedding BridgeKit.

Example:

	node: chatter_bridge
	topics:
	  - name: /chatter
	    type: std_msgs/String
	    queue_size: 10
	    latch: false
	    remap: /chatter_bridged
	services:
	  - name: /trigger
	    type: std_srvs/Trigger

Environment references (${VAR}) are expanded before parsing, so table
names, namespaces and credentials can stay out of the file.
*/
package config
