/*
Package xtypes provides the runtime schema layer for BridgeKit: dynamic
type descriptors and the message instances that flow through created
subscriptions and publishers.

A DynamicType names a message or service type and lists its primitive
fields. Conversion plugins declare one per supported type and register a
factory returning it:

	var stringType = xtypes.MustType("std_msgs/String",
	    xtypes.Field{Name: "data", Kind: xtypes.KindString},
	)

Data instances are created from a descriptor and validate every write
against the declared field kinds. Time fields round-trip RFC3339 through
strfmt.DateTime so recorded messages sort chronologically as strings.
*/
package xtypes
