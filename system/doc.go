/*
Package system defines the boundary contracts between BridgeKit's factory
core and its collaborators: the runtime context supplied by the embedding
node layer, the callbacks owned by the orchestration layer, and the
opaque handles factory functions return.

The factory core never inspects these beyond the method sets declared
here. Concrete implementations live with the runtime (see system/inproc
for the in-process reference runtime used by tests and the CLI dry-run).
*/
package system
