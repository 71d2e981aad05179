/*
Package calculator defines the boundary between a calculator node and the
host engine that schedules it.

The host drives a fixed lifecycle: it builds a Contract from the graph
wiring and asks the node to validate it (construction time), then calls
Open once (configuration is frozen), then Process once per input frame.
Scheduling, ordering, and packet lifetime are entirely the host's concern;
a calculator runs synchronously to completion inside each call.
*/
package calculator
