/*
Package domain contains the core domain models of the sluice optimizer.

It defines the static network of controllable nodes, the search state that the
optimizer explores, the tagged actions that move a state forward in time and
the request/result pair exchanged with callers. This package is kept pure and
free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Network: the immutable graph of nodes (yield rate + ordered neighbors).
  - ActivatedSet: the monotonic, canonically encoded set of activated nodes.
  - State: one snapshot of the search (time, agent positions, activated set, yield).
  - Action: a tagged variant describing what the agents did during one time unit.
  - Request / Result: the parameters of a solve and its outcome.
*/
package domain
