/*
Package ports defines the driven ports (interfaces) for the sluice optimizer.

These interfaces decouple the core search from external implementations, allowing
the optimizer to work with various network sources, result caches and locks.

# Key Interfaces

  - NetworkLoader: Responsible for loading a network (and its request defaults) by name.
  - ResultStore: Responsible for caching solved results by fingerprint.
  - DistributedLocker: Serializes identical solves across replicas.
  - Solver: The driving port used by the HTTP and MCP adapters.
*/
package ports
