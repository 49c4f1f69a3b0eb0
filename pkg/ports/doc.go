/*
Package ports defines the driven ports (interfaces) of the lesolver pipeline.

These interfaces decouple the orchestrator from external implementations, allowing the
pipeline to run against S3, Redis, the local filesystem or memory, and against any
solver that honours the contract.

# Key Interfaces

  - ObjectStore: fetches and stores objects by bucket and key.
  - Solver: solves A·x = b or reports that no determinate solution exists.
*/
package ports
