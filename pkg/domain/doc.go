/*
Package domain contains the core models of the lesolver pipeline.

It defines the linear system produced by the text parser, the solution returned by a
solver, the storage event that triggers an invocation and the terminal Outcome every
invocation produces. This package is kept pure and free of I/O, following Hexagonal
Architecture principles.

# Key Entities

  - Matrix / LinearSystem: a square coefficient matrix (row-major) plus its right-hand side.
  - Solution: either a determinate vector or the explicit "no solution" marker.
  - StorageEvent: the reference to one uploaded object.
  - Stage / Outcome: the pipeline state machine and its single terminal result.
*/
package domain
