// Package solvers owns the daily puzzle solvers exposed by bitsctl.
//
// Ownership boundary:
// - solver metadata and report shape
// - day-keyed solver registry
// - the BITS packet decoder solver
package solvers
