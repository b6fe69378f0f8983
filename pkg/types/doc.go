// Package types defines the shared contracts of dot: the primitive
// filesystem interface its backends implement, the ports the
// reconciliation engine depends on, and the result values it returns.
//
// Nothing in this package has behavior beyond trivial helpers, so every
// other package may import it.
package types
