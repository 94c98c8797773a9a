// Package kernel provides the core domain primitives shared across the
// store's domain model.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and
//     comparison capabilities
//
// These primitives are immutable and thread-safe, so they can be shared
// freely between aggregates and adapters.
package kernel
