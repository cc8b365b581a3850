// Package services provides domain services that operate across order
// aggregates in the freight console. It implements logic that doesn't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - CollectionView: pure search/filter/pagination over an order working set
//
// Domain services stay free of I/O and infrastructure concerns following
// Domain-Driven Design principles.
package services
