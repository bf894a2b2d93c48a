// Package storefront defines the client-side state tree of a B2B commerce
// session — company account, quote workflow, approval queue, and the B2B
// cart — together with the actions and reducers that evolve it.
//
// The tree is immutable by convention: reducers never modify a state value
// in place, they return either the identical pointer (nothing changed) or a
// freshly built one. Unchanged slices keep their references across
// transitions, which is what makes reference-based memoization in the
// selectors package effective.
//
// Reading the tree belongs to package storefront/views; owning and evolving
// a tree over time belongs to storefront/store.
package storefront
