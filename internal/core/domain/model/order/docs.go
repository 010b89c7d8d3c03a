// Package order models the Available stage of the dispatch pipeline: a
// restaurant-accepted order waiting for a courier to claim it.
//
// An Order carries the full denormalized document later snapshotted into the
// claimed and completed stages: customer and restaurant parties, line items,
// computed totals, opaque payment-provider references, and the drop-off
// destination. Its lifecycle is the head of the pipeline state machine
// (Available -> Claimed); the rejected-by list is a side-channel annotation
// that narrows per-courier visibility without changing state.
//
// The rejected-by list is advisory only. Safety against double-claims comes
// from the uniqueness constraint in the claimed-delivery collection, never
// from filtering.
package order
