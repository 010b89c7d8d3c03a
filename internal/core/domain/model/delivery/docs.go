// Package delivery models the claimed and completed stages of the dispatch
// pipeline.
//
// A ClaimedDelivery is the working record of a courier actively fulfilling
// one order. Its human-facing order id is globally unique across the claimed
// collection at any instant; that uniqueness constraint, enforced by the
// store, is the mechanism that arbitrates claim races. A CompletedOrder is
// the immutable historical record produced exactly once per delivery.
//
// Both stages carry a full denormalized snapshot of the originating order so
// they stay readable after upstream records are cleaned up.
package delivery
