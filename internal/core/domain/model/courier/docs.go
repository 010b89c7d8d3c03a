// Package courier models the courier profile used by the dispatch pipeline:
// the on/off duty flag consulted before a claim, the payout bank details, and
// the push-notification token used for new-order broadcasts. Courier ids are
// opaque strings issued by the identity provider.
package courier
