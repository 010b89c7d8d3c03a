package ports

import (
	"context"
)

// Notifier publishes push notifications to courier devices. Delivery is best
// effort: dispatch never fails because a notification could not be sent.
type Notifier interface {
	// Notify sends the message to every token. Implementations report
	// a combined error for the tokens that failed.
	Notify(ctx context.Context, title string, body string, tokens []string) error
}
