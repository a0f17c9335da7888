package sink

import "context"

// Sink is where generated calendar artifacts end up.
type Sink interface {
	Put(ctx context.Context, name, content, contentType string) error
}
