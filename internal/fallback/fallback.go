// Package fallback implements the retry-then-substitute resilience
// protocol around live retrieval. Every wrapped operation reports its
// provenance: callers always know whether they are looking at live or
// fixture data.
package fallback

import "context"

// Result pairs a payload with its provenance. UsedFallback is true only
// when the primary operation failed and the fixture set supplied the
// payload; a successful primary is never flagged, however odd its data.
type Result[T any] struct {
	Payload      T
	UsedFallback bool
}

// With attempts primary once. On failure with allow=false the original
// error re-raises (fail-closed). On failure with allow=true the fallback
// supplies the payload and the result is flagged. No retry happens at this
// layer; retry policy belongs to the orchestration above.
func With[T any](primary, fallback func() (T, error), allow bool) (Result[T], error) {
	payload, err := primary()
	if err == nil {
		return Result[T]{Payload: payload}, nil
	}
	if !allow {
		var zero T
		return Result[T]{Payload: zero}, err
	}
	substitute, err := fallback()
	if err != nil {
		var zero T
		return Result[T]{Payload: zero}, err
	}
	return Result[T]{Payload: substitute, UsedFallback: true}, nil
}

// WithContext is With for primaries that take a context.
func WithContext[T any](ctx context.Context, primary func(context.Context) (T, error), fallback func() (T, error), allow bool) (Result[T], error) {
	return With(func() (T, error) { return primary(ctx) }, fallback, allow)
}
