package usecase

import "context"

type actorKey struct{}

// WithActor tags a request context with the acting user. Activity events
// fall back to "system" when no actor is present (public endpoints).
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func actorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok && v != "" {
		return v
	}
	return "system"
}
