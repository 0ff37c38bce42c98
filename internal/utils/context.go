package utils

import "context"

type ctxKey string

const organizerIDKey ctxKey = "organizer_id"

func WithOrganizerID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, organizerIDKey, id)
}

func OrganizerIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(organizerIDKey).(int64)
	return id, ok
}
