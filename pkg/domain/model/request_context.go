package model

import (
	"context"

	"github.com/secmon-lab/oncall-override/pkg/domain/types"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const requestContextKey contextKey = "requestContext"

// RequestContext describes who triggered the work. It is preserved across
// async boundaries so background tasks can log and notify the requester.
type RequestContext struct {
	RequestID   string            `json:"request_id,omitempty"`
	SlackUserID types.SlackUserID `json:"slack_user_id,omitempty"`
	ChannelID   types.ChannelID   `json:"channel_id,omitempty"`
}

// WithRequestContext adds RequestContext to the context
func WithRequestContext(ctx context.Context, reqCtx *RequestContext) context.Context {
	if reqCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, requestContextKey, reqCtx)
}

// GetRequestContext retrieves RequestContext from the context
func GetRequestContext(ctx context.Context) (*RequestContext, bool) {
	reqCtx, ok := ctx.Value(requestContextKey).(*RequestContext)
	return reqCtx, ok
}
