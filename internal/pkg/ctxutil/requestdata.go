package ctxutil

import "context"

type requestDataKey struct{}

// RequestData carries the identity attached by the transport layer.
// Authentication itself lives in front of this service; we only trust
// what the gateway forwarded.
type RequestData struct {
	RequesterEmail string
	RequestID      string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey{})
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}
