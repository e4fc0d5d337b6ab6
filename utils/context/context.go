package context

import (
	"context"

	"github.com/mukhtarmk/ecommerce-api/constant"
)

func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
