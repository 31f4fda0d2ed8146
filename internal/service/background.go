package service

import (
	"context"
	"time"

	"github.com/sefazor/ttravel-backend/internal/repository"
)

const (
	backgroundTimeout = 30 * time.Second
	defaultSiteName   = "TTravel Hospitality"
)

// runner executes side effects (mail, events) that must not hold up the
// request. Tests swap in a synchronous one.
type runner func(func())

func goroutine(fn func()) { go fn() }

// detach returns a context that outlives the request but still times out.
func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), backgroundTimeout)
}

// contentValue reads a site copy key, returning fallback when it is unset.
func contentValue(ctx context.Context, content repository.ContentRepository, key, fallback string) string {
	c, err := content.GetByKey(ctx, key)
	if err != nil || c.Value == "" {
		return fallback
	}
	return c.Value
}
