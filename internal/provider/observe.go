package provider

import (
	"context"

	"github.com/samber/ro"
)

// Observe exposes one action invocation as an Observable that emits exactly
// one Result and completes. The pipeline still runs once; this only adapts
// its single terminal outcome for subscribers composing reactive flows.
func (p *Provider) Observe(ctx context.Context, action Action, body []byte) ro.Observable[Result] {
	ch := make(chan Result, 1)

	go func() {
		defer close(ch)
		ch <- p.Run(ctx, action, body)
	}()

	return ro.FromChannel(ch)
}
