// SPDX-License-Identifier: MIT

package social

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// Pair is one connection query.
type Pair struct {
	From int
	To   int
}

// Connections answers many ShortestPath queries concurrently, at most
// WithConcurrency of them at a time. Results are in the order of pairs.
// The first invalid pair (ErrInvalidID, ErrSamePerson) or a cancelled ctx
// aborts the batch; "no connection" results do not.
func (n *Network) Connections(ctx context.Context, pairs []Pair) ([]Connection, error) {
	began := time.Now()
	ctx, span := n.inst.startQuery(ctx, queryConnections, attribute.Int("friendgraph.pairs", len(pairs)))

	out := make([]Connection, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.concurrency)

	for i, p := range pairs {
		i, p := i, p // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := n.shortestPath(gctx, p.From, p.To)
			if err != nil {
				return fmt.Errorf("social: pair #%d (%d,%d): %w", i, p.From, p.To, err)
			}
			out[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		n.logger.Debug("connections: aborted", "pairs", len(pairs), "err", err)
		n.inst.record(ctx, span, queryConnections, outcomeError, began, 0)
		return nil, err
	}

	n.logger.Debug("connections", "pairs", len(pairs))
	n.inst.record(ctx, span, queryConnections, outcomeOK, began, 0)
	return out, nil
}
