package ttlcache

import (
	"context"
	"time"
)

func (c *Cache) startSweeper(every time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.wg.Add(1)
	go c.sweepLoop(ctx, every)
	c.logger.Debug().Dur("interval", every).Msg("ttlcache: sweeper started")
}

// sweepLoop purges expired entries on a ticker until ctx is cancelled.
// The ticker only paces the loop; expiry is still judged against the cache clock.
func (c *Cache) sweepLoop(ctx context.Context, every time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.DeleteExpired(); n > 0 {
				c.logger.Debug().Int("removed", n).Msg("ttlcache: swept expired entries")
			}
		}
	}
}
