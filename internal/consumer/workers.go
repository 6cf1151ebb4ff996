package consumer

import (
	"context"
	"time"
)

// pruneInterval is how often old snapshots are deleted.
const pruneInterval = 24 * time.Hour

// startWorkers launches the periodic refresh, intent polling and snapshot
// pruning loops. Workers whose interval is zero or negative stay disabled.
func (srv *ConsumerServer) startWorkers(ctx context.Context, doms *domains) {
	if interval := srv.config.Consumer.SnapshotRefreshInterval; interval > 0 {
		go srv.runSnapshotRefresher(ctx, doms, time.Duration(interval)*time.Second)
	} else {
		srv.l.Infof(ctx, "Snapshot refresher disabled")
	}

	if interval := srv.config.Consumer.IntentPollInterval; interval > 0 {
		go srv.runIntentPoller(ctx, doms, time.Duration(interval)*time.Second)
	} else {
		srv.l.Infof(ctx, "Intent poller disabled")
	}

	if days := srv.config.Consumer.SnapshotRetentionDays; days > 0 {
		go srv.runSnapshotPruner(ctx, doms, days)
	} else {
		srv.l.Infof(ctx, "Snapshot pruner disabled")
	}
}

// runSnapshotRefresher periodically refreshes every bundle so value history
// keeps accumulating even for bundles nobody is looking at.
func (srv *ConsumerServer) runSnapshotRefresher(ctx context.Context, doms *domains, interval time.Duration) {
	srv.l.Infof(ctx, "Snapshot refresher started (every %s)", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.refreshAllBundles(ctx, doms)
		}
	}
}

func (srv *ConsumerServer) refreshAllBundles(ctx context.Context, doms *domains) {
	bundles, err := doms.bundleRepo.ListAll(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "consumer.refreshAllBundles: ListAll failed: %v", err)
		return
	}

	var failed int
	for _, b := range bundles {
		if ctx.Err() != nil {
			return
		}
		if len(b.Addresses) == 0 {
			continue
		}
		if err := srv.refreshAndEvaluate(ctx, doms, b.ID); err != nil {
			failed++
		}
	}

	srv.l.Infof(ctx, "consumer.refreshAllBundles: Refreshed %d bundles (%d failed)", len(bundles), failed)
}

// runIntentPoller periodically syncs every non-terminal intent with the
// execution service.
func (srv *ConsumerServer) runIntentPoller(ctx context.Context, doms *domains, interval time.Duration) {
	srv.l.Infof(ctx, "Intent poller started (every %s)", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.pollActiveIntents(ctx, doms)
		}
	}
}

func (srv *ConsumerServer) pollActiveIntents(ctx context.Context, doms *domains) {
	intents, err := doms.intentUC.ListActive(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "consumer.pollActiveIntents: ListActive failed: %v", err)
		return
	}

	for _, in := range intents {
		if ctx.Err() != nil {
			return
		}
		if _, err := doms.intentUC.SyncStatus(ctx, in.ID); err != nil {
			srv.l.Warnf(ctx, "consumer.pollActiveIntents: SyncStatus failed for intent %s: %v", in.ID, err)
		}
	}
}

// runSnapshotPruner deletes snapshots older than the retention window once a
// day.
func (srv *ConsumerServer) runSnapshotPruner(ctx context.Context, doms *domains, retentionDays int) {
	srv.l.Infof(ctx, "Snapshot pruner started (retention %d days)", retentionDays)

	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().AddDate(0, 0, -retentionDays)
			deleted, err := doms.snapshotRepo.DeleteSnapshotsBefore(ctx, cutoff)
			if err != nil {
				srv.l.Errorf(ctx, "consumer.runSnapshotPruner: DeleteSnapshotsBefore failed: %v", err)
				continue
			}
			if deleted > 0 {
				srv.l.Infof(ctx, "consumer.runSnapshotPruner: Deleted %d snapshots older than %s", deleted, cutoff.Format(time.RFC3339))
			}
		}
	}
}
