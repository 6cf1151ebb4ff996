package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bundleRepo "portfolio-srv/internal/bundle/repository"
	bundlePostgre "portfolio-srv/internal/bundle/repository/postgre"
	"portfolio-srv/internal/intent"
	intentPostgre "portfolio-srv/internal/intent/repository/postgre"
	intentUsecase "portfolio-srv/internal/intent/usecase"
	"portfolio-srv/internal/model"
	"portfolio-srv/internal/notification"
	notificationPostgre "portfolio-srv/internal/notification/repository/postgre"
	notificationUsecase "portfolio-srv/internal/notification/usecase"
	"portfolio-srv/internal/portfolio"
	portfolioRepo "portfolio-srv/internal/portfolio/repository"
	portfolioPostgre "portfolio-srv/internal/portfolio/repository/postgre"
	portfolioRedis "portfolio-srv/internal/portfolio/repository/redis"
	portfolioUsecase "portfolio-srv/internal/portfolio/usecase"
	"portfolio-srv/internal/risk"
	riskRedis "portfolio-srv/internal/risk/repository/redis"
	riskUsecase "portfolio-srv/internal/risk/usecase"
	pkgKafka "portfolio-srv/pkg/kafka"
)

// domains holds the usecases the consumer dispatches into.
type domains struct {
	bundleRepo   bundleRepo.BundleRepository
	snapshotRepo portfolioRepo.SnapshotRepository

	portfolioUC    portfolio.UseCase
	riskUC         risk.UseCase
	intentUC       intent.UseCase
	notificationUC notification.UseCase
}

// setupDomains initializes all domain layers (repositories and usecases)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domains, error) {
	bundles := bundlePostgre.New(srv.postgresDB, srv.l)
	snapshots := portfolioPostgre.New(srv.postgresDB, srv.l)
	snapshotCache := portfolioRedis.New(srv.redisClient, srv.l)
	riskCache := riskRedis.New(srv.redisClient, srv.l)
	intents := intentPostgre.New(srv.postgresDB, srv.l)
	preferences := notificationPostgre.New(srv.postgresDB, srv.l)

	portfolioUC := portfolioUsecase.New(bundles, snapshots, snapshotCache, srv.debankClient, srv.minioClient, srv.kafkaProducer, srv.l, portfolioUsecase.Config{
		ExportBucket: srv.config.MinIO.ExportBucket,
	})
	riskUC := riskUsecase.New(bundles, snapshots, riskCache, srv.quantClient, srv.l)
	intentUC := intentUsecase.New(intents, bundles, srv.intentCli, nil, srv.kafkaProducer, srv.l)
	notificationUC := notificationUsecase.New(preferences, srv.notifyCli, srv.encrypter, srv.l)

	srv.l.Infof(ctx, "Consumer domains initialized")

	return &domains{
		bundleRepo:     bundles,
		snapshotRepo:   snapshots,
		portfolioUC:    portfolioUC,
		riskUC:         riskUC,
		intentUC:       intentUC,
		notificationUC: notificationUC,
	}, nil
}

// startConsumer starts the Kafka consumer group in a background goroutine.
func (srv *ConsumerServer) startConsumer(ctx context.Context, doms *domains) (pkgKafka.IConsumer, error) {
	consumer, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: srv.config.Kafka.Brokers,
		GroupID: srv.config.Kafka.GroupID,
		Topics:  []string{srv.config.Kafka.Topic},
	}, func(msg pkgKafka.Message) error {
		return srv.handleEvent(ctx, doms, msg)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	go func() {
		if err := consumer.Consume(ctx); err != nil && ctx.Err() == nil {
			srv.l.Errorf(ctx, "Consumer error: %v", err)
		}
	}()

	srv.l.Infof(ctx, "Consuming %s", srv.config.Kafka.Topic)
	return consumer, nil
}

// handleEvent routes one event to its domain usecase. Malformed messages are
// skipped; usecase failures are returned so the message is redelivered.
func (srv *ConsumerServer) handleEvent(ctx context.Context, doms *domains, msg pkgKafka.Message) error {
	var event model.Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		srv.l.Warnf(ctx, "consumer.handleEvent: Invalid message format at offset %d (skipping): %v", msg.Offset, err)
		return nil
	}

	switch event.Type {
	case model.EventSnapshotRequested:
		if event.SnapshotRequested == nil || event.SnapshotRequested.BundleID == "" {
			srv.l.Warnf(ctx, "consumer.handleEvent: %s event missing bundle_id (skipping)", event.Type)
			return nil
		}
		return srv.refreshAndEvaluate(ctx, doms, event.SnapshotRequested.BundleID)

	case model.EventIntentSubmitted:
		if event.IntentSubmitted == nil || event.IntentSubmitted.IntentID == "" {
			srv.l.Warnf(ctx, "consumer.handleEvent: %s event missing intent_id (skipping)", event.Type)
			return nil
		}
		if _, err := doms.intentUC.SyncStatus(ctx, event.IntentSubmitted.IntentID); err != nil {
			srv.l.Errorf(ctx, "consumer.handleEvent: SyncStatus failed for intent %s: %v", event.IntentSubmitted.IntentID, err)
			return fmt.Errorf("sync intent status: %w", err)
		}
		return nil

	case model.EventRiskAlert:
		if event.RiskAlert == nil {
			srv.l.Warnf(ctx, "consumer.handleEvent: %s event missing payload (skipping)", event.Type)
			return nil
		}
		if err := doms.notificationUC.DispatchRiskAlert(ctx, *event.RiskAlert); err != nil {
			srv.l.Errorf(ctx, "consumer.handleEvent: DispatchRiskAlert failed for bundle %s: %v", event.RiskAlert.BundleID, err)
			return fmt.Errorf("dispatch risk alert: %w", err)
		}
		return nil

	default:
		srv.l.Warnf(ctx, "consumer.handleEvent: Unknown event type %q (skipping)", event.Type)
		return nil
	}
}

// refreshAndEvaluate recomputes a bundle's snapshot, re-evaluates its risk,
// and publishes an alert event when the risk level crosses the alerting bar.
func (srv *ConsumerServer) refreshAndEvaluate(ctx context.Context, doms *domains, bundleID string) error {
	if _, err := doms.portfolioUC.RefreshBundle(ctx, bundleID); err != nil {
		srv.l.Errorf(ctx, "consumer.refreshAndEvaluate: RefreshBundle failed for %s: %v", bundleID, err)
		return fmt.Errorf("refresh bundle: %w", err)
	}

	summary, alerting, err := doms.riskUC.EvaluateBundle(ctx, bundleID)
	if err != nil {
		// The snapshot is stored; a risk evaluation failure should not
		// cause the refresh to be replayed.
		srv.l.Warnf(ctx, "consumer.refreshAndEvaluate: EvaluateBundle failed for %s: %v", bundleID, err)
		return nil
	}
	if !alerting {
		return nil
	}

	srv.publishRiskAlert(ctx, doms, bundleID, summary)
	return nil
}

// publishRiskAlert emits a risk alert event for the bundle owner. Publish
// failures are logged and swallowed; the alert is regenerated on the next
// evaluation anyway.
func (srv *ConsumerServer) publishRiskAlert(ctx context.Context, doms *domains, bundleID string, summary *model.RiskSummary) {
	if srv.kafkaProducer == nil {
		return
	}

	b, err := doms.bundleRepo.GetByID(ctx, bundleID)
	if err != nil {
		srv.l.Warnf(ctx, "consumer.publishRiskAlert: GetByID failed for %s: %v", bundleID, err)
		return
	}

	event := model.Event{
		Type:       model.EventRiskAlert,
		OccurredAt: time.Now(),
		RiskAlert: &model.RiskAlertEvent{
			BundleID: bundleID,
			UserID:   b.UserID,
			Level:    summary.Level,
			Message: fmt.Sprintf("Bundle %q risk level is %s: annualized volatility %.0f%%, max drawdown %.0f%%",
				b.Name, summary.Level, summary.VolatilityAnnual*100, summary.MaxDrawdown*100),
		},
	}

	value, err := json.Marshal(event)
	if err != nil {
		srv.l.Errorf(ctx, "consumer.publishRiskAlert: Marshal failed: %v", err)
		return
	}
	if err := srv.kafkaProducer.Publish([]byte(bundleID), value); err != nil {
		srv.l.Warnf(ctx, "consumer.publishRiskAlert: Publish failed for %s: %v", bundleID, err)
		return
	}

	srv.l.Infof(ctx, "consumer.publishRiskAlert: Published %s alert for bundle %s", summary.Level, bundleID)
}
