package consumer

import (
	"context"
	"fmt"

	analysisUsecase "vigil-srv/internal/analysis/usecase"
	assessmentConsumer "vigil-srv/internal/assessment/delivery/kafka/consumer"
	assessmentPostgre "vigil-srv/internal/assessment/repository/postgre"
	assessmentUsecase "vigil-srv/internal/assessment/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	scanConsumer *assessmentConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	analysisUC := analysisUsecase.New(srv.l)

	scanRepo := assessmentPostgre.New(srv.postgresDB, srv.l)
	assessmentUC := assessmentUsecase.New(
		scanRepo,
		analysisUC,
		srv.geminiClient,
		srv.kafkaProducer,
		srv.minioClient,
		srv.l,
		assessmentUsecase.Config{
			ReportBucket: srv.minioBucket,
		},
	)

	scanCons, err := assessmentConsumer.New(assessmentConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     assessmentUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scan consumer: %w", err)
	}

	srv.l.Infof(ctx, "Assessment domain initialized")

	return &domainConsumers{
		scanConsumer: scanCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.scanConsumer.ConsumeScanSubmitted(ctx); err != nil {
		return fmt.Errorf("failed to start scan consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.scanConsumer != nil {
		if err := consumers.scanConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing scan consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
