package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-storefront/internal/app/storefront"
	checkoutworkflows "github.com/Apurer/go-storefront/internal/domains/checkout/adapters/workflows"
	checkoutactivities "github.com/Apurer/go-storefront/internal/durable/temporal/activities/checkout"
	orderworkflows "github.com/Apurer/go-storefront/internal/durable/temporal/workflows/checkout"
	platformobservability "github.com/Apurer/go-storefront/internal/platform/observability"
)

func main() {
	ctx := context.Background()
	const serviceName = "storefront-worker"
	cfg, err := storefront.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, cfg.Observability(serviceName))
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	// The activity issues receipts in-process; the API side is what goes through Temporal.
	receiptActivities := checkoutactivities.NewActivities(checkoutworkflows.NewInlineReceipts())

	cfg.TemporalDisabled = false
	temporalClient, err := storefront.ConnectTemporalClient(cfg, instruments)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderConfirmationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderConfirmationWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderConfirmationWorkflowName})
	w.RegisterActivityWithOptions(receiptActivities.IssueReceipt, activity.RegisterOptions{Name: checkoutactivities.IssueReceiptActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderConfirmationTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
