package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-insights/infrastructure/database/postgres"
	"github.com/vfg2006/engagement-insights/infrastructure/exporter"
	"github.com/vfg2006/engagement-insights/infrastructure/loader"
	"github.com/vfg2006/engagement-insights/infrastructure/repository"
	"github.com/vfg2006/engagement-insights/internal/config"
	"github.com/vfg2006/engagement-insights/internal/domain"
	"github.com/vfg2006/engagement-insights/internal/usecases/reporting"
	"github.com/vfg2006/engagement-insights/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const exportTimeout = 2 * time.Minute

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar identificador da execução")
	}
	logger := logrus.WithField("run_id", runID)

	cache := loader.NewCachedLoader(loader.New())
	ds, err := cache.Load(cfg.Dataset.InputPath)
	if err != nil {
		logger.WithError(err).Fatal("Erro ao carregar o dataset")
	}

	for _, warning := range cache.Warnings(cfg.Dataset.InputPath) {
		logger.WithFields(logrus.Fields{
			"row":    warning.Row,
			"reason": warning.Reason,
		}).Debug("Linha com taxas indefinidas")
	}

	opts := reporting.NewOptions(cfg.Report)
	report := reporting.Build(ds, opts)
	report.RunID = runID
	markdown := reporting.Markdown(report)

	fmt.Println(markdown)

	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	// O dataset em cache é somente leitura, então os exportadores rodam em paralelo
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return exporter.WriteReport(cfg.Output.ReportPath, markdown)
	})
	g.Go(func() error {
		return exporter.WriteProcessedCSV(cfg.Output.ProcessedPath, ds)
	})
	g.Go(func() error {
		return exporter.WriteDashboard(cfg.Output.DashboardPath, reporting.BuildPanels(ds, opts.PanelOptions()))
	})
	if cfg.Database.ExportEnabled {
		g.Go(func() error {
			return exportToDatabase(gctx, cfg.Database, runID, ds)
		})
	}

	if err := g.Wait(); err != nil {
		logger.WithError(err).Fatal("Erro ao exportar os resultados")
	}

	logger.WithFields(logrus.Fields{
		"rows":      ds.Len(),
		"processed": cfg.Output.ProcessedPath,
		"dashboard": cfg.Output.DashboardPath,
		"report":    cfg.Output.ReportPath,
	}).Info("Análise concluída")
}

// exportToDatabase grava as linhas derivadas da execução no PostgreSQL
func exportToDatabase(ctx context.Context, dbConfig config.Database, runID string, ds domain.Dataset) error {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	return repository.NewPostMetricsRepository(conn).SaveBatch(ctx, runID, ds.Posts)
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
