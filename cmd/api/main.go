package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engagement-insights/infrastructure/loader"
	"github.com/vfg2006/engagement-insights/internal/api"
	"github.com/vfg2006/engagement-insights/internal/config"
	"github.com/vfg2006/engagement-insights/internal/scheduler"
	"github.com/vfg2006/engagement-insights/internal/usecases/insighting"
)

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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O dataset é carregado uma vez na subida e reaproveitado pelas requisições
	cache := loader.NewCachedLoader(loader.New())
	ds, err := cache.Load(cfg.Dataset.InputPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset")
	}
	logrus.WithFields(logrus.Fields{
		"path":     cfg.Dataset.InputPath,
		"rows":     ds.Len(),
		"warnings": len(cache.Warnings(cfg.Dataset.InputPath)),
	}).Info("Dataset carregado com sucesso")

	insightService := insighting.NewService(cfg, cache)

	refreshService := scheduler.NewDatasetRefreshService(cache, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(cfg, insightService, refreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
