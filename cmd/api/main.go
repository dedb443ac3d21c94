package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/serp-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/serp-tracker-api/infrastructure/integrator/dataforseo"
	"github.com/vfg2006/serp-tracker-api/infrastructure/integrator/dataforseo/dataforseoclient"
	"github.com/vfg2006/serp-tracker-api/infrastructure/repository"
	"github.com/vfg2006/serp-tracker-api/internal/api"
	"github.com/vfg2006/serp-tracker-api/internal/api/handler"
	"github.com/vfg2006/serp-tracker-api/internal/config"
	"github.com/vfg2006/serp-tracker-api/internal/scheduler"
	"github.com/vfg2006/serp-tracker-api/internal/usecases/summarizing"
	"github.com/vfg2006/serp-tracker-api/internal/usecases/tracking"
	"github.com/vfg2006/serp-tracker-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureWorkdir()
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewSnapshotRepository(pgConn)

	engine := tracking.NewEngine(cfg.Analytics)
	tracker := tracking.NewService(engine, snapshotRepo)
	summarizer := summarizing.NewSummarizer(cfg.Analytics)

	dataForSEOClient := dataforseoclient.NewClient(cfg.DataForSEO)
	dataForSEOIntegrator := dataforseo.New(cfg, dataForSEOClient)

	snapshotSyncService := scheduler.NewSnapshotSyncService(
		snapshotRepo,
		dataForSEOIntegrator,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de snapshots de SERP")
	} else {
		logrus.Info("Agendador de sincronização de snapshots de SERP iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		tracker,
		summarizer,
		handler.CronJobServices{
			handler.CronJobTypeSnapshots: snapshotSyncService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureWorkdir posiciona o processo no diretório do binário para achar o .env
func configureWorkdir() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
