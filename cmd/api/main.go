package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-goals-api/infrastructure/integrator/ssotica"
	"github.com/vfg2006/store-goals-api/infrastructure/integrator/ssotica/ssoticaclient"
	"github.com/vfg2006/store-goals-api/infrastructure/repository"
	"github.com/vfg2006/store-goals-api/internal/api"
	"github.com/vfg2006/store-goals-api/internal/config"
	"github.com/vfg2006/store-goals-api/internal/scheduler"
	"github.com/vfg2006/store-goals-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-goals-api/internal/usecases/goaling"
	"github.com/vfg2006/store-goals-api/internal/usecases/performance"
	"github.com/vfg2006/store-goals-api/internal/usecases/redistributing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	storeRepo := repository.NewStoreRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	absenceRepo := repository.NewAbsenceRepository(pgConn)
	collaboratorRepo := repository.NewCollaboratorRepository(pgConn)
	redistributionRepo := repository.NewRedistributionLogRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	ssoticaClient := ssoticaclient.NewClient()
	ssoticaIntegrator := ssotica.New(cfg, ssoticaClient)

	// As vendas do mês são reaproveitadas pelo roster inteiro da loja
	tracker := performance.NewSSOticaTracker(storeRepo, collaboratorRepo, ssoticaIntegrator, cfg.Goals.QuotaCacheTTL)

	goalService := goaling.NewService(
		storeRepo,
		goalRepo,
		collaboratorRepo,
		tracker,
		cfg.Goals.CollaboratorRole,
		cfg.Goals.QuotaCacheTTL,
	).WithInvalidators(tracker)

	redistributor := redistributing.NewService(
		goalRepo,
		absenceRepo,
		collaboratorRepo,
		redistributionRepo,
		cfg.Goals.CollaboratorRole,
	)

	absenceRedistributionService := scheduler.NewAbsenceRedistributionService(
		absenceRepo,
		redistributor,
		goalService,
		cfg,
	)

	if err := absenceRedistributionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de redistribuição de ausências")
	} else {
		logrus.Info("Agendador de redistribuição de ausências iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		goalService,
		redistributor,
		authenticator,
		absenceRedistributionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
