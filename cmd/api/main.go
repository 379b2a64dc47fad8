package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/firebase"
	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/firebase/firebaseclient"
	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/sheets"
	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe"
	"github.com/martonai/revenue-dashboard-api/infrastructure/integrator/stripe/stripeclient"
	"github.com/martonai/revenue-dashboard-api/internal/api"
	"github.com/martonai/revenue-dashboard-api/internal/config"
	"github.com/martonai/revenue-dashboard-api/internal/usecases/authenticating"
	"github.com/martonai/revenue-dashboard-api/internal/usecases/customering"
	"github.com/martonai/revenue-dashboard-api/internal/usecases/reporting"
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

	// Um client por conta de billing: SaaS e agência compartilham o formato
	// de resposta, mas nunca a credencial.
	saasClient := stripeclient.NewClient(cfg, cfg.Stripe.SaaSSecretKey)
	agencyClient := stripeclient.NewClient(cfg, cfg.Stripe.AgencySecretKey)
	stripeIntegrator := stripe.New(cfg, saasClient, agencyClient)

	firebaseClient, err := firebaseclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Firestore")
	}
	defer firebaseClient.Close()
	firebaseIntegrator := firebase.New(cfg, firebaseClient)

	sheetsClient := sheetsclient.NewClient(cfg)
	sheetsIntegrator := sheets.New(cfg, sheetsClient)

	reportingService := reporting.NewService(stripeIntegrator, sheetsIntegrator, firebaseIntegrator)
	customeringService := customering.NewService(stripeIntegrator)
	authenticator := authenticating.NewService(cfg)

	server, err := api.New(
		cfg,
		reportingService,
		customeringService,
		authenticator,
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
