package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	palayv1 "palay-protector/api/palay/v1"
	accountrepo "palay-protector/internal/account/repository"
	accountservice "palay-protector/internal/account/service"
	"palay-protector/internal/classifier"
	"palay-protector/internal/config"
	"palay-protector/internal/db"
	"palay-protector/internal/detection"
	"palay-protector/internal/detection/archive"
	"palay-protector/internal/devotp"
	devotphandler "palay-protector/internal/devotp/handler"
	historyrepo "palay-protector/internal/history/repository"
	"palay-protector/internal/notify"
	"palay-protector/internal/otp"
	"palay-protector/internal/policy/engine"
	"palay-protector/internal/security"
	"palay-protector/internal/server"
	"palay-protector/internal/server/interceptors"
	sessionhandler "palay-protector/internal/session/handler"
	"palay-protector/internal/session/registry"
	"palay-protector/internal/session/service"
	"palay-protector/internal/telemetry"
	oteltelemetry "palay-protector/internal/telemetry/otel"
	"palay-protector/internal/telemetry/producer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx := context.Background()

	providers, err := oteltelemetry.NewProviders(ctx, cfg.OTLPEndpoint, cfg.ServiceName, cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	providers.SetGlobal()

	var kafkaEmitter telemetry.EventEmitter
	kafkaProducer := producer.NewKafkaProducer(cfg.TelemetryKafkaBrokersList(), cfg.TelemetryKafkaTopic)
	if kafkaProducer != nil {
		kafkaEmitter = kafkaProducer
		log.Printf("telemetry: emitting to kafka topic %s", cfg.TelemetryKafkaTopic)
	}
	events := telemetry.Multi(oteltelemetry.NewEventEmitter(providers.LoggerProvider), kafkaEmitter)

	signer, pub, ephemeral, err := security.LoadKeyPair(cfg.JWTPrivateKey, cfg.JWTPublicKey)
	if err != nil {
		log.Fatalf("jwt keys: %v", err)
	}
	if ephemeral {
		log.Println("jwt: no key pair configured, using an ephemeral key; tokens will not survive a restart")
	}
	tokens := security.NewTokenProvider(signer, pub, cfg.JWTIssuer, cfg.JWTAudience, cfg.SessionTTL())

	var (
		accounts accountrepo.Repository
		history  historyrepo.Repository
		conn     *sql.DB
	)
	if cfg.DatabaseURL != "" {
		conn, err = db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer conn.Close()
		accounts = accountrepo.NewPostgresRepository(conn)
		history = historyrepo.NewPostgresRepository(conn)
	} else {
		log.Println("db: DATABASE_URL not set, using in-memory stores")
		accounts = accountrepo.NewMemoryRepository()
		history = historyrepo.NewMemoryRepository()
	}

	var (
		notifier      notify.Notifier
		devOTPHandler palayv1.DevServiceServer
	)
	switch {
	case cfg.OTPReturnToClient:
		store := devotp.NewMemoryStore()
		notifier = notify.NewDevNotifier(store)
		devOTPHandler = devotphandler.NewServer(store)
		log.Println("otp: dev mode, codes are readable through DevService.GetOTP and no email is sent")
	case cfg.EmailEnabled():
		n, err := notify.NewEmailNotifier(notify.EmailConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
		if err != nil {
			log.Fatalf("notify: %v", err)
		}
		notifier = n
	default:
		log.Fatal("notify: set SMTP_HOST and SMTP_FROM, or OTP_RETURN_TO_CLIENT=true for development")
	}

	pipelineOpts := detection.Options{
		MaxImageBytes: cfg.MaxImageBytes,
		RecordHealthy: cfg.RecordHealthyScans,
		Events:        events,
	}
	if cfg.ArchiveEnabled() {
		a, err := archive.NewS3Archive(ctx, archive.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			log.Fatalf("archive: %v", err)
		}
		pipelineOpts.Archive = a
		log.Printf("archive: storing scans in bucket %s", cfg.S3Bucket)
	}
	if cfg.ClassifierAPIKey == "" {
		log.Println("classifier: CLASSIFIER_API_KEY is empty; inference requests will be rejected upstream")
	}
	rf := classifier.NewRoboflowClient(cfg.ClassifierURL, cfg.ClassifierModel, cfg.ClassifierAPIKey, cfg.ClassifierTimeoutDuration())
	pipeline := detection.NewPipeline(rf, history, pipelineOpts)

	var policies []string
	if cfg.PolicyFile != "" {
		b, err := os.ReadFile(cfg.PolicyFile)
		if err != nil {
			log.Fatalf("policy: %v", err)
		}
		policies = append(policies, string(b))
	}
	policy, err := engine.NewOPAEvaluator(ctx, policies...)
	if err != nil {
		log.Fatalf("policy: %v", err)
	}

	credentials := accountservice.NewCredentialService(accounts, security.NewHasher(cfg.BcryptCost))
	machine := service.NewMachine(credentials, otp.NewManager(cfg.OTPLifetime()), notifier, pipeline, history, policy, events)
	reg := registry.New(cfg.IdleTTL())

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer lis.Close()

	sessionAlive := func(_ context.Context, id string) (bool, error) {
		_, ok := reg.Get(id)
		return ok, nil
	}
	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.AuthUnary(tokens, server.PublicMethods, sessionAlive),
			interceptors.TelemetryUnary(events, server.TelemetrySkipMethods),
		),
	)
	deps := server.Deps{
		Session:             sessionhandler.NewServer(machine, reg, tokens),
		HealthPolicyChecker: policy,
		DevOTPHandler:       devOTPHandler,
	}
	if conn != nil {
		deps.HealthPinger = conn
	}
	server.RegisterServices(s, deps)

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down gRPC server...")
	s.GracefulStop()
	// Give in-flight async telemetry emits a chance to finish before closing exporters.
	time.Sleep(telemetry.ShutdownDrainDuration)
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			log.Printf("telemetry: kafka close: %v", err)
		}
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Printf("otel: shutdown: %v", err)
	}
	log.Println("gRPC server stopped")
}
