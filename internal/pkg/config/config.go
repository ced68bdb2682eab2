package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		PaymentReconcileInterval  time.Duration
		PaymentReconcileOlderThan time.Duration
		PaymentReconcileLimit     int
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Paystack struct {
		BaseURL        string
		SecretKey      string
		WebhookSecret  string
		RequestTimeout time.Duration
		Currency       string // валюта списания для новых платежей
		Currencies     []string
		Channels       []string
	}

	Notification struct {
		From          string
		SMTPHost      string
		SMTPPort      string
		SMTPUser      string
		SMTPPassword  string
		QueueCapacity int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
		ProducerRetryMax          int
	}

	KafkaHandlers struct {
		NotificationSend NotificationSend
	}

	NotificationSend struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Paystack     Paystack
		Notification Notification
		Kafka        Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	reconcileInterval, err := osGetEnvDuration("BACKGROUND_PAYMENT_RECONCILE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reconcileOlderThan, err := osGetEnvDuration("BACKGROUND_PAYMENT_RECONCILE_OLDER_THAN")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reconcileLimit, err := osGetInt("BACKGROUND_PAYMENT_RECONCILE_LIMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paystackTimeout, err := osGetEnvDuration("PAYSTACK_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	queueCapacity, err := osGetInt("NOTIFICATION_QUEUE_CAPACITY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaProducerRetryMax, err := osGetInt("KAFKA_SARAMA_PRODUCER_RETRY_MAX")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	notificationSendTimeout, err := osGetEnvDuration("KAFKA_HANDLER_NOTIFICATION_SEND_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			PaymentReconcileInterval:  reconcileInterval,
			PaymentReconcileOlderThan: reconcileOlderThan,
			PaymentReconcileLimit:     reconcileLimit,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Paystack: Paystack{
			BaseURL:        os.Getenv("PAYSTACK_BASE_URL"),
			SecretKey:      os.Getenv("PAYSTACK_SECRET_KEY"),
			WebhookSecret:  os.Getenv("PAYSTACK_WEBHOOK_SECRET"),
			RequestTimeout: paystackTimeout,
			Currency:       os.Getenv("PAYSTACK_CURRENCY"),
			Currencies:     osGetList("PAYSTACK_SUPPORTED_CURRENCIES"),
			Channels:       osGetList("PAYSTACK_CHANNELS"),
		},
		Notification: Notification{
			From:          os.Getenv("NOTIFICATION_FROM"),
			SMTPHost:      os.Getenv("SMTP_HOST"),
			SMTPPort:      os.Getenv("SMTP_PORT"),
			SMTPUser:      os.Getenv("SMTP_USER"),
			SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
			QueueCapacity: queueCapacity,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
				ProducerRetryMax:          saramaProducerRetryMax,
			},
			Handlers: KafkaHandlers{
				NotificationSend: NotificationSend{
					ProcessTimeout: notificationSendTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Paystack.BaseURL == "" {
		return errors.New("PAYSTACK_BASE_URL is required")
	}
	if cfg.Paystack.SecretKey == "" {
		return errors.New("PAYSTACK_SECRET_KEY is required")
	}
	if cfg.Paystack.WebhookSecret == "" {
		return errors.New("PAYSTACK_WEBHOOK_SECRET is required")
	}
	if cfg.Paystack.RequestTimeout == time.Duration(0) {
		return errors.New("PAYSTACK_REQUEST_TIMEOUT is required")
	}
	if cfg.Paystack.Currency == "" {
		return errors.New("PAYSTACK_CURRENCY is required")
	}
	if len(cfg.Paystack.Currencies) == 0 {
		return errors.New("PAYSTACK_SUPPORTED_CURRENCIES is required")
	}

	if cfg.Notification.From == "" {
		return errors.New("NOTIFICATION_FROM is required")
	}
	if cfg.Notification.SMTPHost == "" {
		return errors.New("SMTP_HOST is required")
	}
	if cfg.Notification.SMTPPort == "" {
		return errors.New("SMTP_PORT is required")
	}
	if cfg.Notification.QueueCapacity == 0 {
		return errors.New("NOTIFICATION_QUEUE_CAPACITY is required")
	}

	if cfg.Tasks.PaymentReconcileInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PAYMENT_RECONCILE_INTERVAL is required")
	}
	if cfg.Tasks.PaymentReconcileOlderThan == time.Duration(0) {
		return errors.New("BACKGROUND_PAYMENT_RECONCILE_OLDER_THAN is required")
	}
	if cfg.Tasks.PaymentReconcileLimit == 0 {
		return errors.New("BACKGROUND_PAYMENT_RECONCILE_LIMIT is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.NotificationSend.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_NOTIFICATION_SEND_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetList(s string) []string {
	val := os.Getenv(s)
	if val == "" {
		return nil
	}

	parts := strings.Split(val, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
