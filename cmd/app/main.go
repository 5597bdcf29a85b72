package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"logistics/cmd"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/redis"
	"logistics/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const defaultHistoryCacheTTL = 60 * time.Second

func main() {
	loadDotEnv()
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisClient := redis.NewClient(configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
	defer redisClient.Close()

	app := cmd.NewCompositionRoot(
		configs,
		db,
		redisClient,
		logger,
	)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT", "8080"),
		DBDriver:                goDotEnvVariable("DB_DRIVER", cmd.DriverPostgres),
		DBHost:                  goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:                  goDotEnvVariable("DB_PORT", "5432"),
		DBUser:                  goDotEnvVariable("DB_USER", ""),
		DBPassword:              goDotEnvVariable("DB_PASSWORD", ""),
		DBName:                  goDotEnvVariable("DB_NAME", ""),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE", "disable"),
		RedisAddr:               goDotEnvVariable("REDIS_ADDR", "localhost:6379"),
		RedisPassword:           goDotEnvVariable("REDIS_PASSWORD", ""),
		RouteSimulationSchedule: goDotEnvVariable("ROUTE_SIMULATION_SCHEDULE", ""),
		LogLevel:                goDotEnvVariable("LOG_LEVEL", "info"),
		HistoryCacheTTL:         defaultHistoryCacheTTL,
	}

	if raw := goDotEnvVariable("REDIS_DB", "0"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid REDIS_DB %q: %v", raw, err)
		}
		config.RedisDB = db
	}

	if raw := goDotEnvVariable("HISTORY_CACHE_TTL", ""); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			log.Fatalf("Invalid HISTORY_CACHE_TTL %q, expected a positive duration such as 60s", raw)
		}
		config.HistoryCacheTTL = ttl
	}

	return config
}

// loadDotEnv reads .env when present. Variables already set in the
// environment take precedence.
func loadDotEnv() {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func goDotEnvVariable(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true

	spec, err := httpadapter.LoadSpec()
	if err != nil {
		log.Fatalf("Failed to load OpenAPI spec: %v", err)
	}
	validator, err := httpadapter.RequestValidator(spec)
	if err != nil {
		log.Fatalf("Failed to build request validator: %v", err)
	}
	if err = httpadapter.RegisterSwaggerDoc(spec); err != nil {
		log.Fatalf("Failed to register swagger doc: %v", err)
	}

	e.Use(httpadapter.RequestMetrics)
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(app.CreateHTTPHandlers())
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
