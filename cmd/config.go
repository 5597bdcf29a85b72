package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	HistoryCacheTTL time.Duration

	// RouteSimulationSchedule is a six-field cron expression; empty disables the job.
	RouteSimulationSchedule string
	LogLevel                string
}
