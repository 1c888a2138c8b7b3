package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	AI struct {
		GeminiAPIKey string `yaml:"gemini_api_key"`
		Model        string `yaml:"model"`
	} `yaml:"ai"`

	Workers struct {
		SweepIntervalMinutes    int    `yaml:"sweep_interval_minutes"`
		ReminderIntervalMinutes int    `yaml:"reminder_interval_minutes"`
		DayToleranceMinutes     int    `yaml:"day_tolerance_minutes"`
		HourToleranceMinutes    int    `yaml:"hour_tolerance_minutes"`
		PurgeAfterHours         int    `yaml:"purge_after_hours"`
		CronSecret              string `yaml:"cron_secret"`
	} `yaml:"workers"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	// Environment-variable mode, used by the tests.
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "test-secret"
	}
	cfg.JWT.TTL = 60

	cfg.Email.SMTPHost = "smtp.test.local"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "reminders@intervue.test"
	cfg.Email.FromName = "Intervue"

	cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Workers.CronSecret = "test-cron-secret"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}
	if cfg.Workers.SweepIntervalMinutes == 0 {
		cfg.Workers.SweepIntervalMinutes = 60
	}
	if cfg.Workers.ReminderIntervalMinutes == 0 {
		cfg.Workers.ReminderIntervalMinutes = 15
	}
	if cfg.Workers.DayToleranceMinutes == 0 {
		cfg.Workers.DayToleranceMinutes = 30
	}
	if cfg.Workers.HourToleranceMinutes == 0 {
		cfg.Workers.HourToleranceMinutes = 15
	}
	if cfg.Workers.PurgeAfterHours == 0 {
		cfg.Workers.PurgeAfterHours = 24
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
