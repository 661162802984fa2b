package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
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
		Secret     string `yaml:"secret"`
		TTL        int    `yaml:"ttl"`         // минуты, access token
		RefreshTTL int    `yaml:"refresh_ttl"` // часы, refresh token
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		Enabled      bool   `yaml:"enabled"`
	} `yaml:"email"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию.
// Если задан DATABASE_URL - конфигурация собирается из переменных окружения
// (режим тестов и деплоя), иначе читается config/config.yaml.
func LoadConfig() {
	var cfg Config

	// .env, если есть рядом с бинарником
	_ = godotenv.Load()

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

		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из переменных окружения")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60
	cfg.JWT.RefreshTTL = 24 * 7

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM")
	cfg.Email.FromName = "UPSS Careers"
	cfg.Email.Enabled = cfg.Email.SMTPHost != ""

	AppConfig = &cfg
}

// GetConfig возвращает загруженную конфигурацию
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
