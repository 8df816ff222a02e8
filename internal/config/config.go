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
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	// Identity describes the external identity provider collaborator that
	// authenticates end users. Companies never go through it.
	Identity struct {
		Secret string `yaml:"secret"`
		Issuer string `yaml:"issuer"`
	} `yaml:"identity"`

	Storage struct {
		Type       string `yaml:"type"`        // local, cloudflare_r2
		BasePath   string `yaml:"base_path"`   // For local storage
		BaseURL    string `yaml:"base_url"`    // Public URL base
		Bucket     string `yaml:"bucket"`      // For R2
		AccessKey  string `yaml:"access_key"`  // For R2
		SecretKey  string `yaml:"secret_key"`  // For R2
		Endpoint   string `yaml:"endpoint"`    // For R2
		PublicRead bool   `yaml:"public_read"` // Make files public
	} `yaml:"storage"`

	Upload struct {
		MaxResumeSize int64    `yaml:"max_resume_size"` // bytes
		ResumeTypes   []string `yaml:"resume_types"`    // allowed MIME types
	} `yaml:"upload"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or builds the config entirely from environment
// variables when DATABASE_URL is set (container and test deployments).
func LoadConfig() {
	var cfg Config

	// .env is optional; ignore the error when absent
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

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60 * 24
	cfg.Identity.Secret = os.Getenv("IDENTITY_SECRET")
	cfg.Identity.Issuer = os.Getenv("IDENTITY_ISSUER")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/files"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60 * 24
	}
	if cfg.Upload.MaxResumeSize == 0 {
		cfg.Upload.MaxResumeSize = 5 * 1024 * 1024 // 5 MiB
	}
	if len(cfg.Upload.ResumeTypes) == 0 {
		cfg.Upload.ResumeTypes = []string{"application/pdf"}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
