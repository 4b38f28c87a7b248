package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"celebra/internal/infrastructure/broker"
	"celebra/internal/infrastructure/database"
	"celebra/internal/infrastructure/minio"
	"celebra/internal/scheduler"
	"celebra/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	DBConfig        database.Config        `yaml:"db_config"`
	JournalConfig   broker.Config          `yaml:"redis_journal_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Sweeper         scheduler.Config       `yaml:"sweeper"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.JournalConfig.URI = os.Getenv("JOURNAL_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.MinIOUploader.Bucket == "" {
		return Error{reason: "minio_uploader.bucket is required"}
	}
	if c.MinIORemover.Bucket == "" {
		return Error{reason: "minio_remover.bucket is required"}
	}
	if c.Sweeper.Interval == "" {
		return Error{reason: "sweeper.interval is required"}
	}

	return nil
}
