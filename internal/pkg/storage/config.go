package storage

import (
	"errors"
	"fmt"

	"github.com/JulianBerardinelli/ballershub/internal/pkg/env"
)

// Config holds the KYC object storage configuration
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
	Enabled         bool
}

// LoadConfig loads the storage configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "us-east-1"),
		BucketName:      env.GetEnv("S3_KYC_BUCKET", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		Enabled:         env.GetEnv("S3_KYC_ENABLED", "false") == "true",
	}

	if config.Enabled {
		if config.AccessKeyID == "" {
			return nil, errors.New("S3_ACCESS_KEY_ID is required when KYC storage is enabled")
		}
		if config.SecretAccessKey == "" {
			return nil, errors.New("S3_SECRET_ACCESS_KEY is required when KYC storage is enabled")
		}
		if config.BucketName == "" {
			return nil, errors.New("S3_KYC_BUCKET is required when KYC storage is enabled")
		}
	}

	return config, nil
}

// IsEnabled returns true if KYC storage is enabled
func (c *Config) IsEnabled() bool {
	return c.Enabled
}

// GetObjectKey generates a standardized object key for a KYC document
func (c *Config) GetObjectKey(userID uint, kind, fileExtension string) string {
	// Format: kyc/<user_id>/<kind>.<ext>
	return fmt.Sprintf("kyc/%d/%s%s", userID, kind, fileExtension)
}

// GetBucketName returns the bucket name as configured
func (c *Config) GetBucketName() string {
	return c.BucketName
}
