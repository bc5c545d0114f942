package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON configuration file. Durations
// are given in minutes so the file stays plain numbers.
type jsonConfig struct {
	EndpointAddr       *string `json:"endpoint_addr"`
	DatabaseDSN        *string `json:"database_dsn"`
	SecretKey          *string `json:"secret_key"`
	TokenTTLMinutes    *int    `json:"token_ttl_minutes"`
	PasswordMaxAgeDays *int    `json:"password_max_age_days"`
	StorageDriver      *string `json:"storage_driver"`
	UploadDir          *string `json:"upload_dir"`
	PublicBaseURL      *string `json:"public_base_url"`
	S3AccessKey        *string `json:"s3_access_key"`
	S3SecretKey        *string `json:"s3_secret_key"`
	S3Bucket           *string `json:"s3_bucket"`
	S3Region           *string `json:"s3_region"`
	S3BaseEndpoint     *string `json:"s3_base_endpoint"`
}

// parseJSON overlays values from the JSON file named by -c/-config, when
// given. Absent fields keep their current values; an unreadable or invalid
// file panics, since running with half a config is worse than not starting.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&config.EndpointAddr, c.EndpointAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.StorageDriver, c.StorageDriver)
	setString(&config.UploadDir, c.UploadDir)
	setString(&config.PublicBaseURL, c.PublicBaseURL)
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.TokenTTLMinutes != nil {
		config.TokenTTL = time.Duration(*c.TokenTTLMinutes) * time.Minute
	}
	if c.PasswordMaxAgeDays != nil {
		config.PasswordMaxAgeDays = *c.PasswordMaxAgeDays
	}
}
