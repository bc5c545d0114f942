package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays values from AUTH_* environment variables. Unset
// variables keep the current values; malformed numbers are ignored rather
// than fatal, matching flag defaults behavior.
func parseEnv(config *Config) {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setInt := func(dst *int, key string) {
		if v, ok := os.LookupEnv(key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	setString(&config.EndpointAddr, "AUTH_ADDRESS")
	setString(&config.DatabaseDSN, "AUTH_DATABASE_DSN")
	setString(&config.SecretKey, "AUTH_SECRET_KEY")
	setString(&config.StorageDriver, "AUTH_STORAGE_DRIVER")
	setString(&config.UploadDir, "AUTH_UPLOAD_DIR")
	setString(&config.PublicBaseURL, "AUTH_PUBLIC_BASE_URL")
	setString(&config.S3AccessKey, "AUTH_S3_ACCESS_KEY")
	setString(&config.S3SecretKey, "AUTH_S3_SECRET_KEY")
	setString(&config.S3Bucket, "AUTH_S3_BUCKET")
	setString(&config.S3Region, "AUTH_S3_REGION")
	setString(&config.S3BaseEndpoint, "AUTH_S3_BASE_ENDPOINT")

	var ttlMinutes int
	if v, ok := os.LookupEnv("AUTH_TOKEN_TTL_MINUTES"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			ttlMinutes = n
		}
	}
	if ttlMinutes > 0 {
		config.TokenTTL = time.Duration(ttlMinutes) * time.Minute
	}

	setInt(&config.PasswordMaxAgeDays, "AUTH_PASSWORD_MAX_AGE_DAYS")
}
