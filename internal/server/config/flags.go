package config

import (
	"flag"
	"os"
	"time"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-m int      password max age, days
//	-o string   storage driver ("local" or "s3")
//	-l string   local uploads directory
//	-w string   public base URL for local uploads
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Arguments are first filtered down to the flags handled here with
// flagx.FilterArgs, so flags owned by other packages do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-t", "-m", "-o", "-l", "-w", "-u", "-p", "-b", "-g", "-e",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT secret key")

	tokenTTL := fs.Int("t", int(config.TokenTTL.Minutes()), "token validity (in minutes)")
	fs.IntVar(&config.PasswordMaxAgeDays, "m", config.PasswordMaxAgeDays, "password max age (in days)")

	fs.StringVar(&config.StorageDriver, "o", config.StorageDriver, "storage driver: local or s3")
	fs.StringVar(&config.UploadDir, "l", config.UploadDir, "local uploads directory")
	fs.StringVar(&config.PublicBaseURL, "w", config.PublicBaseURL, "public base URL for uploads")

	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenTTL = time.Duration(*tokenTTL) * time.Minute
}
