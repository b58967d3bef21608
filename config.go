package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
)

// Config holds everything read from the environment: IBM Quantum
// credentials, run parameters, and the optional AWS archival settings.
type Config struct {
	IBMToken     string
	IBMInstance  string // IBM Cloud CRN
	IBMBackend   string // device name, empty means prompt/skip
	IBMJobWait   time.Duration
	Shots        int
	SimSeed      int64
	LogLevel     string
	AWSRegion    string
	AWSBucket    string
	AWSAccessKey string
	AWSSecretKey string
}

// LoadConfig reads the .env file (when present) and the environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		IBMToken:     getEnv("IBM_QUANTUM_TOKEN", ""),
		IBMInstance:  getEnv("IBM_QUANTUM_INSTANCE", ""),
		IBMBackend:   getEnv("IBM_BACKEND", ""),
		IBMJobWait:   getEnvAsDuration("IBM_JOB_TIMEOUT", 30*time.Minute),
		Shots:        getEnvAsInt("SHOTS", 1024),
		SimSeed:      int64(getEnvAsInt("SIM_SEED", int(time.Now().UnixNano()))),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		AWSRegion:    getEnv("AWS_REGION", "sa-east-1"),
		AWSBucket:    getEnv("AWS_BUCKET", "cracking-algorithm-data"),
		AWSAccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
	}
}

// HasIBM reports whether hardware execution is configured at all.
func (c *Config) HasIBM() bool {
	return c.IBMToken != "" && c.IBMInstance != ""
}

// LoadAWSConfig builds the AWS client configuration for the S3 upload.
func (c *Config) LoadAWSConfig(ctx context.Context) (aws.Config, error) {
	credsProvider := credentials.NewStaticCredentialsProvider(c.AWSAccessKey, c.AWSSecretKey, "")

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.AWSRegion),
		awsconfig.WithCredentialsProvider(credsProvider),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load configuration, %v", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
