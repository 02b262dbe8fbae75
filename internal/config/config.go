package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	// Local JSON file backends live under DataDir (created on demand).
	DataDir string

	AdminAccessToken string
	PublicAppURL     string

	// Google Sheets backend for verification codes, reset tokens and orders.
	// All three values must be set (and non-placeholder) for the backend to activate.
	GoogleServiceAccountEmail string
	GoogleServiceAccountKey   string
	GoogleSpreadsheetID       string

	// DynamoDB backend for the user store. Active when UsersTable is set
	// and not a placeholder.
	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	UsersTable     string

	S3BucketName string
	SNSTopicARN  string
	SNSRegion    string

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	OTPExpiryMinutes    int
	ResetTokenExpiryHrs int

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		DataDir: getEnv("DATA_DIR", ".data"),

		AdminAccessToken: getEnv("ADMIN_ACCESS_TOKEN", "demo-admin-token"),
		PublicAppURL:     getEnv("PUBLIC_APP_URL", "http://localhost:3000"),

		GoogleServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		GoogleServiceAccountKey:   normalizePrivateKey(getEnv("GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY", "")),
		GoogleSpreadsheetID:       getEnv("GOOGLE_SPREADSHEET_ID", ""),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		UsersTable:     getEnv("DYNAMO_TABLE_USERS", ""),

		S3BucketName: getEnv("S3_BUCKET_NAME", ""),
		SNSTopicARN:  getEnv("SNS_TOPIC_ARN", ""),
		SNSRegion:    getEnv("SNS_REGION", "us-east-1"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		OTPExpiryMinutes:    getEnvInt("OTP_EXPIRY_MINUTES", 10),
		ResetTokenExpiryHrs: getEnvInt("RESET_TOKEN_EXPIRY_HOURS", 1),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// SheetsConfigured reports whether the Google Sheets backend should be used
// for verification codes, reset tokens and orders.
func (c *Config) SheetsConfigured() bool {
	return !IsPlaceholder(c.GoogleServiceAccountEmail) &&
		!IsPlaceholder(c.GoogleServiceAccountKey) &&
		!IsPlaceholder(c.GoogleSpreadsheetID)
}

// DynamoConfigured reports whether the DynamoDB user store should be used.
func (c *Config) DynamoConfigured() bool {
	return !IsPlaceholder(c.UsersTable)
}

// SheetURL returns the browser URL of the configured spreadsheet, or "".
func (c *Config) SheetURL() string {
	if IsPlaceholder(c.GoogleSpreadsheetID) {
		return ""
	}
	return "https://docs.google.com/spreadsheets/d/" + c.GoogleSpreadsheetID + "/edit"
}

// IsPlaceholder reports whether a config value is unset or an obvious
// template leftover (.env.example values copied without editing).
func IsPlaceholder(value string) bool {
	trimmed := strings.Trim(strings.TrimSpace(value), `"`)
	if trimmed == "" {
		return true
	}
	return trimmed == "your-project-id" ||
		trimmed == "service-account@example.iam.gserviceaccount.com" ||
		strings.Contains(trimmed, "...")
}

// normalizePrivateKey converts the escaped "\n" sequences that .env files
// use for PEM keys back into real newlines.
func normalizePrivateKey(v string) string {
	return strings.ReplaceAll(v, `\n`, "\n")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
