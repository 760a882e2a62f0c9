// Package config reads service settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port   string
	AppEnv string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	QuotationsTable      string
	PaymentsTable        string
	ProductionCostsTable string

	CatalogDatabaseURL string

	MercadoPagoAccessToken     string
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
	PaymentGatewayMock         bool

	// CORSAllowedOrigins empty means any origin.
	CORSAllowedOrigins []string
}

// Load reads every setting once, applying defaults.
func Load() Config {
	return Config{
		Port:   getenvDefault("PORT", "8080"),
		AppEnv: getenvDefault("APP_ENV", "development"),

		AWSRegion: getenvDefault("AWS_REGION", "us-east-1"),
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		QuotationsTable:      getenvDefault("QUOTATIONS_TABLE", "quotations"),
		PaymentsTable:        getenvDefault("PAYMENTS_TABLE", "payments"),
		ProductionCostsTable: getenvDefault("PRODUCTION_COSTS_TABLE", "production_costs"),

		CatalogDatabaseURL: strings.TrimSpace(os.Getenv("CATALOG_DATABASE_URL")),

		MercadoPagoAccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		MercadoPagoTestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		MercadoPagoTestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		PaymentGatewayMock:         truthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || truthy(os.Getenv("MERCADOPAGO_MOCK")),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
