package config

import "os"

// Config is the complete runtime configuration surface: the HTTP port, the
// store connection details (an optional endpoint override plus the two table
// names), and an optional queue for transaction events.
type Config struct {
	Env               string
	HTTPPort          string
	DynamoDBEndpoint  string
	AccountsTable     string
	TransactionsTable string
	EventsQueueURL    string
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		Env:               get("APP_ENV", "dev"),
		HTTPPort:          get("HTTP_PORT", "8080"),
		DynamoDBEndpoint:  get("DYNAMODB_ENDPOINT", ""),
		AccountsTable:     get("DYNAMODB_ACCOUNTS_TABLE_NAME", "accounts"),
		TransactionsTable: get("DYNAMODB_TRANSACTIONS_TABLE_NAME", "transactions"),
		EventsQueueURL:    get("SQS_TRANSACTION_EVENTS_QUEUE_URL", ""),
	}
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
