package configs

import "strings"

const memoryStoreScheme = "memory://"

type DB struct {
	URL           string `env:"STORE_URL,notEmpty"`
	Key           string `env:"STORE_KEY"`
	MigrationsDir string `env:"DB_MIGRATIONS_DIR" envDefault:"migrations"`
}

// IsMemory reports whether the in-process store was requested instead of Postgres.
func (c DB) IsMemory() bool {
	return strings.HasPrefix(c.URL, memoryStoreScheme)
}
