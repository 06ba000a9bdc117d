package config

import "os"

const EnvAPIKey = "OPENROUTER_API_KEY"

// CredentialProvider отдает секрет для апстрима в момент вызова.
// Отсутствующим считается только пустое значение, остальное отдается как есть.
type CredentialProvider interface {
	APIKey() (string, bool)
}

// EnvCredentials читает ключ из окружения при каждом вызове, без кэширования.
type EnvCredentials struct {
	Key string
}

func NewEnvCredentials() EnvCredentials {
	return EnvCredentials{Key: EnvAPIKey}
}

func (c EnvCredentials) APIKey() (string, bool) {
	key := c.Key
	if key == "" {
		key = EnvAPIKey
	}
	val := os.Getenv(key)
	return val, val != ""
}

// StaticCredentials фиксированный ключ, удобно для тестов и локального запуска.
type StaticCredentials string

func (c StaticCredentials) APIKey() (string, bool) {
	return string(c), c != ""
}
