package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type contextKey string

// UserIDKey — ключ контекста для uid текущего пользователя (из JWT).
const UserIDKey contextKey = "user_id"

// Config хранит все конфигурации приложения
type Config struct {
	JwtSecret   string
	ServerPort  string
	ManagerCode string
	// EnforceCapacity — включает проверку вместимости смены при одобрении заявки.
	// По умолчанию выключено: менеджер может перебронировать смену осознанно.
	EnforceCapacity bool
}

// NewConfig создает и возвращает новый экземпляр Config
func NewConfig() *Config {
	// .env необязателен; реальные переменные окружения имеют приоритет
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "hU3rP9s1F/yQ0dWm5xKcT2bLaeZ8vNq6J4gR7oCiM0s=" // Измените в продакшене!
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "6066"
	}

	managerCode := os.Getenv("MANAGER_CODE")
	if managerCode == "" {
		// Код для регистрации менеджеров
		managerCode = "123456"
	}

	return &Config{
		JwtSecret:       jwtSecret,
		ServerPort:      port,
		ManagerCode:     managerCode,
		EnforceCapacity: getEnvBool("SHIFT_ENFORCE_CAPACITY", false),
	}
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return fallback
}
