package configs

type Logger struct {
	AppName string `env:"APP_NAME" envDefault:"course-suggestions"`
	URL     string `env:"LOKI_URL"`
}
