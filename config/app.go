package config

type App struct {
	Port      string `env:"APP_PORT" default:"8080"`
	DataDir   string `env:"DATA_DIR" default:"./data"`
	JWTSecret string `env:"JWT_SECRET"`
	Env       string `env:"APP_ENV" default:"dev"`
}
