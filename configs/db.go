package configs

type DB struct {
	URL           string `env:"DATABASE_URL,notEmpty"`
	MigrationsDir string `env:"DATABASE_MIGRATIONS_DIR" envDefault:"migrations"`
}
