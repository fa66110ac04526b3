package configs

type HealthCheck struct {
	Addr string `env:"HEALTH_CHECK_ADDR" envDefault:":8080"`
}
