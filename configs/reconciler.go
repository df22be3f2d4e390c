package configs

type Reconciler struct {
	Cron string `env:"RECONCILE_CRON" envDefault:"*/15 * * * *"`
}
