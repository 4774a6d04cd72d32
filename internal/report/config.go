package report

type Config struct {
	Summary     bool
	MetricsFile string
}
