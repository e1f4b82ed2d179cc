package busan

// Option configures a Mux.
type Option func(*config)

type config struct {
	maxConcurrency int
	panicToError   bool
}

func defaultConfig() config {
	return config{
		panicToError: true,
	}
}

// WithMaxConcurrency limits how many tasks can execute at the same time.
// 0 means unlimited. Tasks beyond the limit start as slots free up, in
// input order.
func WithMaxConcurrency(limit int) Option {
	if limit < 0 {
		panic("busan: max concurrency cannot be negative")
	}

	return func(c *config) {
		c.maxConcurrency = limit
	}
}

// WithPanicToError converts task panics to failure outcomes.
func WithPanicToError(enabled bool) Option {
	return func(c *config) {
		c.panicToError = enabled
	}
}
