package configs

// AMQP configures publishing of course events. An empty URL disables the
// broker and events are only logged.
type AMQP struct {
	URL   string `env:"URL"`
	Queue string `env:"QUEUE" envDefault:"course_events"`
}

// Enabled reports whether a broker is configured.
func (c AMQP) Enabled() bool {
	return c.URL != ""
}
