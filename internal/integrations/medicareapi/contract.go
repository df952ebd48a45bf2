package medicareapi

import "time"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type MetricsObserver interface {
	ObserveBackend(endpoint, outcome string, elapsed time.Duration)
}
