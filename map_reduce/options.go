package map_reduce

import (
	"github.com/ogzhanolguncu/parallel-map-reduce/internal/logger"
)

// Logger is the diagnostic sink the engine reports to.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type Config struct {
	// MaxConcurrentMapTasks caps map goroutines in flight. 0 means no cap.
	MaxConcurrentMapTasks int
	// MaxConcurrentReduceTasks caps reduce goroutines in flight. 0 means no cap.
	MaxConcurrentReduceTasks int
	Logger                   Logger
}

func DefaultConfig() Config {
	return Config{
		Logger: logger.New("INFO"),
	}
}

type Option func(*Config)

func WithMaxConcurrentMapTasks(n int) Option {
	return func(c *Config) {
		c.MaxConcurrentMapTasks = n
	}
}

func WithMaxConcurrentReduceTasks(n int) Option {
	return func(c *Config) {
		c.MaxConcurrentReduceTasks = n
	}
}

// WithLogger replaces the default stderr logger. A nil logger, typed or not,
// leaves the default in place.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l == nil {
			return
		}
		if lg, ok := l.(*logger.Logger); ok && lg == nil {
			return
		}
		c.Logger = l
	}
}
