package common

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

const logFormat = `%{color}%{time:15:04:05.000} %{module} > %{level:.4s}%{color:reset} %{message}`

var (
	mu      sync.RWMutex
	loggers = make(map[string]*logging.Logger)
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetBackend(logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat)))
}

// GetLogger returns the logger registered under namespace, creating it on
// first use.
func GetLogger(namespace string) *logging.Logger {
	mu.RLock()
	l := loggers[namespace]
	mu.RUnlock()
	if l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if l = loggers[namespace]; l == nil {
		l = logging.MustGetLogger(namespace)
		loggers[namespace] = l
	}
	return l
}
