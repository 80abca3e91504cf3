package handler

import (
	"net/http"
	"sync"
	"tzconv/config"
	"tzconv/di"
	"tzconv/shared/logger"
)

var (
	service     http.Handler
	serviceOnce sync.Once
)

// Handler is the serverless entry point. The service graph is built on the
// first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serviceOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		service = di.InitializeService().Handler()
	})

	service.ServeHTTP(w, r)
}
