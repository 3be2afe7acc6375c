package handler

import (
	"net/http"
	"sync"

	"rentdesk/config"
	"rentdesk/di"
	"rentdesk/shared/logger"
)

var (
	mux  http.Handler
	once sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built on the first
// invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.Init(config.Get())

		mux = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	mux.ServeHTTP(w, r)
}
