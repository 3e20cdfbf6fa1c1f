package handler

import (
	"deportur/config"
	"deportur/di"
	"deportur/shared/logger"
	"net/http"
	"sync"
)

var (
	app  *di.App
	once sync.Once
)

// Handler is the serverless entry point. The app is assembled once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeApp()
	})

	app.HTTP.ServeHTTP(w, r)
}
