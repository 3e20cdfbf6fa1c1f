package di

import (
	"deportur/infras/kafka"
	activityService "deportur/internal/domains/activity/service"
	"deportur/shared/session"
	"deportur/transport/http"

	"github.com/rs/zerolog/log"
)

// App is the assembled console with the background pieces main has to start and stop.
type App struct {
	HTTP     *http.HTTP
	Sweeper  *session.Sweeper
	Activity activityService.Activity
	Kafka    kafka.Client
}

// Serve runs the HTTP server until shutdown, then drains pending activity records and
// closes the producer.
func (a *App) Serve() {
	a.Sweeper.Start()
	defer a.Sweeper.Stop()

	a.HTTP.Serve()

	a.Activity.Wait()

	if err := a.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close kafka writer")
	}
}
