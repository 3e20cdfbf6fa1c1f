package session

import (
	"deportur/config"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type sweepable interface {
	Sweep() int
}

// Sweeper periodically evicts expired in-memory sessions.
type Sweeper struct {
	cron *cron.Cron
}

// NewSweeper schedules Sweep on the configured cron spec. Stores that expire entries on
// their own (redis) get an idle sweeper.
func NewSweeper(cfg *config.Config, store Store) *Sweeper {
	scheduler := cron.New()

	target, ok := store.(sweepable)
	if !ok {
		return &Sweeper{cron: scheduler}
	}

	_, err := scheduler.AddFunc(cfg.App.Session.SweepCron, func() {
		if removed := target.Sweep(); removed > 0 {
			log.Debug().Int("removed", removed).Msg("Swept expired sessions")
		}
	})
	if err != nil {
		log.Error().Err(err).Str("spec", cfg.App.Session.SweepCron).Msg("Invalid session sweep schedule")
	}

	return &Sweeper{cron: scheduler}
}

func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}
