// Package helper runs the activity log migrations under migrations/postgres.
package helper

//nolint:revive
import (
	"deportur/config"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	sourceURL             = "file://migrations/postgres"
	defaultMigrationTable = "schema_migrations"
)

type Action string

const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionStepUp  Action = "step-up"
	ActionDrop    Action = "drop"
	ActionVersion Action = "version"
)

var ErrUnknownAction = errors.New("unknown migration action, use up, down, step-up, drop or version")

// ErrNotConfigured is returned when no Postgres write host is set.
var ErrNotConfigured = errors.New("postgres is not configured")

func databaseURL(config *config.Config) string {
	write := config.DB.Postgres.Write

	name := write.Name
	if config.DB.Postgres.Prefix != "" {
		name = config.DB.Postgres.Prefix + name
	}

	table := config.DB.Postgres.MigrationTable
	if table == "" {
		table = defaultMigrationTable
	}

	sslMode := write.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	query.Set("x-migrations-table", table)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     "/" + name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func open(config *config.Config) (*migrate.Migrate, error) {
	if config.DB.Postgres.Write.Host == "" {
		return nil, ErrNotConfigured
	}

	mig, err := migrate.New(sourceURL, databaseURL(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Run applies action to the activity log schema. ErrNoChange is not an error.
func Run(config *config.Config, action Action) error {
	mig, err := open(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionVersion:
		version, dirty, verErr := mig.Version()
		if verErr != nil && !errors.Is(verErr, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", verErr)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Activity log schema version")

		return nil
	default:
		return ErrUnknownAction
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", string(action)).Msg("Activity log migration completed")

	return nil
}

// Up brings the schema to the latest version.
func Up(config *config.Config) error {
	return Run(config, ActionUp)
}
