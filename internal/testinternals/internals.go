// Package testinternals starts the throwaway Postgres used by repository integration tests.
package testinternals

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	log "github.com/sirupsen/logrus"

	"github.com/fiufit/trainings/internal/catalog"
	"github.com/fiufit/trainings/internal/config"
	"github.com/fiufit/trainings/internal/db"
)

const (
	postgresUser     = "postgres"
	postgresPassword = "postgres"
	postgresDB       = "trainings"
)

type Postgres struct {
	Pool *pgxpool.Pool
	SQL  *sql.DB
	// Port is the host port mapped to the container's 5432.
	Port int

	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

// StartPostgres runs a postgres container, creates the schema and seeds the reference catalog.
func StartPostgres(ctx context.Context) (_ *Postgres, err error) {
	pg := &Postgres{}
	defer func() {
		if err != nil {
			pg.Close()
		}
	}()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pg.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	if err := pg.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}
	pg.dockerPool.MaxWait = time.Minute

	pg.resource, err = pg.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDB,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}

	pg.Port, err = strconv.Atoi(pg.resource.GetPort("5432/tcp"))
	if err != nil {
		return nil, fmt.Errorf("postgres port: %w", err)
	}
	dsn := pg.DBConfig().DSN()
	if err := pg.dockerPool.Retry(func() error {
		if pg.SQL == nil {
			if pg.SQL, err = sql.Open("postgres", dsn); err != nil {
				return err
			}
		}
		return pg.SQL.Ping()
	}); err != nil {
		return nil, fmt.Errorf("wait for postgres: %w", err)
	}

	pg.Pool, err = db.NewDBPool(ctx, db.NewDBPoolParams{DSN: dsn})
	if err != nil {
		return nil, err
	}
	if err := db.CreateStructures(ctx, pg.Pool); err != nil {
		return nil, err
	}
	if err := catalog.NewRepo(pg.Pool).Seed(ctx); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	log.Debugf("test postgres ready on %s", pg.resource.GetHostPort("5432/tcp"))
	return pg, nil
}

// DBConfig points the service config at the container.
func (pg *Postgres) DBConfig() config.DBConfig {
	return config.DBConfig{
		Host:     "localhost",
		Port:     pg.Port,
		User:     postgresUser,
		Password: postgresPassword,
		Name:     postgresDB,
		SSL:      false,
	}
}

// Reset removes all trainings, users and their relations. The catalog stays.
func (pg *Postgres) Reset(ctx context.Context) error {
	_, err := pg.Pool.Exec(ctx, `TRUNCATE user_rates_training, user_training, training_exercise, training, users RESTART IDENTITY;`)
	return err
}

func (pg *Postgres) InsertUser(ctx context.Context, id string) error {
	_, err := pg.Pool.Exec(
		ctx,
		`INSERT INTO users (id, email, username, registration_date) VALUES ($1, $2, $3, $4);`,
		id, id+"@fiufit.test", id, time.Now().Format(time.DateOnly),
	)
	return err
}

func (pg *Postgres) Close() {
	if pg.Pool != nil {
		pg.Pool.Close()
	}
	if pg.SQL != nil {
		if err := pg.SQL.Close(); err != nil {
			log.Errorf("close sql db: %s", err)
		}
	}
	if pg.resource != nil {
		if err := pg.dockerPool.Purge(pg.resource); err != nil {
			log.Errorf("purge postgres container: %s", err)
		}
	}
	if pg.dockerPool != nil && pg.dockerPool.Client.HTTPClient != nil {
		pg.dockerPool.Client.HTTPClient.CloseIdleConnections()
	}
}
