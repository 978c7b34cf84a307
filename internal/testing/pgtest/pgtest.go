// Package pgtest runs a throwaway PostgreSQL for integration tests
package pgtest

import (
	"context"
	"flag"
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image    = "postgres:15-alpine"
	dbName   = "carbonscan_test"
	user     = "testuser"
	password = "testpass"

	startupTimeout = 60 * time.Second
)

// Instance is one running container
type Instance struct {
	ConnString string
	container  *postgres.PostgresContainer
}

// Start boots a container. Docker being absent is reported as an error, and
// a panic inside testcontainers is turned into one.
func Start(ctx context.Context) (inst *Instance, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("testcontainers panicked: %v", r)
		}
	}()

	c, err := postgres.Run(ctx, image,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		// postgres logs "ready" once for the init run and again for the real server
		testcontainers.WithWaitStrategy(wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithStartupTimeoutDefault(startupTimeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres: %w", err)
	}

	conn, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("connection string: %w", err)
	}
	return &Instance{ConnString: conn, container: c}, nil
}

// Stop terminates the container; a nil Instance is a no-op
func (i *Instance) Stop(ctx context.Context) {
	if i == nil {
		return
	}
	if err := i.container.Terminate(ctx); err != nil {
		log.Printf("pgtest: terminate: %v", err)
	}
}

// Run is a TestMain body: it starts a container unless -short is set, hands
// its connection string to setup (empty when unavailable) and tears it down
// after the tests ran.
func Run(m *testing.M, setup func(connString string)) int {
	if !flag.Parsed() {
		flag.Parse()
	}
	ctx := context.Background()

	var inst *Instance
	if !testing.Short() {
		var err error
		if inst, err = Start(ctx); err != nil {
			log.Printf("pgtest: integration tests will skip: %v", err)
		}
	}
	defer inst.Stop(ctx)

	if inst != nil {
		setup(inst.ConnString)
	} else {
		setup("")
	}
	return m.Run()
}

// Skip skips t when no database is available
func Skip(t testing.TB, connString string) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	if connString == "" {
		t.Skip("integration test skipped: database not available")
	}
}
