// Package integration runs the feedback API against a real PostgreSQL
// started with testcontainers.
package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/facultyfeedback/backend/internal/infrastructure/logger"
	"github.com/facultyfeedback/backend/internal/infrastructure/migration"
	"github.com/facultyfeedback/backend/internal/infrastructure/persistence"
	"github.com/facultyfeedback/backend/migrations"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	postgresImage = "postgres:16-alpine"
	adminDatabase = "postgres"
)

// cluster is the one PostgreSQL container a test binary uses. Every test
// gets its own database inside it.
var cluster struct {
	once      sync.Once
	container *tcpostgres.PostgresContainer
	err       error
	seq       atomic.Int64
}

// TestDB is a migrated database private to one test
type TestDB struct {
	DB    *gorm.DB
	SqlDB *sql.DB
	Name  string
	DSN   string
}

// NewTestDB creates and migrates a fresh database. It is dropped when the
// test ends.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	container := startCluster(t)
	name := fmt.Sprintf("feedback_%d_%d", os.Getpid(), cluster.seq.Add(1))

	adminDSN, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "postgres connection string")
	admin, err := sql.Open("postgres", adminDSN)
	require.NoError(t, err, "open admin connection")
	defer admin.Close()

	_, err = admin.ExecContext(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err, "create database %s", name)

	dsn, err := databaseDSN(ctx, container, name)
	require.NoError(t, err)

	db := connect(t, dsn)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	migrateUp(t, sqlDB)

	t.Cleanup(func() {
		_ = sqlDB.Close()
		drop, err := sql.Open("postgres", adminDSN)
		if err != nil {
			t.Logf("drop %s: %v", name, err)
			return
		}
		defer drop.Close()
		if _, err := drop.Exec("DROP DATABASE IF EXISTS " + name + " WITH (FORCE)"); err != nil {
			t.Logf("drop %s: %v", name, err)
		}
	})

	return &TestDB{DB: db, SqlDB: sqlDB, Name: name, DSN: dsn}
}

// Truncate empties the given tables
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()
	for _, table := range tables {
		require.NoError(t, tdb.DB.Exec("TRUNCATE TABLE "+table+" CASCADE").Error, "truncate %s", table)
	}
}

// TerminateCluster stops the shared container. TestMain calls it after the
// package's tests have run.
func TerminateCluster() {
	if cluster.container == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = cluster.container.Terminate(ctx)
}

func startCluster(t *testing.T) *tcpostgres.PostgresContainer {
	t.Helper()

	cluster.once.Do(func() {
		cluster.container, cluster.err = tcpostgres.Run(context.Background(),
			postgresImage,
			tcpostgres.WithDatabase(adminDatabase),
			tcpostgres.WithUsername("postgres"),
			tcpostgres.WithPassword("feedback"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
	})
	require.NoError(t, cluster.err, "start postgres container")
	return cluster.container
}

func databaseDSN(ctx context.Context, c *tcpostgres.PostgresContainer, name string) (string, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return "", err
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("host=%s port=%s user=postgres password=feedback dbname=%s sslmode=disable",
		host, port.Port(), name), nil
}

// connect opens gorm with the service's settings. FFB_TEST_DB_DEBUG prints
// every statement through the zap adapter.
func connect(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	var l gormlogger.Interface
	if os.Getenv("FFB_TEST_DB_DEBUG") != "" {
		dev, err := zap.NewDevelopment()
		require.NoError(t, err)
		l = logger.NewGormLogger(dev, gormlogger.Info, logger.WithSQL(true))
	}

	db, err := persistence.Open(gormpostgres.Open(dsn), l)
	require.NoError(t, err, "connect to %s", dsn)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	return db
}

func migrateUp(t *testing.T, sqlDB *sql.DB) {
	t.Helper()

	m, err := migration.New(sqlDB, migrations.Files, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Up())

	status, err := m.Status()
	require.NoError(t, err)
	require.False(t, status.Dirty)
	require.False(t, status.Pending(), "migrations left unapplied")
}
