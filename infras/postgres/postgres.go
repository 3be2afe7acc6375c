package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"net/url"
	"rentdesk/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName      = "postgres"
	connMaxLifetime = 30 * time.Minute
)

// Connection splits read traffic from writes and transactions. When no read replica is
// configured both handles share the write pool.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one Postgres server as configured for the read or write pool.
type Endpoint struct {
	Name     string
	Host     string
	Port     string
	Username string
	Password string
	Database string
	SSLMode  string
}

func (e Endpoint) dsn() string {
	return (&url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     e.Database,
		RawQuery: url.Values{"sslmode": {e.SSLMode}}.Encode(),
	}).String()
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	write := Connect(config, Endpoint{
		Name:     "write",
		Host:     pg.Write.Host,
		Port:     pg.Write.Port,
		Username: pg.Write.Username,
		Password: pg.Write.Password,
		Database: pg.Prefix + pg.Write.Name,
		SSLMode:  pg.Write.SSLMode,
	})

	if pg.Read.Host == "" {
		log.Info().Msg("No read replica configured, reads use the write pool")

		return &Connection{Read: write, Write: write}
	}

	read := Connect(config, Endpoint{
		Name:     "read",
		Host:     pg.Read.Host,
		Port:     pg.Read.Port,
		Username: pg.Read.Username,
		Password: pg.Read.Password,
		Database: pg.Prefix + pg.Read.Name,
		SSLMode:  pg.Read.SSLMode,
	})

	return &Connection{Read: read, Write: write}
}

// Connect opens a pool to endpoint, retrying as configured. It returns nil when every
// attempt failed.
func Connect(config *config.Config, endpoint Endpoint) *sqlx.DB {
	pg := config.DB.Postgres
	attempts := max(pg.MaxRetry, 1)

	logger := log.With().
		Str("name", endpoint.Name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", endpoint.Database).
		Logger()

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, endpoint.dsn())
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	logger.Error().Msg(fmt.Sprintf("Giving up connecting to database after %d attempts", attempts))

	return nil
}

// Close releases both pools.
func (c *Connection) Close() {
	closed := map[*sqlx.DB]bool{}

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil || closed[db] {
			continue
		}

		closed[db] = true

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed closing database connection")
		}
	}
}
