package pg

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/FerdyAtmaja/forum-api-V2/shared/config"
	"github.com/FerdyAtmaja/forum-api-V2/shared/idgen"
	"github.com/FerdyAtmaja/forum-api-V2/shared/logger"
	sharedpg "github.com/FerdyAtmaja/forum-api-V2/shared/storage/pg"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Querier = sharedpg.Querier

type Storage struct {
	db    *sql.DB
	newId idgen.Generator
}

// New connects, applies pending migrations and returns a ready Storage.
func New(ctx context.Context, pgCfg config.Pg, newId idgen.Generator) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", pgCfg.Host, "dbname", pgCfg.Dbname)
	db, err := sharedpg.Connect(ctx, pgCfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db: db, newId: newId}, nil
}

// Migrate brings the schema up to the latest embedded migration. The goose
// provider is local to the call, nothing is set on the goose package.
func Migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, result := range results {
		logger.Log.Info("applied migration", "version", result.Source.Version, "duration", result.Duration)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return sharedpg.WithTx(ctx, s.db, fn)
}
