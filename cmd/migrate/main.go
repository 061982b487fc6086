// Command migrate provisions the Spanner database and applies the DDL files
// under migrations/. Against the emulator it also creates the instance.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/catalog-admin-service/internal/config"
)

var migrateDir = flag.String("migrations", "migrations", "directory containing migration SQL files")

func main() {
	flag.Parse()

	// Missing .env is fine, config falls back to defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.WithField("host", host).Info("using Spanner emulator")
	}

	ctx := context.Background()
	m := migrator{spanner: cfg.Spanner}

	if err := m.run(ctx); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	log.Info("migrations applied")
}

type migrator struct {
	spanner config.SpannerConfig
}

func (m migrator) run(ctx context.Context) error {
	if err := m.ensureInstance(ctx); err != nil {
		return fmt.Errorf("ensure instance: %w", err)
	}
	if err := m.ensureDatabase(ctx); err != nil {
		return fmt.Errorf("ensure database: %w", err)
	}
	if err := m.applyMigrations(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (m migrator) ensureInstance(ctx context.Context) error {
	admin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("instance admin client: %w", err)
	}
	defer admin.Close()

	name := fmt.Sprintf("projects/%s/instances/%s", m.spanner.Project, m.spanner.Instance)
	if _, err := admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: name}); err == nil {
		log.WithField("instance", m.spanner.Instance).Info("instance exists")
		return nil
	} else if status.Code(err) != codes.NotFound {
		// The emulator answers GetInstance inconsistently across versions,
		// so anything other than NotFound is treated as "probably there".
		log.WithError(err).Warn("could not check instance, continuing")
		return nil
	}

	log.WithField("instance", m.spanner.Instance).Info("creating instance")
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     fmt.Sprintf("projects/%s", m.spanner.Project),
		InstanceId: m.spanner.Instance,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", m.spanner.Project),
			DisplayName: "Catalog Admin Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		log.WithError(err).Warn("instance creation wait")
	}
	return nil
}

func (m migrator) ensureDatabase(ctx context.Context) error {
	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	if _, err := admin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: m.spanner.DSN()}); err == nil {
		log.WithField("database", m.spanner.Database).Info("database exists")
		return nil
	} else if status.Code(err) != codes.NotFound {
		if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
			log.WithError(err).Warn("could not check database, continuing in emulator mode")
			return nil
		}
		return fmt.Errorf("check database: %w", err)
	}

	log.WithField("database", m.spanner.Database).Info("creating database")
	op, err := admin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          fmt.Sprintf("projects/%s/instances/%s", m.spanner.Project, m.spanner.Instance),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", m.spanner.Database),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("wait for database creation: %w", err)
	}
	return nil
}

func (m migrator) applyMigrations(ctx context.Context) error {
	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	files, err := filepath.Glob(filepath.Join(*migrateDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("list migration files: %w", err)
	}
	if len(files) == 0 {
		log.WithField("dir", *migrateDir).Warn("no migration files found")
		return nil
	}

	for _, file := range files {
		name := filepath.Base(file)
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   m.spanner.DSN(),
			Statements: splitDDL(string(content)),
		})
		if err != nil {
			return fmt.Errorf("start DDL update for %s: %w", name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("apply DDL for %s: %w", name, err)
		}

		log.WithField("migration", name).Info("applied")
	}
	return nil
}

// splitDDL strips SQL comments and blank lines, then splits the remaining
// text into individual statements on semicolons. UpdateDatabaseDdl rejects
// both comments and trailing semicolons.
func splitDDL(content string) []string {
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var statements []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
