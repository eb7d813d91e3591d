package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/infrastructure/migration"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const defaultMigrationsPath = "migrations"

type options struct {
	MigrationsPath string
	LogLevel       string
}

func main() {
	opts := &options{
		MigrationsPath: defaultMigrationsPath,
		LogLevel:       "info",
	}
	var log *zap.Logger

	app := &cli.App{
		Name:  "migrate",
		Usage: "manage the ledger database schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "path",
				EnvVars:     []string{"LEDGER_MIGRATIONS_PATH"},
				Value:       opts.MigrationsPath,
				Usage:       "migrations directory",
				Destination: &(opts.MigrationsPath),
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       opts.LogLevel,
				Usage:       "debug, info, warn or error",
				Destination: &(opts.LogLevel),
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			log, err = logger.New(&logger.Config{
				Level:      opts.LogLevel,
				Format:     "console",
				Output:     "stdout",
				TimeFormat: "2006-01-02 15:04:05",
			})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			abs, err := filepath.Abs(opts.MigrationsPath)
			if err != nil {
				return fmt.Errorf("failed to resolve migrations path: %w", err)
			}
			opts.MigrationsPath = abs
			return nil
		},
		After: func(c *cli.Context) error {
			if log != nil {
				_ = log.Sync()
			}
			return nil
		},
	}

	withMigrator := func(fn func(c *cli.Context, m *migration.Migrator) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			m, err := migration.Open(&cfg.Database, opts.MigrationsPath, log)
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(c, m)
		}
	}

	app.Commands = []*cli.Command{
		{
			Name:  "up",
			Usage: "apply all pending migrations",
			Action: withMigrator(func(_ *cli.Context, m *migration.Migrator) error {
				return m.Up()
			}),
		},
		{
			Name:  "down",
			Usage: "roll back every migration",
			Action: withMigrator(func(_ *cli.Context, m *migration.Migrator) error {
				return m.Down()
			}),
		},
		{
			Name:      "step",
			Usage:     "apply n migrations, negative n rolls back",
			ArgsUsage: "<n>",
			Action: withMigrator(func(c *cli.Context, m *migration.Migrator) error {
				n, err := strconv.Atoi(c.Args().First())
				if err != nil {
					return cli.Exit("step count must be an integer", 1)
				}
				return m.Steps(n)
			}),
		},
		{
			Name:      "goto",
			Usage:     "migrate up or down to a version",
			ArgsUsage: "<version>",
			Action: withMigrator(func(c *cli.Context, m *migration.Migrator) error {
				version, err := strconv.ParseUint(c.Args().First(), 10, 32)
				if err != nil {
					return cli.Exit("version must be a positive integer", 1)
				}
				return m.GoTo(uint(version))
			}),
		},
		{
			Name:  "version",
			Usage: "print the applied version",
			Action: withMigrator(func(_ *cli.Context, m *migration.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				if version == 0 {
					log.Info("No migrations applied")
					return nil
				}
				log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
				return nil
			}),
		},
		{
			Name:      "force",
			Usage:     "set the version without running migrations and clear the dirty flag",
			ArgsUsage: "<version>",
			Action: withMigrator(func(c *cli.Context, m *migration.Migrator) error {
				version, err := strconv.Atoi(c.Args().First())
				if err != nil {
					return cli.Exit("version must be an integer", 1)
				}
				log.Warn("Forcing migration version", zap.Int("version", version))
				return m.Force(version)
			}),
		},
		{
			Name:      "create",
			Usage:     "write the next up/down migration pair",
			ArgsUsage: "<name> [description]",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					return cli.Exit("migration name is required", 1)
				}
				mf, err := migration.CreateMigration(opts.MigrationsPath, c.Args().Get(0), c.Args().Get(1))
				if err != nil {
					return err
				}
				log.Info("Migration created",
					zap.Uint("version", mf.Version),
					zap.String("up_file", mf.UpPath),
					zap.String("down_file", mf.DownPath),
				)
				return nil
			},
		},
		{
			Name:  "list",
			Usage: "list migrations found in the migrations directory",
			Action: func(c *cli.Context) error {
				migrations, err := migration.ListMigrations(opts.MigrationsPath)
				if err != nil {
					return err
				}
				if len(migrations) == 0 {
					log.Info("No migrations found", zap.String("path", opts.MigrationsPath))
					return nil
				}
				for _, m := range migrations {
					rollback := "no down"
					if m.HasDown {
						rollback = "down"
					}
					fmt.Fprintf(c.App.Writer, "%06d  %-40s %s\n", m.Version, m.Name, rollback)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		if log != nil {
			log.Error("Migration command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
