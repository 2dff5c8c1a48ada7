// Package main - точка входа интерактивной программы учёта студентов.
//
// Программа хранит список студентов в памяти, выводит его таблицей,
// отбирает студентов по среднему баллу и сохраняет список в XML-файл.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alem-hub/student-roster/config"
	"github.com/alem-hub/student-roster/internal/application/command"
	"github.com/alem-hub/student-roster/internal/application/query"
	"github.com/alem-hub/student-roster/internal/domain/student"
	"github.com/alem-hub/student-roster/internal/infrastructure/persistence/xmlfile"
	"github.com/alem-hub/student-roster/internal/interface/cli"
	"github.com/alem-hub/student-roster/pkg/logger"
)

// options holds command-line overrides of the environment configuration.
type options struct {
	file      string
	threshold float64
	logLevel  string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Interactive student roster",
		Long: `Keeps a roster of students (name, group, grades) in memory.
Type "help" at the prompt for the list of commands.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("file") {
				cfg.Roster.File = opts.file
			}
			if flags.Changed("threshold") {
				cfg.Roster.SelectThreshold = opts.threshold
			}
			if flags.Changed("log-level") {
				cfg.Observability.LogLevel = opts.logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "XML file to load before the session starts (env ROSTER_FILE)")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", student.DefaultThreshold, "default minimum average for select (env ROSTER_SELECT_THRESHOLD)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error (env LOG_LEVEL)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЛОГИРОВАНИЕ
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.New(logger.Options{
		Output:    errOut,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		AddCaller: cfg.IsDevelopment(),
	}).With(logger.String("app", cfg.App.Name))

	log.Info("starting",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
		logger.Threshold(cfg.Roster.SelectThreshold),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 2. СПИСОК И ХРАНИЛИЩЕ
	// ─────────────────────────────────────────────────────────────────────────
	roster := student.NewRoster()
	store := xmlfile.NewStore(log)

	handlers := &cli.Handlers{
		Add:    command.NewAddStudentHandler(roster),
		Load:   command.NewLoadRosterHandler(roster, store),
		Save:   command.NewSaveRosterHandler(roster, store),
		List:   query.NewListStudentsHandler(roster),
		Select: query.NewSelectStudentsHandler(roster, cfg.Roster.SelectThreshold),
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ПРЕДВАРИТЕЛЬНАЯ ЗАГРУЗКА
	// ─────────────────────────────────────────────────────────────────────────
	if cfg.Roster.File != "" {
		res, err := handlers.Load.Handle(ctx, command.LoadRosterCommand{Path: cfg.Roster.File})
		if err != nil {
			return fmt.Errorf("failed to preload roster: %w", err)
		}
		log.Info("roster preloaded", logger.Path(res.Path), logger.Count(res.Loaded))
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. ИНТЕРАКТИВНЫЙ ЦИКЛ
	// ─────────────────────────────────────────────────────────────────────────
	router := cli.NewRouter(log)
	handlers.Register(router)

	return router.Run(ctx, cli.NewSession(in, out, errOut))
}
