package main

import (
	"context"
	"database/sql"
	"dispatch-board-service/internal/adapters/journal"
	"dispatch-board-service/internal/config"
	"dispatch-board-service/internal/platform/db"
	"dispatch-board-service/internal/platform/logging"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found (using environment variables)")
	}
	logging.Setup(config.Get("APP_ENV", "production"))

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("dbtool failed")
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dbtool",
		Short:         "Manage the dispatch event journal database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newEventsCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the dispatch_events table if missing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, conn *sql.DB) error {
				log.Info().Msg("Initializing journal schema...")
				if err := journal.InitSchema(ctx, conn); err != nil {
					return fmt.Errorf("schema initialization failed: %w", err)
				}
				log.Info().Msg("Schema ready.")
				return nil
			})
		},
	}
}

type eventLine struct {
	EventID      string            `json:"event_id"`
	Kind         string            `json:"kind"`
	AssignmentID string            `json:"assignment_id"`
	Detail       map[string]string `json:"detail"`
	At           time.Time         `json:"at"`
}

func newEventsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print the most recent journal events as JSON lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 1 || limit > 1000 {
				return errors.New("--limit must be between 1 and 1000")
			}
			return withDB(cmd.Context(), func(ctx context.Context, conn *sql.DB) error {
				events, err := journal.NewPostgresSink(conn).ListRecent(ctx, limit)
				if err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				for _, ev := range events {
					line := eventLine{
						EventID:      ev.EventID,
						Kind:         string(ev.Kind),
						AssignmentID: ev.AssignmentID,
						Detail:       ev.Detail,
						At:           ev.At,
					}
					if err := enc.Encode(line); err != nil {
						return fmt.Errorf("write event %s: %w", ev.EventID, err)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of events to print")
	return cmd
}

func withDB(ctx context.Context, fn func(context.Context, *sql.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(ctx, conn)
}
