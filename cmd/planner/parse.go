package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smart-task-planner/pkg/datemath"
	"smart-task-planner/pkg/taskparse"
)

type parseOutput struct {
	Title           string     `json:"title"`
	Start           *time.Time `json:"start,omitempty"`
	DateOnly        bool       `json:"date_only,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	Template        string     `json:"template"`
	TimeExpr        string     `json:"time_expr,omitempty"`
	Unresolved      bool       `json:"unresolved,omitempty"`
	Complete        bool       `json:"complete"`
}

func newParseCommand() *cobra.Command {
	var (
		timezone string
		duration time.Duration
		nowFlag  string
	)

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Run the local extractor on a task and print the result",
		Long: `Parse runs the same pattern extractor the server uses, without calling
the remote parser or touching a calendar.

Example:
  planner parse "Study AI for 2 hours tomorrow at 5pm" --timezone Africa/Lagos`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := datemath.NewParser(timezone)
			if err != nil {
				return err
			}

			now := time.Now()
			if nowFlag != "" {
				now, err = time.Parse(time.RFC3339, nowFlag)
				if err != nil {
					return fmt.Errorf("--now: %w", err)
				}
			}

			text := strings.Join(args, " ")
			res, ok := taskparse.NewExtractor(resolver, duration).Extract(text, now.In(resolver.Location()))
			if !ok {
				return errors.New("could not extract a task from the text")
			}

			out := parseOutput{
				Title:           res.Title,
				DateOnly:        res.DateOnly,
				DurationMinutes: int(res.Duration / time.Minute),
				Template:        res.Template.String(),
				TimeExpr:        res.TimeExpr,
				Unresolved:      res.Unresolved,
				Complete:        res.Complete(),
			}
			if res.HasStart() {
				start := res.Start
				out.Start = &start
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", "UTC", "IANA timezone used to resolve relative times")
	cmd.Flags().DurationVar(&duration, "duration", time.Hour, "duration used when the text has none")
	cmd.Flags().StringVar(&nowFlag, "now", "", "reference time in RFC3339 (defaults to the current time)")
	return cmd
}
