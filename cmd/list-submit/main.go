package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"

	"github.com/list-fmph/list-submit/conf"
	"github.com/list-fmph/list-submit/gradesrvc"
	"github.com/list-fmph/list-submit/listapi"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	cmd := &cli.Command{
		Name:  "list-submit",
		Usage: "upload a solution archive to LIST and wait for the test result",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "problem",
				Usage:    "numeric id of the problem to submit to",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "file",
				Usage:    "path to the solution archive",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a TOML config file overlaying the environment",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "how long to wait for the grading run before giving up",
				Value: 10 * time.Minute,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("list-submit failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		})))
	}

	cfg := conf.GetListConfFromEnv()
	if path := cmd.String("config"); path != "" {
		if err := conf.MergeFile(path, cfg); err != nil {
			return err
		}
	}
	if cfg.Email == "" || cfg.Password == "" {
		return fmt.Errorf("LIST_EMAIL and LIST_PASSWORD must be set")
	}

	archive, err := os.ReadFile(cmd.String("file"))
	if err != nil {
		return fmt.Errorf("reading solution archive: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	client, err := listapi.Login(ctx, cfg.BaseURL, cfg.Email, cfg.Password)
	if err != nil {
		return err
	}

	srvc := gradesrvc.New(client, gradesrvc.WithPollInterval(cfg.PollInterval()))
	outcome, err := srvc.SubmitAndGrade(ctx, int(cmd.Int("problem")), archive)
	if err != nil {
		return err
	}

	printOutcome(outcome)
	return nil
}

func printOutcome(outcome *gradesrvc.Outcome) {
	fmt.Printf("submitted version %d (%s)\n", outcome.Submission.Version, outcome.Submission.Name)
	if outcome.Result == nil {
		fmt.Println("problem has no automated tests to run")
		return
	}
	for _, problem := range outcome.Result.Problems {
		fmt.Printf("%s: %.2f points (%.1f%%)\n", problem.Name, problem.Points, problem.Percentage)
	}
	fmt.Printf("total: %.2f points (%.2f normal + %.2f bonus)\n",
		outcome.Result.TotalPoints(), outcome.Result.NormalPoints, outcome.Result.BonusPoints)
}
