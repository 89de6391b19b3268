package gradesrvc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/list-fmph/list-submit/listapi"
	"github.com/list-fmph/list-submit/logger"
)

const defaultPollInterval = 500 * time.Millisecond

// ListClient is the slice of the session client the orchestrator
// drives. One authenticated session performs one workflow at a time.
type ListClient interface {
	SubmitSolution(ctx context.Context, problemID int, archive []byte) (listapi.Submission, error)
	FetchSubmitForm(ctx context.Context, problemID int) (*listapi.SubmitForm, error)
	EnqueueTest(ctx context.Context, form listapi.SubmitForm, submissionVersion int) error
	ListTestQueue(ctx context.Context, problemID int, studentID int) ([]listapi.TestRun, error)
	FetchTestResult(ctx context.Context, runID int) (*listapi.TestResult, error)
}

// GradeSrvc sequences submit -> fetch form -> enqueue -> poll -> fetch
// result into one workflow.
type GradeSrvc struct {
	client       ListClient
	pollInterval time.Duration
}

type Option func(*GradeSrvc)

func WithPollInterval(interval time.Duration) Option {
	return func(s *GradeSrvc) {
		s.pollInterval = interval
	}
}

func New(client ListClient, opts ...Option) *GradeSrvc {
	s := &GradeSrvc{
		client:       client,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Outcome is the terminal state of one submit-and-grade workflow. A nil
// Result means the problem has no automated tests configured; that is a
// normal exit, not an error.
type Outcome struct {
	Submission listapi.Submission
	Result     *listapi.TestResult
}

// SubmitAndGrade uploads a solution archive, enqueues a grading run and
// polls the test queue until the run completes. The loop is bounded by
// ctx: pass a deadline or cancel to stop waiting on a run the server
// never finishes.
func (s *GradeSrvc) SubmitAndGrade(ctx context.Context, problemID int, archive []byte) (*Outcome, error) {
	ctx = logger.WithWorkflowID(ctx, uuid.New().String())
	log := logger.FromContext(ctx)

	submission, err := s.client.SubmitSolution(ctx, problemID, archive)
	if err != nil {
		return nil, err
	}
	log.Info("solution submitted", "problem_id", problemID, "version", submission.Version)

	form, err := s.client.FetchSubmitForm(ctx, problemID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		log.Info("problem has no automated tests configured", "problem_id", problemID)
		return &Outcome{Submission: submission}, nil
	}

	// Runs started before this instant are historical and must not be
	// mistaken for the one we are about to enqueue. The comparison only
	// works because queue timestamps are parsed in the portal's zone,
	// so time.Now() and a run's start name instants on the same clock
	// regardless of the local zone.
	cutoff := time.Now()

	if err := s.client.EnqueueTest(ctx, *form, submission.Version); err != nil {
		return nil, err
	}
	log.Info("test enqueued", "version", submission.Version)

	run, err := s.awaitRun(ctx, problemID, form.StudentID, cutoff)
	if err != nil {
		return nil, err
	}
	log.Info("test run completed", "run_id", run.ID)

	result, err := s.client.FetchTestResult(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	log.Info("test result fetched",
		"run_id", run.ID, "total_points", result.TotalPoints())

	return &Outcome{Submission: submission, Result: result}, nil
}

// awaitRun polls the test queue until the run enqueued after cutoff
// carries an end time. The queue may not reflect the new run yet on
// early polls; among qualifying runs the latest start wins.
func (s *GradeSrvc) awaitRun(ctx context.Context, problemID int, studentID int, cutoff time.Time) (listapi.TestRun, error) {
	log := logger.FromContext(ctx)
	for {
		runs, err := s.client.ListTestQueue(ctx, problemID, studentID)
		if err != nil {
			return listapi.TestRun{}, err
		}

		run, found := latestRunAfter(runs, cutoff)
		if found && run.EndTime != nil {
			return run, nil
		}
		if found {
			log.Debug("test run still in progress", "run_id", run.ID)
		} else {
			log.Debug("test run not yet visible in queue")
		}

		select {
		case <-ctx.Done():
			return listapi.TestRun{}, newErrPollingCancelled().SetDebug(ctx.Err())
		case <-time.After(s.pollInterval):
		}
	}
}

// latestRunAfter discards runs started at or before cutoff and picks
// the one with the latest start among the rest.
func latestRunAfter(runs []listapi.TestRun, cutoff time.Time) (listapi.TestRun, bool) {
	var latest listapi.TestRun
	found := false
	for _, run := range runs {
		if !run.StartTime.After(cutoff) {
			continue
		}
		if !found || run.StartTime.After(latest.StartTime) {
			latest = run
			found = true
		}
	}
	return latest, found
}
