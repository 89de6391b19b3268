package listapi

import "time"

// Course is an enrollable course scoped to an academic period.
type Course struct {
	ID   int
	Name string
}

// Problem is a gradable assignment within a course. ID is the numeric
// prefix of FullID before its first underscore.
type Problem struct {
	ID     int
	FullID string
	Name   string
}

// Submission is one uploaded solution artifact. ID is a server-assigned
// opaque token; Version strictly increases per problem per student.
type Submission struct {
	ID        string
	Version   int
	Name      string
	ProblemID int
}

// SubmitForm is the opaque state the server requires to be replayed when
// enqueueing a test. Its fields are forwarded verbatim, never interpreted.
type SubmitForm struct {
	TaskSetID      string
	StudentID      int
	SelectTestType string
	Tests          []string
}

// TestRun is one grading job instance. A nil EndTime means the run is
// still in progress; its presence is the sole completion signal.
type TestRun struct {
	ID        int
	StartTime time.Time
	EndTime   *time.Time
}

// TestResult is the graded outcome of a completed test run.
type TestResult struct {
	NormalPoints float64
	BonusPoints  float64
	Problems     []TestResultProblem
}

// TotalPoints is derived, never stored.
func (r TestResult) TotalPoints() float64 {
	return r.NormalPoints + r.BonusPoints
}

// TestResultProblem is the per-subproblem grading detail. Output is the
// raw grader output block paired with the row by list position.
type TestResultProblem struct {
	Name       string
	Percentage float64
	Points     float64
	Output     string
}
