package listapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// FetchSubmitForm fetches the opaque test-enqueue form of a problem.
// (nil, nil) means the problem does not support automated testing. The
// form is per-session state and must be fetched fresh before every
// enqueue.
func (c *Client) FetchSubmitForm(ctx context.Context, problemID int) (*SubmitForm, error) {
	body, err := c.getText(ctx,
		fmt.Sprintf("/tasks/task/%d.html", problemID),
		fmt.Sprintf("fetch submit form for problem %d", problemID))
	if err != nil {
		return nil, err
	}
	return ParseSubmitForm(body)
}

// EnqueueTest schedules a grading run for a submission version. The
// form fields are replayed verbatim; test[id][] is repeated once per
// test id in the original order.
func (c *Client) EnqueueTest(ctx context.Context, form SubmitForm, submissionVersion int) error {
	operation := fmt.Sprintf("enqueue test for version %d", submissionVersion)

	data := url.Values{}
	data.Set("test[task_set_id]", form.TaskSetID)
	data.Set("test[student_id]", strconv.Itoa(form.StudentID))
	data.Set("test[version]", strconv.Itoa(submissionVersion))
	data.Set("select_test_type", form.SelectTestType)
	for _, testID := range form.Tests {
		data.Add("test[id][]", testID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/fetests/enqueue_test", strings.NewReader(data.Encode()))
	if err != nil {
		return newErrTransport(operation).SetDebug(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if err := c.doStatus(req, operation); err != nil {
		return err
	}
	c.logger.Debug("test enqueued", "version", submissionVersion, "tests", len(form.Tests))
	return nil
}

// ListTestQueue lists all grading runs of a student on a problem,
// historical and in-flight, in server order.
func (c *Client) ListTestQueue(ctx context.Context, problemID int, studentID int) ([]TestRun, error) {
	body, err := c.getText(ctx,
		fmt.Sprintf("/fetests/get_student_test_queue/%d/%d", problemID, studentID),
		fmt.Sprintf("list test queue for problem %d", problemID))
	if err != nil {
		return nil, err
	}
	return ParseTestQueue(body)
}

// FetchTestResult fetches the graded outcome of a completed run.
func (c *Client) FetchTestResult(ctx context.Context, runID int) (*TestResult, error) {
	body, err := c.getText(ctx,
		fmt.Sprintf("/tasks/test_result/%d.html", runID),
		fmt.Sprintf("fetch test result %d", runID))
	if err != nil {
		return nil, err
	}
	return ParseTestResult(body)
}
