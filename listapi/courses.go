package listapi

import (
	"context"
	"fmt"
	"net/http"
)

// ListCourses fetches all courses visible to the session. No
// server-side state changes.
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	body, err := c.getText(ctx, "/courses.html", "list courses")
	if err != nil {
		return nil, err
	}
	return ParseCourses(body)
}

// ActivateCourse marks a course active for this session. Later calls
// depend on this side effect: the tasks page only renders problems of
// the active course.
func (c *Client) ActivateCourse(ctx context.Context, courseID int) error {
	operation := fmt.Sprintf("activate course %d", courseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+fmt.Sprintf("/courses/activate_course/%d.html", courseID), nil)
	if err != nil {
		return newErrTransport(operation).SetDebug(err)
	}
	if err := c.doStatus(req, operation); err != nil {
		return err
	}
	c.activeCourse = &courseID
	c.logger.Debug("course marked active", "course_id", courseID)
	return nil
}

// ActiveCourse reports which course the session has active, if any.
func (c *Client) ActiveCourse() (int, bool) {
	if c.activeCourse == nil {
		return 0, false
	}
	return *c.activeCourse, true
}

// ListProblems lists the problems of a course. The course is always
// activated first; listing problems without establishing activation
// would silently show another course's problems.
func (c *Client) ListProblems(ctx context.Context, courseID int) ([]Problem, error) {
	if err := c.ActivateCourse(ctx, courseID); err != nil {
		return nil, err
	}
	body, err := c.getText(ctx, "/tasks.html", "list problems")
	if err != nil {
		return nil, err
	}
	return ParseProblems(body)
}
