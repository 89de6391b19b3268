package listapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/wailsapp/mimetype"
)

// submitButtonLabel selects the upload behavior on the server: it
// inspects which button name is present in the form and ignores any
// other field name silently.
const submitButtonLabel = "Odovzdať riešenie"

// SubmitSolution uploads a solution archive for a problem. The server
// responds with the full submission history; the last entry is the
// authoritative result of this call.
func (c *Client) SubmitSolution(ctx context.Context, problemID int, archive []byte) (Submission, error) {
	operation := fmt.Sprintf("submit solution for problem %d", problemID)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("submit_button", submitButtonLabel); err != nil {
		return Submission{}, newErrTransport(operation).SetDebug(err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="solution.zip"`)
	header.Set("Content-Type", mimetype.Detect(archive).String())
	part, err := writer.CreatePart(header)
	if err != nil {
		return Submission{}, newErrTransport(operation).SetDebug(err)
	}
	if _, err := part.Write(archive); err != nil {
		return Submission{}, newErrTransport(operation).SetDebug(err)
	}
	if err := writer.Close(); err != nil {
		return Submission{}, newErrTransport(operation).SetDebug(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+fmt.Sprintf("/tasks/upload_solution/%d.html", problemID), &buf)
	if err != nil {
		return Submission{}, newErrTransport(operation).SetDebug(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	body, err := c.doText(req, operation)
	if err != nil {
		return Submission{}, err
	}

	submissions, err := ParseSubmissions(body, problemID)
	if err != nil {
		return Submission{}, err
	}
	if len(submissions) == 0 {
		return Submission{}, newErrNoSubmissions(problemID)
	}

	latest := submissions[len(submissions)-1]
	c.logger.Debug("solution submitted",
		"problem_id", problemID, "version", latest.Version, "submission_id", latest.ID)
	return latest, nil
}
