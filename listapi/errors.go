package listapi

import (
	"fmt"

	"github.com/list-fmph/list-submit/srvcerror"
)

const ErrCodeTransport = "transport_error"

func newErrTransport(operation string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTransport,
		fmt.Sprintf("request to list failed: %s", operation),
	)
}

const ErrCodeParse = "parse_error"

func newErrParse(locationHint string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeParse,
		fmt.Sprintf("list returned an unexpected document: %s", locationHint),
	)
}

const ErrCodeInvalidCredentials = "invalid_credentials"

func newErrInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"login failed, check your email and password",
	)
}

const ErrCodeNoSessionCookie = "no_session_cookie"

func newErrNoSessionCookie() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoSessionCookie,
		"list did not grant a session cookie",
	)
}

const ErrCodeResponseStatusFalse = "response_status_false"

func newErrResponseStatusFalse(operation string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeResponseStatusFalse,
		fmt.Sprintf("list refused the request: %s", operation),
	)
}

const ErrCodeNoSubmissions = "no_submissions_found"

func newErrNoSubmissions(problemID int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoSubmissions,
		fmt.Sprintf("no submissions found for problem %d after upload", problemID),
	)
}
