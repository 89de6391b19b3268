package listapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/list-fmph/list-submit/httpjson"
)

const sessionCookieName = "list_session"

// loginMarker is rendered on every page of a logged-in session. The
// portal answers bad credentials with a regular 200 page, so the marker
// is the only reliable success signal besides the cookie.
const loginMarker = "Môj účet"

const loginButtonLabel = "Prihlás ma"

// Client owns one authenticated cookie session against the LIST portal
// and exposes one method per remote capability. Cookie state is mutated
// by every request, so a Client must not be shared across concurrent
// workflows without synchronization.
type Client struct {
	httpc   *http.Client
	baseURL string
	logger  *slog.Logger

	// activeCourse mirrors the server-side session attribute that
	// selects which course's problems are visible.
	activeCourse *int
}

// Login posts credentials and returns an authenticated client. Success
// requires both the session cookie and the logged-in marker in the
// body; the two failure modes are reported distinctly.
func Login(ctx context.Context, baseURL, email, password string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, newErrTransport("create cookie jar").SetDebug(err)
	}
	c := &Client{
		httpc:   &http.Client{Jar: jar},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  slog.Default(),
	}

	form := url.Values{}
	form.Set("student[email]", email)
	form.Set("student[password]", password)
	form.Set("button_submit", loginButtonLabel)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/students/do_login.html", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, newErrTransport("login").SetDebug(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(req, "login")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newErrTransport("login").SetDebug(err)
	}

	if !c.sessionCookieGranted(resp) {
		return nil, newErrNoSessionCookie()
	}
	if !strings.Contains(string(body), loginMarker) {
		return nil, newErrInvalidCredentials()
	}

	c.logger.Debug("logged in to list", "email", email)
	return c, nil
}

// sessionCookieGranted reports whether the login handed out the session
// cookie. The response's own Set-Cookie headers are checked first; a
// cookie consumed on an intermediate redirect hop lives in the jar,
// path-matched against the final login URL so that the default-path
// scoping of a bare Set-Cookie still counts.
func (c *Client) sessionCookieGranted(resp *http.Response) bool {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName {
			return true
		}
	}
	for _, cookie := range c.httpc.Jar.Cookies(resp.Request.URL) {
		if cookie.Name == sessionCookieName {
			return true
		}
	}
	return false
}

// do runs the request and translates transport failures and non-OK
// statuses into transport errors carrying the operation name.
func (c *Client) do(req *http.Request, operation string) (*http.Response, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, newErrTransport(operation).SetDebug(err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, newErrTransport(operation).SetHttpStatusCode(resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) getText(ctx context.Context, path string, operation string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", newErrTransport(operation).SetDebug(err)
	}
	return c.doText(req, operation)
}

func (c *Client) doText(req *http.Request, operation string) (string, error) {
	resp, err := c.do(req, operation)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newErrTransport(operation).SetDebug(err)
	}
	return string(body), nil
}

// doStatus runs a request against one of the two endpoints that answer
// with a {"status": bool} JSON envelope instead of HTML.
func (c *Client) doStatus(req *http.Request, operation string) error {
	resp, err := c.do(req, operation)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	status, err := httpjson.DecodeStatus(resp.Body)
	if err != nil {
		return newErrParse(operation + ": status envelope").SetDebug(err)
	}
	if !status {
		return newErrResponseStatusFalse(operation)
	}
	return nil
}
