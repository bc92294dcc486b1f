// Package cli implements the FileVault admin tool. It talks to a running
// server over HTTP and currently supports one operation: registering a user.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

type App struct {
	serverURL string
	client    *http.Client
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(serverURL string) *App {
	return &App{
		serverURL: strings.TrimRight(serverURL, "/"),
		client: &http.Client{
			// Registration answers with a redirect on success; the status
			// itself is the result, so redirects are not followed.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	if err := a.Register(ctx); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "Success!")
}

// Register prompts for a login id and password and creates the user on the
// server.
func (a *App) Register(ctx context.Context) error {

	loginID, err := GetSimpleText(a.reader, "Enter login id", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	form := url.Values{
		"loginId":  {loginID},
		"password": {string(password)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.serverURL+"/register", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("registration failed: %s", strings.TrimSpace(string(body)))
	}

	return nil
}
