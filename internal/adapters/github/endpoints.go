package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gitpulse/internal/core/ghapp"
	perr "gitpulse/internal/platform/errors"
)

type wireAccount struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Type      string `json:"type"`
}

type wireInstallation struct {
	ID         int64       `json:"id"`
	AppID      int64       `json:"app_id"`
	TargetType string      `json:"target_type"`
	Account    wireAccount `json:"account"`
}

type wireRepository struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Private  bool   `json:"private"`
	HTMLURL  string `json:"html_url"`
	Language string `json:"language"`
}

type wireEvent struct {
	ID    string      `json:"id"`
	Type  string      `json:"type"`
	Actor wireAccount `json:"actor"`
	Repo  struct {
		Name string `json:"name"`
	} `json:"repo"`
	CreatedAt time.Time `json:"created_at"`
}

func (a wireAccount) domain() ghapp.Account {
	return ghapp.Account{Login: a.Login, AvatarURL: a.AvatarURL, Type: a.Type}
}

// AuthenticatedUser fetches the user behind the given access token
func (c *Client) AuthenticatedUser(ctx context.Context, token string) (ghapp.User, error) {
	var out struct {
		Login     string `json:"login"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.getJSON(ctx, "/user", token, &out); err != nil {
		return ghapp.User{}, err
	}
	return ghapp.User{Login: out.Login, Name: out.Name, AvatarURL: out.AvatarURL}, nil
}

// UserInstallations lists the App installations the token's user can access
func (c *Client) UserInstallations(ctx context.Context, token string) ([]ghapp.Installation, error) {
	var out struct {
		Installations []wireInstallation `json:"installations"`
	}
	if err := c.getJSON(ctx, "/user/installations?per_page=100", token, &out); err != nil {
		return nil, err
	}
	list := make([]ghapp.Installation, 0, len(out.Installations))
	for _, in := range out.Installations {
		list = append(list, ghapp.Installation{
			ID:         in.ID,
			Account:    in.Account.domain(),
			AppID:      in.AppID,
			TargetType: in.TargetType,
		})
	}
	return list, nil
}

// InstallationRepositories lists repositories the user can access through
// the given installation
func (c *Client) InstallationRepositories(ctx context.Context, token string, installationID int64) ([]ghapp.Repository, error) {
	path := fmt.Sprintf("/user/installations/%d/repositories?per_page=100", installationID)
	var out struct {
		Repositories []wireRepository `json:"repositories"`
	}
	if err := c.getJSON(ctx, path, token, &out); err != nil {
		return nil, err
	}
	list := make([]ghapp.Repository, 0, len(out.Repositories))
	for _, r := range out.Repositories {
		list = append(list, ghapp.Repository{
			ID:       r.ID,
			Name:     r.Name,
			FullName: r.FullName,
			Private:  r.Private,
			HTMLURL:  r.HTMLURL,
			Language: r.Language,
		})
	}
	return list, nil
}

// ReceivedEvents returns a page of the user's received-events feed
func (c *Client) ReceivedEvents(ctx context.Context, token, login string, page, perPage int) ([]ghapp.Event, error) {
	if perPage <= 0 || perPage > 100 {
		perPage = 30
	}
	if page <= 0 {
		page = 1
	}
	path := fmt.Sprintf("/users/%s/received_events?per_page=%d&page=%d", login, perPage, page)
	var out []wireEvent
	if err := c.getJSON(ctx, path, token, &out); err != nil {
		return nil, err
	}
	list := make([]ghapp.Event, 0, len(out))
	for _, ev := range out {
		list = append(list, ghapp.Event{
			ID:        ev.ID,
			Type:      ev.Type,
			Actor:     ev.Actor.domain(),
			Repo:      ev.Repo.Name,
			CreatedAt: ev.CreatedAt,
		})
	}
	return list, nil
}

// getJSON issues a GET and decodes the body into out
func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, token, "")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return perr.Wrapf(err, perr.KindGitHub, "github read body failed")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Wrapf(err, perr.KindGitHub, "github decode failed")
	}
	return nil
}
