package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain/user"
	xe "github.com/Nucmaan/Task-Manager-Backend/pkg/errors"
)

type validator struct {
	root    string
	client  *http.Client
	timeout time.Duration
}

var _ user.Validator = &validator{}

type Option func(*validator) *validator

func WithTimeout(timeout time.Duration) Option {
	return func(v *validator) *validator {
		v.timeout = timeout
		return v
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(v *validator) *validator {
		v.client = client
		return v
	}
}

// New returns a Validator querying `GET {root}/users/{id}`.
//
// root is the user service api root, like "http://user-service:8001/api/auth".
func New(root string, options ...Option) user.Validator {
	v := &validator{
		root:    root,
		client:  http.DefaultClient,
		timeout: 3 * time.Second,
	}
	for _, opt := range options {
		v = opt(v)
	}
	return v
}

type userEnvelope struct {
	User *profile `json:"user"`
}

type profile struct {
	Id           int     `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	ProfileImage *string `json:"profile_image"`
}

func (v *validator) Lookup(ctx context.Context, userId int) (domain.UserProfile, user.Outcome, error) {
	cctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(
		cctx, http.MethodGet, fmt.Sprintf("%s/users/%d", v.root, userId), nil,
	)
	if err != nil {
		return domain.UserProfile{}, user.Unknown, xe.Wrap(err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return domain.UserProfile{}, user.Unknown, xe.WrapWithNote("user service is not reachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.UserProfile{}, user.Absent, nil
	case resp.StatusCode != http.StatusOK:
		return domain.UserProfile{}, user.Unknown, xe.New(fmt.Sprintf(
			"user service answered %d for user %d", resp.StatusCode, userId,
		))
	}

	envelope := userEnvelope{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return domain.UserProfile{}, user.Unknown, xe.WrapWithNote("malformed user service response", err)
	}
	if envelope.User == nil {
		return domain.UserProfile{}, user.Absent, nil
	}

	return domain.UserProfile{
		Id:           envelope.User.Id,
		Name:         envelope.User.Name,
		Email:        envelope.User.Email,
		Role:         envelope.User.Role,
		ProfileImage: envelope.User.ProfileImage,
	}, user.Present, nil
}
