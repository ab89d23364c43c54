package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/report"
	xe "github.com/Nucmaan/Task-Manager-Backend/pkg/errors"
)

type reporter struct {
	root    string
	client  *http.Client
	timeout time.Duration
}

var _ report.Reporter = &reporter{}

type Option func(*reporter) *reporter

func WithTimeout(timeout time.Duration) Option {
	return func(r *reporter) *reporter {
		r.timeout = timeout
		return r
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(r *reporter) *reporter {
		r.client = client
		return r
	}
}

// New returns a Reporter posting to `{root}/track`.
func New(root string, options ...Option) report.Reporter {
	r := &reporter{
		root:    root,
		client:  http.DefaultClient,
		timeout: 3 * time.Second,
	}
	for _, opt := range options {
		r = opt(r)
	}
	return r
}

type payload struct {
	UserId             int    `json:"userId"`
	TimeTakenInMinutes int    `json:"timeTakenInMinutes"`
	Status             string `json:"status"`
}

func (r *reporter) Track(ctx context.Context, userId int, elapsedMinutes int, status domain.TaskStatus) error {
	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	body, err := json.Marshal(payload{
		UserId:             userId,
		TimeTakenInMinutes: elapsedMinutes,
		Status:             status.String(),
	})
	if err != nil {
		return xe.Wrap(err)
	}

	req, err := http.NewRequestWithContext(
		cctx, http.MethodPost, r.root+"/track", bytes.NewReader(body),
	)
	if err != nil {
		return xe.Wrap(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return xe.WrapWithNote("performance endpoint is not reachable", err)
	}
	defer resp.Body.Close()

	// response body is ignored; only the status class matters.
	if resp.StatusCode < 200 || 300 <= resp.StatusCode {
		return xe.New(fmt.Sprintf("performance endpoint answered %d", resp.StatusCode))
	}
	return nil
}
