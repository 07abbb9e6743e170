// Package upstream is the inter-service client of the resource services:
// user lookups against auth, post lookups against puisi, and optional
// remote token validation. Every call runs under its own timeout and is
// never retried.
package upstream

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/puisi/internal/apiclient"
	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/logging"
	"github.com/dmitrijs2005/puisi/internal/server/models"
)

// API is the part of the HTTP client the services depend on.
type API interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	ValidateToken(ctx context.Context, token string) (*models.Principal, error)
}

type Directory struct {
	api     API
	timeout time.Duration
	log     logging.Logger
}

func New(api API, timeout time.Duration, log logging.Logger) *Directory {
	return &Directory{api: api, timeout: timeout, log: log}
}

// NewHTTP builds a Directory over a fresh HTTP client.
func NewHTTP(endpoints apiclient.Endpoints, timeout time.Duration, log logging.Logger) *Directory {
	return New(apiclient.NewHTTPClient(endpoints, timeout), timeout, log)
}

func (d *Directory) GetUser(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	u, err := d.api.GetUser(ctx, id)
	if err != nil {
		d.log.Warn(ctx, "user lookup failed", "user_id", id, "error", err)
		return nil, err
	}
	return u, nil
}

func (d *Directory) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	p, err := d.api.GetPost(ctx, id)
	if err != nil {
		d.log.Warn(ctx, "post lookup failed", "puisi_id", id, "error", err)
		return nil, err
	}
	return p, nil
}

// ValidateToken asks the auth service to confirm token. A rejection yields
// common.ErrInvalidToken; anything else common.ErrorUpstreamUnavailable.
func (d *Directory) ValidateToken(ctx context.Context, token string) (models.Principal, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	p, err := d.api.ValidateToken(ctx, token)
	if err != nil {
		d.log.Warn(ctx, "remote token validation failed", "error", err)
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.Status < 500 || errors.Is(err, common.ErrInvalidToken) {
			return models.Principal{}, common.ErrInvalidToken
		}
		return models.Principal{}, common.ErrorUpstreamUnavailable
	}
	return *p, nil
}
