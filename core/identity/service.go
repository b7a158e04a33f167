package identity

import (
	"context"

	"github.com/shareulbi/webcore/core"
)

type (
	// LoginResponse is what POST /login returns. The session credential
	// itself is an httpOnly cookie set by the server; no token ever reaches
	// this struct.
	LoginResponse struct {
		User Identity `json:"user"`
	}

	Service struct {
		api core.APIClient
	}
)

func NewService(api core.APIClient) *Service {
	return &Service{api: api}
}

// Login authenticates with the API. Input is validated locally first so a
// bad form never produces a network call.
func (svc *Service) Login(ctx context.Context, creds Credentials) (Identity, error) {
	if err := creds.Validate(); err != nil {
		return Identity{}, err
	}
	var resp LoginResponse
	if err := svc.api.Post(ctx, "/login", creds, &resp); err != nil {
		return Identity{}, err
	}
	return resp.User, nil
}

func (svc *Service) Logout(ctx context.Context) error {
	return svc.api.Post(ctx, "/logout", nil, nil)
}

// Me returns the identity bound to the current session cookie, or a 401
// *core.HTTPError when there is none.
func (svc *Service) Me(ctx context.Context) (Identity, error) {
	var idn Identity
	if err := svc.api.Get(ctx, "/me", &idn); err != nil {
		return Identity{}, err
	}
	return idn, nil
}

func (svc *Service) Register(ctx context.Context, reg Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	return svc.api.Post(ctx, "/register", reg, nil)
}

func (svc *Service) Departments(ctx context.Context) ([]Department, error) {
	var deps []Department
	if err := svc.api.Get(ctx, "/departments", &deps); err != nil {
		return nil, err
	}
	return deps, nil
}
