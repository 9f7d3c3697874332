package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/residence-registry/internal/api/dto"
	"github.com/spec-kit/residence-registry/internal/domain"
	apperrors "github.com/spec-kit/residence-registry/pkg/util/errorutil"
)

// Controller owns all client-side registry state: the cached record
// snapshot, the single form draft, the editing flag and the login session.
// It is driven by strictly sequential user actions; at most one mutation is
// ever in flight, and the rendered list is always the last successfully
// fetched snapshot, never an optimistic projection.
type Controller struct {
	api      *APIClient
	notifier Notifier
	logger   *zap.Logger

	serverAuth bool

	records []dto.ResidentPayload
	draft   dto.ResidentPayload
	editing bool
	session domain.Session
}

// Options tunes controller construction.
type Options struct {
	// ServerAuth makes Login also perform the token exchange so mutations
	// pass a role-enforcing server. Off by default, matching the registry's
	// trust-the-caller contract.
	ServerAuth bool
}

// NewController builds a controller around the given API client.
func NewController(api *APIClient, notifier Notifier, logger *zap.Logger, opts Options) *Controller {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{api: api, notifier: notifier, logger: logger, serverAuth: opts.ServerAuth}
}

// Login evaluates the credential pair against the fixed two-profile table.
// Any other pair fails with no session change. Success triggers the initial
// snapshot fetch.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	var role domain.Role
	switch {
	case username == "admin" && password == "admin":
		role = domain.RoleAdmin
	case username == "resident" && password == "resident":
		role = domain.RoleResident
	default:
		c.notifier.Error("Invalid username or password!")
		return apperrors.NewUnauthorized("invalid username or password")
	}

	if c.serverAuth {
		if err := c.api.Login(ctx, username, password); err != nil {
			c.notifier.Error("Invalid username or password!")
			return err
		}
	}

	c.session = domain.Session{LoggedIn: true, Role: role}
	c.notifier.Success("Logged in as " + string(role) + "!")
	c.Refresh(ctx)
	return nil
}

// Logout destroys the session and all cached client state.
func (c *Controller) Logout() {
	c.session = domain.Session{}
	c.records = nil
	c.draft = dto.ResidentPayload{}
	c.editing = false
	c.api.SetToken("")
	c.notifier.Success("Logged out successfully!")
}

// Session returns the current login state.
func (c *Controller) Session() domain.Session {
	return c.session
}

// CanMutate reports whether the UI should expose mutation controls. This is
// a rendering affordance only; the service itself decides enforcement.
func (c *Controller) CanMutate() bool {
	return c.session.LoggedIn && c.session.Role == domain.RoleAdmin
}

// Refresh replaces the cached snapshot wholesale with the server's current
// list. A fetch failure keeps the previous snapshot and is only logged;
// stale-but-available beats blocked.
func (c *Controller) Refresh(ctx context.Context) {
	residents, err := c.api.ListResidents(ctx)
	if err != nil {
		c.logger.Error("error fetching residents", zap.Error(err))
		return
	}
	c.records = residents
}

// Records returns the last successfully fetched snapshot.
func (c *Controller) Records() []dto.ResidentPayload {
	return c.records
}

// Draft returns the current form values.
func (c *Controller) Draft() dto.ResidentPayload {
	return c.draft
}

// Editing reports whether the draft targets an existing record.
func (c *Controller) Editing() bool {
	return c.editing
}

// SetDraft replaces the form values, as typing into the form does.
func (c *Controller) SetDraft(draft dto.ResidentPayload) {
	c.draft = draft
}

// BeginEdit copies the record verbatim into the draft and flips to edit
// mode. Any unsaved draft is overwritten without warning; last write wins.
func (c *Controller) BeginEdit(record dto.ResidentPayload) {
	c.draft = record
	c.editing = true
}

// SubmitDraft creates or updates depending on mode. On success the draft is
// cleared and the snapshot refreshed; on failure draft and mode are left
// untouched so the input is not lost.
func (c *Controller) SubmitDraft(ctx context.Context) error {
	if c.editing {
		if err := c.api.UpdateResident(ctx, c.draft.ID, c.draft); err != nil {
			c.notifier.Error("Error updating Resident!")
			return err
		}
		c.notifier.Success("Resident updated successfully!")
	} else {
		if err := c.api.CreateResident(ctx, c.draft); err != nil {
			c.notifier.Error("Error adding Resident!")
			return err
		}
		c.notifier.Success("Resident added successfully!")
	}

	c.draft = dto.ResidentPayload{}
	c.editing = false
	c.Refresh(ctx)
	return nil
}

// RemoveRecord deletes the record at id and refreshes on success.
func (c *Controller) RemoveRecord(ctx context.Context, id string) error {
	if err := c.api.DeleteResident(ctx, id); err != nil {
		c.notifier.Error("Error deleting Resident!")
		return err
	}
	c.notifier.Success("Resident deleted!")
	c.Refresh(ctx)
	return nil
}

// Filtered projects the snapshot through the search term.
func (c *Controller) Filtered(term string) []dto.ResidentPayload {
	return Filter(c.records, term)
}
