package port

import (
	"context"

	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/wizard"
)

// WizardUseCase runs course wizard sessions on behalf of a viewer.
type WizardUseCase interface {
	// Start opens a session, optionally for an originating campaign.
	Start(ctx context.Context, viewer domain.Viewer, campaignSlug string) (*WizardSession, error)
	// Dispatch applies a user event to the session and runs the
	// resulting effects.
	Dispatch(ctx context.Context, viewer domain.Viewer, id string, ev wizard.Event) (*WizardSession, error)
	// Get returns the current session.
	Get(ctx context.Context, viewer domain.Viewer, id string) (*WizardSession, error)
}

// WizardSession is a session snapshot returned to callers.
type WizardSession struct {
	ID   string
	View wizard.View
}

// WizardStore keeps wizard sessions between requests. Update must
// serialise calls for the same session.
type WizardStore interface {
	// Create stores a new session owned by owner and returns its id.
	Create(ctx context.Context, owner string, state wizard.State) (string, error)
	// Update loads the session, passes it to fn and stores the state fn
	// leaves behind. It returns ErrSessionNotFound for unknown ids and
	// any error returned by fn, in which case the state is not saved.
	Update(ctx context.Context, id string, fn func(owner string, state *wizard.State) error) error
}
