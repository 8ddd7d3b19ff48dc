package ports

import (
	"context"

	"storage-dashboard/internal/domain/session"
)

// Guard gates every protected view. It re-runs independently per request:
// there is no shared session cache across views.
type Guard interface {
	Check(ctx context.Context) (*session.Session, error)
}
