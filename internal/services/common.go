package services

import (
	"context"

	intconfig "aqarhub/internal/config"
)

// invalidate drops cached renders of the given public paths after a
// successful mutation. Fire-and-forget: a missing or failing cache
// never fails the action.
func invalidate(paths ...string) {
	if intconfig.Cache == nil {
		return
	}
	intconfig.Cache.Invalidate(context.Background(), paths...)
}
