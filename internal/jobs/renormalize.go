package jobs

import (
	"database/sql"
	"time"

	"aqarhub/internal/ordering"
	"aqarhub/internal/utils"

	"github.com/go-co-op/gocron"
)

// StartRenormalizer schedules the periodic order-index renormalization
// for every orderable collection. Allocation stays correct between runs;
// the job only keeps promoted indices from drifting far negative.
func StartRenormalizer(db *sql.DB, every time.Duration) *gocron.Scheduler {
	s := gocron.NewScheduler(time.UTC)

	_, err := s.Every(every).Do(func() {
		collections := []struct {
			table        string
			promotedExpr string
		}{
			{"listings", ordering.ListingPromotedExpr},
			{"categories", ""},
			{"areas", ""},
		}
		for _, c := range collections {
			changed, err := ordering.Renormalize(db, c.table, c.promotedExpr)
			if err != nil {
				utils.Log.Warnf("renormalize %s failed: %v", c.table, err)
				continue
			}
			if changed > 0 {
				utils.Log.Infof("renormalized %s: %d row(s) moved", c.table, changed)
			}
		}
	})
	if err != nil {
		utils.Log.Warnf("failed to schedule renormalizer: %v", err)
	}

	s.StartAsync()
	return s
}
