package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/scramble/internal/model"
	"github.com/verte-zerg/scramble/internal/store"
)

// Report contains precomputed data for the scores output.
type Report struct {
	Rounds []model.RoundAggregate
	Top    []model.RoundAggregate
}

// BuildReport loads and prepares data for the scores output.
func BuildReport(ctx context.Context, st *store.Store, cfg model.ScoresConfig) (Report, error) {
	rounds, err := st.ListRounds(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(rounds) > cfg.Last {
		rounds = rounds[len(rounds)-cfg.Last:]
	}
	top, err := st.TopRounds(ctx, cfg.Top, cfg)
	if err != nil {
		return Report{}, err
	}
	return Report{Rounds: rounds, Top: top}, nil
}

// Render writes the summary followed by the top-score table.
func (r Report) Render(w io.Writer, window, width int) error {
	if err := RenderSummary(w, r.Rounds, window, width); err != nil {
		return err
	}
	if len(r.Rounds) == 0 {
		return nil
	}
	return RenderTopTable(w, r.Top)
}
