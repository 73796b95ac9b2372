package promo

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/celebration/internal/logging"
)

// Outcome is how a popup run ended.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeAccepted
	OutcomeDismissed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeDismissed:
		return "dismissed"
	default:
		return "skipped"
	}
}

// Popup presents a seasonal campaign once per season.
type Popup struct {
	// Campaign is fixed when set, otherwise chosen from the date.
	Campaign  Campaign
	Lang      string
	Force     bool
	Store     Store
	Presenter Presenter
	Now       func() time.Time
	Log       *zap.Logger
}

// Show presents the campaign message unless it was already shown this season.
func (p *Popup) Show(ctx context.Context) (Outcome, error) {
	log := logging.OrNop(p.Log).Named("promo")
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	t := now()

	c := p.Campaign
	if c == "" {
		var running bool
		if c, running = CampaignFor(t); !running {
			log.Info("no campaign running", zap.Time("date", t))
			return OutcomeSkipped, nil
		}
	}
	msg, ok := MessageFor(c, p.Lang)
	if !ok {
		return OutcomeSkipped, fmt.Errorf("no message for campaign %q", c)
	}

	key := seenKey(c, t)
	if !p.Force && p.Store != nil {
		_, seen, err := p.Store.Get(key)
		if err != nil {
			return OutcomeSkipped, fmt.Errorf("check %s: %w", key, err)
		}
		if seen {
			log.Info("popup already shown", zap.String("campaign", string(c)))
			return OutcomeSkipped, nil
		}
	}

	if p.Presenter == nil {
		return OutcomeSkipped, fmt.Errorf("no presenter for campaign %q", c)
	}
	accepted, err := p.Presenter.Present(ctx, msg)
	if err != nil {
		return OutcomeSkipped, err
	}
	if p.Store != nil {
		if err := p.Store.Set(key, t.UTC().Format(time.RFC3339)); err != nil {
			return OutcomeSkipped, fmt.Errorf("mark %s: %w", key, err)
		}
	}

	outcome := OutcomeDismissed
	if accepted {
		outcome = OutcomeAccepted
	}
	log.Info("popup closed",
		zap.String("campaign", string(c)),
		zap.String("lang", msg.Lang),
		zap.Stringer("outcome", outcome))
	return outcome, nil
}
