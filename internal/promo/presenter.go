package promo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ncruces/zenity"
)

// Presenter shows a message and reports whether the user took the offer.
type Presenter interface {
	Present(ctx context.Context, m Message) (accepted bool, err error)
}

// ZenityPresenter shows a native question dialog.
type ZenityPresenter struct {
	Width uint
}

func (p ZenityPresenter) Present(ctx context.Context, m Message) (bool, error) {
	m = m.directional()
	opts := []zenity.Option{
		zenity.Title(m.Title),
		zenity.OKLabel(m.Accept),
		zenity.CancelLabel(m.Dismiss),
		zenity.Context(ctx),
	}
	if p.Width > 0 {
		opts = append(opts, zenity.Width(p.Width))
	}
	err := zenity.Question(m.Body, opts...)
	if errors.Is(err, zenity.ErrCanceled) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("show %s dialog: %w", m.Lang, err)
	}
	return true, nil
}

// rlm is the Unicode right-to-left mark.
const rlm = "\u200F"

// directional prefixes right-to-left text with rlm.
func (m Message) directional() Message {
	if !m.RTL {
		return m
	}
	for _, s := range []*string{&m.Title, &m.Body, &m.Accept, &m.Dismiss} {
		if *s != "" && !strings.HasPrefix(*s, rlm) {
			*s = rlm + *s
		}
	}
	return m
}
