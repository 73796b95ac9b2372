package promo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakePresenter struct {
	accept bool
	err    error
	shown  []Message
}

func (f *fakePresenter) Present(_ context.Context, m Message) (bool, error) {
	f.shown = append(f.shown, m)
	return f.accept, f.err
}

func at(year int, month time.Month, day int) func() time.Time {
	return func() time.Time { return time.Date(year, month, day, 20, 0, 0, 0, time.UTC) }
}

func TestCampaignFor(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		date time.Time
		want Campaign
	}{
		"december start":  {time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), NewYear},
		"new year eve":    {time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), NewYear},
		"late january":    {time.Date(2027, time.January, 31, 23, 0, 0, 0, time.UTC), NewYear},
		"valentine start": {time.Date(2027, time.February, 1, 0, 0, 0, 0, time.UTC), Valentine},
		"valentine day":   {time.Date(2027, time.February, 14, 23, 0, 0, 0, time.UTC), Valentine},
		"after valentine": {time.Date(2027, time.February, 15, 0, 0, 0, 0, time.UTC), ""},
		"summer":          {time.Date(2027, time.July, 10, 0, 0, 0, 0, time.UTC), ""},
		"november":        {time.Date(2027, time.November, 30, 0, 0, 0, 0, time.UTC), ""},
	}
	for name, tc := range cases {
		got, ok := CampaignFor(tc.date)
		require.Equal(t, tc.want, got, name)
		require.Equal(t, tc.want != "", ok, name)
	}
}

func TestParseCampaign(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Campaign{"": "", "auto": "", "New-Year": NewYear, "valentine": Valentine} {
		got, err := ParseCampaign(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseCampaign("eid")
	require.Error(t, err)
}

func TestSeenKeyGroupsNewYearSeason(t *testing.T) {
	t.Parallel()

	dec := seenKey(NewYear, time.Date(2026, time.December, 28, 0, 0, 0, 0, time.UTC))
	jan := seenKey(NewYear, time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC))
	require.Equal(t, dec, jan)
	require.Equal(t, "popup.new-year.2027.shown", jan)
	require.Equal(t, "popup.valentine.2027.shown", seenKey(Valentine, time.Date(2027, time.February, 10, 0, 0, 0, 0, time.UTC)))
}

func TestResolveLanguage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		prefs []string
		want  string
	}{
		{nil, "en"},
		{[]string{""}, "en"},
		{[]string{"ar"}, "ar"},
		{[]string{"ar-KW"}, "ar"},
		{[]string{"ar_KW.UTF-8"}, "ar"},
		{[]string{"C"}, "en"},
		{[]string{"fr-FR"}, "en"},
		{[]string{"en-US,ar;q=0.5"}, "en"},
		{[]string{"", "ar-KW"}, "ar"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ResolveLanguage(tc.prefs...), "%q", tc.prefs)
	}
}

func TestMessageForFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	m, ok := MessageFor(Valentine, "de")
	require.True(t, ok)
	require.Equal(t, "en", m.Lang)

	m, ok = MessageFor(NewYear, "ar")
	require.True(t, ok)
	require.True(t, m.RTL)
	require.NotEmpty(t, m.Accept)

	_, ok = MessageFor(Campaign("eid"), "en")
	require.False(t, ok)
}

func TestDirectionalMarksRightToLeftText(t *testing.T) {
	t.Parallel()

	ar, _ := MessageFor(Valentine, "ar")
	got := ar.directional()
	for _, s := range []string{got.Title, got.Body, got.Accept, got.Dismiss} {
		require.True(t, strings.HasPrefix(s, "\u200F"), "%q", s)
	}
	require.Equal(t, got, got.directional())
	require.False(t, strings.HasPrefix(ar.Body, "\u200F"), "dictionary entry is left untouched")

	en, _ := MessageFor(Valentine, "en")
	require.Equal(t, en, en.directional())
}

func TestPopupShowsOncePerSeason(t *testing.T) {
	t.Parallel()

	pres := &fakePresenter{accept: true}
	store := NewMemoryStore()
	p := &Popup{Lang: "ar", Store: store, Presenter: pres, Now: at(2026, time.December, 31), Log: zaptest.NewLogger(t)}

	out, err := p.Show(context.Background())
	require.NoError(t, err)
	require.Equal(t, OutcomeAccepted, out)
	require.Len(t, pres.shown, 1)
	require.Equal(t, "ar", pres.shown[0].Lang)

	p.Now = at(2027, time.January, 5)
	out, err = p.Show(context.Background())
	require.NoError(t, err)
	require.Equal(t, OutcomeSkipped, out)
	require.Len(t, pres.shown, 1)

	p.Force = true
	out, err = p.Show(context.Background())
	require.NoError(t, err)
	require.Equal(t, OutcomeAccepted, out)
	require.Len(t, pres.shown, 2)
}

func TestPopupSkipsOutsideCampaigns(t *testing.T) {
	t.Parallel()

	pres := &fakePresenter{accept: true}
	store := NewMemoryStore()
	p := &Popup{Lang: "en", Store: store, Presenter: pres, Now: at(2027, time.July, 10), Log: zaptest.NewLogger(t)}

	out, err := p.Show(context.Background())
	require.NoError(t, err)
	require.Equal(t, OutcomeSkipped, out)
	require.Empty(t, pres.shown)

	// A fixed campaign still runs on any date.
	p.Campaign = NewYear
	out, err = p.Show(context.Background())
	require.NoError(t, err)
	require.Equal(t, OutcomeAccepted, out)
	require.Len(t, pres.shown, 1)
}

func TestPopupDismissAndErrors(t *testing.T) {
	t.Parallel()

	pres := &fakePresenter{}
	p := &Popup{Campaign: Valentine, Lang: "en", Store: NewMemoryStore(), Presenter: pres, Now: at(2027, time.March, 1)}
	out, err := p.Show(context.Background())
	require.NoError(t, err)
	require.Equal(t, OutcomeDismissed, out)
	require.Equal(t, "Happy Valentine's Day", pres.shown[0].Title)

	boom := errors.New("no display")
	failing := &Popup{Campaign: NewYear, Store: NewMemoryStore(), Presenter: &fakePresenter{err: boom}}
	_, err = failing.Show(context.Background())
	require.ErrorIs(t, err, boom)
	_, seen, _ := failing.Store.Get(seenKey(NewYear, time.Now()))
	require.False(t, seen, "failed dialogs are not marked shown")

	_, err = (&Popup{Campaign: NewYear}).Show(context.Background())
	require.Error(t, err)
}

func TestFileStorePersists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "flags.yaml")
	s := NewFileStore(path)

	_, ok, err := s.Get("popup.valentine.2027.shown")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set("popup.valentine.2027.shown", "2027-02-10T20:00:00Z"))
	require.NoError(t, s.Set("popup.new-year.2027.shown", "2026-12-31T20:00:00Z"))

	reopened := NewFileStore(path)
	v, ok, err := reopened.Get("popup.valentine.2027.shown")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2027-02-10T20:00:00Z", v)
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "flags.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o644))

	_, _, err := NewFileStore(path).Get("x")
	require.Error(t, err)
	require.Error(t, NewFileStore(path).Set("x", "y"))
}
