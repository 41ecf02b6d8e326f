package autobet

import (
	"context"
	"errors"
	"sync"

	"github.com/radieske/tennis-autobet/internal/pinnacle"
	"github.com/radieske/tennis-autobet/pkg/contracts/events"
)

type fakeAPI struct {
	fixtures    pinnacle.Fixtures
	fixturesErr error
	bets        map[string][]pinnacle.StraightBet // chave: betlist + status
	betsErr     error
	line        pinnacle.Line
	lineErr     error
	result      pinnacle.BetResult
	placeErr    error

	lineQueries []pinnacle.LineQuery
	placed      []pinnacle.PlaceBetRequest
	betQueries  []pinnacle.BetsQuery
}

func (f *fakeAPI) GetFixtures(_ context.Context, _ int64) (pinnacle.Fixtures, error) {
	return f.fixtures, f.fixturesErr
}

func (f *fakeAPI) GetBets(_ context.Context, q pinnacle.BetsQuery) ([]pinnacle.StraightBet, error) {
	f.betQueries = append(f.betQueries, q)
	if f.betsErr != nil {
		return nil, f.betsErr
	}
	key := q.BetList
	if len(q.BetStatuses) > 0 {
		key += ":" + q.BetStatuses[0]
	}
	return f.bets[key], nil
}

func (f *fakeAPI) GetLine(_ context.Context, q pinnacle.LineQuery) (pinnacle.Line, error) {
	f.lineQueries = append(f.lineQueries, q)
	return f.line, f.lineErr
}

func (f *fakeAPI) PlaceBet(_ context.Context, req pinnacle.PlaceBetRequest) (pinnacle.BetResult, error) {
	f.placed = append(f.placed, req)
	return f.result, f.placeErr
}

type fakeNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (f *fakeNotifier) Notify(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, text)
	return nil
}

type fakeGuard struct {
	held       map[string]bool
	acquireErr error
	released   []string
}

func newFakeGuard() *fakeGuard { return &fakeGuard{held: map[string]bool{}} }

func (g *fakeGuard) Acquire(_ context.Context, key string) (bool, error) {
	if g.acquireErr != nil {
		return false, g.acquireErr
	}
	if g.held[key] {
		return false, nil
	}
	g.held[key] = true
	return true, nil
}

func (g *fakeGuard) Release(_ context.Context, key string) error {
	delete(g.held, key)
	g.released = append(g.released, key)
	return nil
}

type fakePublisher struct {
	got []events.BetOutcome
	err error
}

func (p *fakePublisher) PublishBetOutcome(_ context.Context, e events.BetOutcome) error {
	p.got = append(p.got, e)
	return p.err
}

var errBoom = errors.New("boom")

func tennisFixtures() pinnacle.Fixtures {
	return pinnacle.Fixtures{
		SportID: pinnacle.SportTennis,
		Leagues: []pinnacle.League{
			{
				ID:   1,
				Name: "ITF Men - Tokyo",
				Events: []pinnacle.Event{
					{ID: 100, Home: "Kei Nishikori", Away: "Yoshihito Nishioka"},
				},
			},
			{
				ID:   2,
				Name: "ATP Doubles Tokyo",
				Events: []pinnacle.Event{
					{ID: 200, Home: "Ben Shelton", Away: "Tommy Paul"},
				},
			},
			{
				ID:   3,
				Name: "ATP Tokyo",
				Events: []pinnacle.Event{
					{ID: 300, Home: "Taro Daniel (Games)", Away: "Hong Seong-chan (Games)"},
					{ID: 301, Home: "Taro Daniel", Away: "Hong Seong-chan"},
					{ID: 302, Home: "Frances Tiafoe (Sets)", Away: "Alex de Minaur (Sets)"},
					{ID: 303, Home: "Carlos Alcaraz +1.5 Sets", Away: "Jannik Sinner"},
					{ID: 304, Home: "Casper Ruud", Away: "Holger Rune 1st of Set"},
				},
			},
		},
	}
}
