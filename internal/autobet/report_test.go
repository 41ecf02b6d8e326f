package autobet

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/tennis-autobet/internal/pinnacle"
)

func ptr(f float64) *float64 { return &f }

func TestCalcROI(t *testing.T) {
	api := &fakeAPI{bets: map[string][]pinnacle.StraightBet{
		"SETTLED:WON": {
			{TeamName: "Taro Daniel", Team1: "Taro Daniel", Team2: "Hong Seong-chan", Risk: 500, Price: 1.8, WinLoss: ptr(400)},
			{TeamName: "Casper Ruud", Team1: "Casper Ruud", Team2: "Holger Rune", Risk: 20, Price: 2, WinLoss: ptr(20)},
		},
		"SETTLED:LOSE": {
			{TeamName: "Tommy Paul", Team1: "Ben Shelton", Team2: "Tommy Paul", Risk: 500, Price: 2.1, WinLoss: ptr(-500)},
			{BetID: 42, TeamName: "Pending", Risk: 500},
		},
	}}
	c, _ := newTestClient(t, api, nil)
	api.betQueries = nil

	var buf bytes.Buffer
	rep, err := c.CalcROI(context.Background(), &buf)
	require.NoError(t, err)

	assert.Equal(t, -80.0, rep.Total)
	assert.Equal(t, -100.0, rep.AutoBetROI)
	assert.Equal(t, 1, rep.AutoWins)
	assert.Equal(t, 1, rep.AutoLosses)
	assert.Equal(t, 50.0, rep.WinRatio())

	out := buf.String()
	assert.Contains(t, out, "[Taro Daniel] vs [Hong Seong-chan]: 500@1.8, 400.00")
	assert.Contains(t, out, "[Tommy Paul] vs [Ben Shelton]: 500@2.1, -500.00")
	assert.NotContains(t, out, "[Casper Ruud]")
	assert.Contains(t, out, "BetID:42")
	assert.Contains(t, out, "Auto Bet ROI: -100.00\n")
	assert.Contains(t, out, "Auto Bet Win Ratio: 50.00% (Win: 1, Lose: 1)\n")

	require.Len(t, api.betQueries, 2)
	assert.Equal(t, pinnacle.BetListSettled, api.betQueries[0].BetList)
	assert.Equal(t, fixedNow.AddDate(0, 0, -1), api.betQueries[0].From)
	assert.Equal(t, fixedNow, api.betQueries[0].To)
}

func TestCalcROIWithoutAutoBets(t *testing.T) {
	c, _ := newTestClient(t, &fakeAPI{}, nil)

	var buf bytes.Buffer
	rep, err := c.CalcROI(context.Background(), &buf)
	require.NoError(t, err)
	assert.Zero(t, rep.WinRatio())
	assert.Contains(t, buf.String(), "Auto Bet Win Ratio: 0.00% (Win: 0, Lose: 0)")
}

func TestCalcROIUpstreamError(t *testing.T) {
	api := &fakeAPI{}
	c, n := newTestClient(t, api, nil)
	api.betsErr = errBoom

	_, err := c.CalcROI(context.Background(), &bytes.Buffer{})
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, []string{"boom"}, n.msgs)
}

func TestShowCurrentOpenBets(t *testing.T) {
	api := &fakeAPI{bets: map[string][]pinnacle.StraightBet{
		"RUNNING:ACCEPTED": {
			{TeamName: "Tommy Paul", Team1: "Ben Shelton", Team2: "Tommy Paul", Risk: 500, Price: 2.1},
			{TeamName: "Casper Ruud", Team1: "Casper Ruud", Team2: "Holger Rune", Risk: 500, Price: 1.5, SettledAt: "2024-10-02T10:00:00Z"},
			{TeamName: "Alex de Minaur", Team1: "Frances Tiafoe", Team2: "Alex de Minaur", Risk: 300, Price: 1.7},
		},
	}}
	c, _ := newTestClient(t, api, nil)

	var buf bytes.Buffer
	n := c.ShowCurrentOpenBets(&buf)
	assert.Equal(t, 2, n)
	assert.Equal(t,
		"[Alex de Minaur] vs [Frances Tiafoe]: 300@1.7\n"+
			"[Tommy Paul] vs [Ben Shelton]: 500@2.1\n"+
			"2\n",
		buf.String())
}
