package autobet

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/radieske/tennis-autobet/internal/pinnacle"
)

// ROIReport resume as apostas liquidadas do dia anterior
type ROIReport struct {
	Total      float64 // soma de winLoss de todas as apostas
	AutoBetROI float64 // soma de winLoss das apostas automáticas
	AutoWins   int
	AutoLosses int
}

// WinRatio em porcentagem; zero quando não há apostas automáticas decididas
func (r ROIReport) WinRatio() float64 {
	n := r.AutoWins + r.AutoLosses
	if n == 0 {
		return 0
	}
	return float64(r.AutoWins) / float64(n) * 100
}

// CalcROI busca as apostas ganhas e perdidas entre ontem e agora e imprime o resumo
// das apostas automáticas, identificadas pelo stake igual a Config.AutoBetStake.
func (c *Client) CalcROI(ctx context.Context, w io.Writer) (ROIReport, error) {
	now := c.cfg.Now()
	yesterday := now.AddDate(0, 0, -1)

	var settled []pinnacle.StraightBet
	for _, status := range []string{pinnacle.BetStatusWon, pinnacle.BetStatusLose} {
		bets, err := c.getBets(ctx, pinnacle.BetsQuery{
			BetList:     pinnacle.BetListSettled,
			BetStatuses: []string{status},
			From:        yesterday,
			To:          now,
		})
		if err != nil {
			c.notify(ctx, err.Error())
			return ROIReport{}, fmt.Errorf("get settled bets %s: %w", status, err)
		}
		settled = append(settled, bets...)
	}

	var rep ROIReport
	for _, b := range settled {
		if b.WinLoss == nil {
			c.log.Debug("settled bet without winLoss", zap.Int64("bet_id", b.BetID))
			fmt.Fprintf(w, "%+v\n", b)
			continue
		}
		wl := *b.WinLoss
		rep.Total += wl

		if b.Risk != c.cfg.AutoBetStake {
			continue
		}
		fmt.Fprintf(w, "[%s] vs [%s]: %g@%g, %.2f\n", b.TeamName, b.Opponent(), b.Risk, b.Price, wl)
		rep.AutoBetROI += wl
		switch {
		case wl > 0:
			rep.AutoWins++
		case wl < 0:
			rep.AutoLosses++
		}
	}

	fmt.Fprintf(w, "Auto Bet ROI: %.2f\n", rep.AutoBetROI)
	fmt.Fprintf(w, "Auto Bet Win Ratio: %.2f%% (Win: %d, Lose: %d)\n", rep.WinRatio(), rep.AutoWins, rep.AutoLosses)
	return rep, nil
}

// ShowCurrentOpenBets imprime as apostas abertas ainda não liquidadas, ordenadas pelo lado apostado
func (c *Client) ShowCurrentOpenBets(w io.Writer) int {
	sort.SliceStable(c.openBets, func(i, j int) bool {
		return c.openBets[i].TeamName < c.openBets[j].TeamName
	})

	count := 0
	for _, b := range c.openBets {
		if b.SettledAt != "" {
			continue
		}
		count++
		fmt.Fprintf(w, "[%s] vs [%s]: %g@%g\n", b.TeamName, b.Opponent(), b.Risk, b.Price)
	}
	fmt.Fprintln(w, count)
	return count
}
