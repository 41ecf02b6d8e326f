package autobet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/tennis-autobet/internal/notifier"
	"github.com/radieske/tennis-autobet/internal/pinnacle"
	"github.com/radieske/tennis-autobet/internal/shared/logger"
	"github.com/radieske/tennis-autobet/internal/shared/metrics"
	"github.com/radieske/tennis-autobet/pkg/contracts/events"
)

// SportsbookAPI é o subconjunto da API da casa usado pelo cliente de apostas
type SportsbookAPI interface {
	GetFixtures(ctx context.Context, sportID int64) (pinnacle.Fixtures, error)
	GetBets(ctx context.Context, q pinnacle.BetsQuery) ([]pinnacle.StraightBet, error)
	GetLine(ctx context.Context, q pinnacle.LineQuery) (pinnacle.Line, error)
	PlaceBet(ctx context.Context, req pinnacle.PlaceBetRequest) (pinnacle.BetResult, error)
}

// Guard bloqueia gatilhos repetidos para a mesma partida entre invocações
type Guard interface {
	Acquire(ctx context.Context, matchKey string) (bool, error)
	Release(ctx context.Context, matchKey string) error
}

type Publisher interface {
	PublishBetOutcome(ctx context.Context, e events.BetOutcome) error
}

var DefaultIgnoreLeagueWords = []string{"ITF", "Doubles"}

// DefaultExcludedMarkers marca mercados derivados (games, sets) que não são o vencedor da partida
var DefaultExcludedMarkers = []string{"(Games)", "of Set", "+1.5 Sets", "(Sets)"}

// Config reúne as dependências e a política de um Client.
// Campos opcionais nil desligam o recurso correspondente.
type Config struct {
	Notifier  notifier.Notifier
	Logger    *zap.Logger
	Metrics   *metrics.Autobet
	Guard     Guard
	Publisher Publisher
	RequestID string

	Now              func() time.Time
	OpenBetsLookback time.Duration

	IgnoreLeagueWords []string
	ExcludedMarkers   []string

	// CheckDuplicates confere as apostas abertas antes de apostar
	CheckDuplicates bool

	// AutoBetStake identifica apostas automáticas no relatório de ROI (heurística pelo valor do stake)
	AutoBetStake float64
}

func (c Config) withDefaults() Config {
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.OpenBetsLookback <= 0 {
		c.OpenBetsLookback = 7 * 24 * time.Hour
	}
	if c.IgnoreLeagueWords == nil {
		c.IgnoreLeagueWords = DefaultIgnoreLeagueWords
	}
	if c.ExcludedMarkers == nil {
		c.ExcludedMarkers = DefaultExcludedMarkers
	}
	if c.AutoBetStake == 0 {
		c.AutoBetStake = 500
	}
	c.Logger = logger.OrNop(c.Logger)
	return c
}

// Client aposta em moneyline de tênis sobre um snapshot de fixtures e apostas abertas.
// O snapshot é carregado uma vez no New e nunca atualizado; a linha é sempre buscada ao vivo.
type Client struct {
	api SportsbookAPI
	cfg Config
	log *zap.Logger

	fixtures pinnacle.Fixtures
	openBets []pinnacle.StraightBet
	history  []pinnacle.StraightBet
}

// New carrega fixtures, apostas abertas e histórico recente.
// Falhas nessas leituras são notificadas e o cliente segue com estado vazio.
func New(ctx context.Context, api SportsbookAPI, cfg Config) *Client {
	cfg = cfg.withDefaults()
	c := &Client{api: api, cfg: cfg, log: cfg.Logger}

	now := cfg.Now()
	tomorrow := now.AddDate(0, 0, 1)

	start := time.Now()
	fx, err := api.GetFixtures(ctx, pinnacle.SportTennis)
	cfg.Metrics.ObserveRequest("get_fixtures", start)
	if err != nil {
		c.snapshotFailed(ctx, "fixtures", err)
	} else {
		c.fixtures = fx
	}

	c.openBets = c.loadBets(ctx, "open_bets", pinnacle.BetsQuery{
		BetList:     pinnacle.BetListRunning,
		BetStatuses: []string{pinnacle.BetStatusAccepted},
		From:        now.Add(-cfg.OpenBetsLookback),
		To:          tomorrow,
	})
	c.history = c.loadBets(ctx, "history", pinnacle.BetsQuery{
		BetList:     pinnacle.BetListRunning,
		BetStatuses: []string{pinnacle.BetStatusAccepted},
		From:        now.AddDate(0, 0, -1),
		To:          tomorrow,
	})

	c.log.Debug("snapshot loaded",
		zap.Int("leagues", len(c.fixtures.Leagues)),
		zap.Int("open_bets", len(c.openBets)),
		zap.Int("history", len(c.history)),
	)
	return c
}

func (c *Client) loadBets(ctx context.Context, name string, q pinnacle.BetsQuery) []pinnacle.StraightBet {
	bets, err := c.getBets(ctx, q)
	if err != nil {
		c.snapshotFailed(ctx, name, err)
		return nil
	}
	return bets
}

func (c *Client) getBets(ctx context.Context, q pinnacle.BetsQuery) ([]pinnacle.StraightBet, error) {
	start := time.Now()
	defer c.cfg.Metrics.ObserveRequest("get_bets", start)
	return c.api.GetBets(ctx, q)
}

func (c *Client) snapshotFailed(ctx context.Context, name string, err error) {
	c.log.Warn("snapshot load failed", zap.String("snapshot", name), zap.Error(err))
	c.cfg.Metrics.SnapshotError(name)
	c.notify(ctx, err.Error())
}

func (c *Client) Fixtures() pinnacle.Fixtures { return c.fixtures }

func (c *Client) OpenBets() []pinnacle.StraightBet { return c.openBets }

func (c *Client) History() []pinnacle.StraightBet { return c.history }

// SearchEvent devolve a primeira partida cujo mandante e visitante casam com os nomes.
// Ligas com palavras ignoradas e mercados derivados ficam de fora.
func (c *Client) SearchEvent(home, away string) (leagueID, eventID int64, ok bool) {
	for _, league := range c.fixtures.Leagues {
		if containsAny(league.Name, c.cfg.IgnoreLeagueWords) {
			continue
		}
		for _, ev := range league.Events {
			if containsAny(ev.Home+ev.Away, c.cfg.ExcludedMarkers) {
				continue
			}
			if IsSameName(home, ev.Home) && IsSameName(away, ev.Away) {
				return league.ID, ev.ID, true
			}
		}
	}
	return 0, 0, false
}

// CheckDup indica se já existe aposta aberta para a partida
func (c *Client) CheckDup(home, away string) bool {
	for _, b := range c.openBets {
		if IsSameName(home, b.Team1) && IsSameName(away, b.Team2) {
			return true
		}
	}
	return false
}

func (c *Client) GetLine(ctx context.Context, leagueID, eventID int64, team string) (pinnacle.Line, error) {
	start := time.Now()
	defer c.cfg.Metrics.ObserveRequest("get_line", start)

	return c.api.GetLine(ctx, pinnacle.LineQuery{
		SportID:      pinnacle.SportTennis,
		LeagueID:     leagueID,
		EventID:      eventID,
		PeriodNumber: pinnacle.PeriodFullMatch,
		BetType:      pinnacle.BetTypeMoneyline,
		Team:         team,
		OddsFormat:   pinnacle.OddsDecimal,
	})
}

func (c *Client) PlaceBet(ctx context.Context, lineID, eventID int64, team string, stake float64) (pinnacle.BetResult, error) {
	start := time.Now()
	defer c.cfg.Metrics.ObserveRequest("place_bet", start)

	return c.api.PlaceBet(ctx, pinnacle.PlaceBetRequest{
		OddsFormat:       pinnacle.OddsDecimal,
		UniqueRequestID:  uuid.NewString(),
		AcceptBetterLine: true,
		Stake:            stake,
		WinRiskStake:     pinnacle.WinRiskRisk,
		LineID:           lineID,
		FillType:         pinnacle.FillTypeNormal,
		SportID:          pinnacle.SportTennis,
		EventID:          eventID,
		PeriodNumber:     pinnacle.PeriodFullMatch,
		BetType:          pinnacle.BetTypeMoneyline,
		Team:             team,
	})
}

// Execute procura a partida, busca a linha atual e aposta.
// Nunca devolve erro por fora: toda falha vira um Outcome e é notificada.
func (c *Client) Execute(ctx context.Context, home, away, team string, stake float64) Outcome {
	out := c.execute(ctx, home, away, team, stake)
	c.report(ctx, home, away, team, stake, out)
	return out
}

func (c *Client) execute(ctx context.Context, home, away, team string, stake float64) (out Outcome) {
	if c.cfg.CheckDuplicates && c.CheckDup(home, away) {
		out.domainError(CodeDuplicate, "Item is duplicated")
		return out
	}

	if c.cfg.Guard != nil {
		key := MatchKey(home, away)
		acquired, err := c.cfg.Guard.Acquire(ctx, key)
		switch {
		case err != nil:
			// redis fora do ar não impede a aposta
			c.log.Warn("guard acquire failed", zap.String("match", key), zap.Error(err))
		case !acquired:
			out.domainError(CodeDuplicate, fmt.Sprintf("Item is duplicated: %s vs %s", home, away))
			return out
		default:
			// o marcador só fica quando a aposta foi de fato aceita
			defer func() {
				if out.Accepted() {
					return
				}
				if err := c.cfg.Guard.Release(context.WithoutCancel(ctx), key); err != nil {
					c.log.Warn("guard release failed", zap.String("match", key), zap.Error(err))
				}
			}()
		}
	}

	leagueID, eventID, found := c.SearchEvent(home, away)
	if !found {
		out.domainError(CodeLeagueNotFound, fmt.Sprintf("League Not Found: %s vs %s", home, away))
		return out
	}
	out.LeagueID, out.EventID = leagueID, eventID

	line, err := c.GetLine(ctx, leagueID, eventID, team)
	if err != nil {
		out.upstreamError(fmt.Errorf("get line: %w", err))
		return out
	}
	out.LineID = line.LineID

	bet, err := c.PlaceBet(ctx, line.LineID, eventID, team, stake)
	if err != nil {
		out.upstreamError(fmt.Errorf("place bet: %w", err))
		return out
	}
	out.Bet = bet

	// só saldo insuficiente tem tratamento próprio; outros errorCode seguem como resposta da casa
	if bet.ErrorCode == pinnacle.ErrInsufficientFunds {
		out.domainError(CodeInsufficientFunds, pinnacle.ErrInsufficientFunds)
		return out
	}

	out.Kind = KindPlaced
	return out
}

// report notifica, conta e publica o resultado de Execute
func (c *Client) report(ctx context.Context, home, away, team string, stake float64, out Outcome) {
	fields := []zap.Field{
		zap.String("home", home),
		zap.String("away", away),
		zap.String("team", team),
		zap.Float64("stake", stake),
		zap.String("kind", string(out.Kind)),
		zap.String("code", out.Code),
	}

	if out.Placed() {
		c.log.Info("bet placed", append(fields, zap.String("bet_status", out.Bet.Status))...)
		c.notify(ctx, out.Bet.String())
	} else {
		c.log.Warn("bet not placed", append(fields, zap.Error(out.Err))...)
		c.notify(ctx, fmt.Sprintf("%s vs %s: %s", home, away, out.Message))
		detail := string(out.Kind)
		if out.Code != "" {
			detail += " " + out.Code
		}
		c.notify(ctx, fmt.Sprintf("%s: %+v", detail, out.Err))
	}

	c.cfg.Metrics.Outcome(string(out.Kind), out.Code)

	if c.cfg.Publisher == nil {
		return
	}
	err := c.cfg.Publisher.PublishBetOutcome(ctx, events.BetOutcome{
		RequestID: c.cfg.RequestID,
		Home:      home,
		Away:      away,
		Team:      team,
		Stake:     stake,
		Kind:      string(out.Kind),
		Code:      out.Code,
		Message:   out.Message,
		LeagueID:  out.LeagueID,
		EventID:   out.EventID,
		LineID:    out.LineID,
		BetStatus: out.Bet.Status,
	})
	if err != nil {
		c.log.Warn("publish bet outcome failed", zap.Error(err))
	}
}

func (c *Client) notify(ctx context.Context, text string) {
	if c.cfg.Notifier == nil {
		return
	}
	if err := c.cfg.Notifier.Notify(ctx, text); err != nil {
		c.log.Warn("notify failed", zap.Error(err))
	}
}
