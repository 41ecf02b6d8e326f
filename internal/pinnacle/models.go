package pinnacle

import (
	"encoding/json"
	"time"
)

// Constantes da API Pinnacle usadas pelo fluxo de apostas de tênis
const (
	SportTennis     int64 = 33
	PeriodFullMatch       = 0

	BetTypeMoneyline = "MONEYLINE"
	FillTypeNormal   = "NORMAL"
	WinRiskRisk      = "RISK"
	OddsDecimal      = "DECIMAL"

	BetListRunning = "RUNNING"
	BetListSettled = "SETTLED"

	BetStatusAccepted = "ACCEPTED"
	BetStatusWon      = "WON"
	BetStatusLose     = "LOSE"

	Team1 = "Team1"
	Team2 = "Team2"

	ErrInsufficientFunds = "INSUFFICIENT_FUNDS"
)

// Fixtures é a resposta de /v1/fixtures
type Fixtures struct {
	SportID int64    `json:"sportId"`
	Last    int64    `json:"last"`
	Leagues []League `json:"league"`
}

type League struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Events []Event `json:"events"`
}

type Event struct {
	ID         int64  `json:"id"`
	Starts     string `json:"starts"`
	Home       string `json:"home"`
	Away       string `json:"away"`
	RotNum     string `json:"rotNum,omitempty"`
	LiveStatus int    `json:"liveStatus"`
	Status     string `json:"status"`
}

// StraightBet representa uma aposta simples retornada por /v3/bets
type StraightBet struct {
	BetID        int64    `json:"betId"`
	WagerNumber  int      `json:"wagerNumber"`
	PlacedAt     string   `json:"placedAt"`
	BetStatus    string   `json:"betStatus"`
	BetType      string   `json:"betType"`
	Win          float64  `json:"win"`
	Risk         float64  `json:"risk"`
	WinLoss      *float64 `json:"winLoss,omitempty"`
	Price        float64  `json:"price"`
	SportID      int64    `json:"sportId"`
	LeagueID     int64    `json:"leagueId"`
	EventID      int64    `json:"eventId"`
	TeamName     string   `json:"teamName"`
	Team1        string   `json:"team1"`
	Team2        string   `json:"team2"`
	PeriodNumber int      `json:"periodNumber"`
	EventStart   string   `json:"eventStartTime,omitempty"`
	SettledAt    string   `json:"settledAt,omitempty"`
	UpdateSeqNo  int64    `json:"updateSequence,omitempty"`
	IsLive       string   `json:"isLive,omitempty"`
	OddsFormat   string   `json:"oddsFormat,omitempty"`
}

// Opponent devolve o adversário do lado apostado
func (b StraightBet) Opponent() string {
	if b.TeamName == b.Team1 {
		return b.Team2
	}
	return b.Team1
}

type betsResponse struct {
	MoreAvailable bool          `json:"moreAvailable"`
	PageSize      int           `json:"pageSize"`
	FromRecord    int           `json:"fromRecord"`
	ToRecord      int           `json:"toRecord"`
	StraightBets  []StraightBet `json:"straightBets"`
}

// BetsQuery filtra a listagem de apostas
type BetsQuery struct {
	BetList     string
	BetStatuses []string
	From        time.Time
	To          time.Time
}

// LineQuery identifica um mercado para /v1/line
type LineQuery struct {
	SportID      int64
	LeagueID     int64
	EventID      int64
	PeriodNumber int
	BetType      string
	Team         string
	OddsFormat   string
}

// Line é a cotação atual de um mercado
type Line struct {
	Status           string  `json:"status"`
	Price            float64 `json:"price"`
	LineID           int64   `json:"lineId"`
	AltLineID        *int64  `json:"altLineId,omitempty"`
	MinRiskStake     float64 `json:"minRiskStake"`
	MaxRiskStake     float64 `json:"maxRiskStake"`
	MinWinStake      float64 `json:"minWinStake"`
	MaxWinStake      float64 `json:"maxWinStake"`
	EffectiveAsOf    string  `json:"effectiveAsOf,omitempty"`
	PeriodTeam1Score *int    `json:"periodTeam1Score,omitempty"`
	PeriodTeam2Score *int    `json:"periodTeam2Score,omitempty"`
}

// PlaceBetRequest é o payload de /v2/bets/place
type PlaceBetRequest struct {
	OddsFormat       string  `json:"oddsFormat"`
	UniqueRequestID  string  `json:"uniqueRequestId"`
	AcceptBetterLine bool    `json:"acceptBetterLine"`
	Stake            float64 `json:"stake"`
	WinRiskStake     string  `json:"winRiskStake"`
	LineID           int64   `json:"lineId"`
	AltLineID        *int64  `json:"altLineId,omitempty"`
	FillType         string  `json:"fillType"`
	SportID          int64   `json:"sportId"`
	EventID          int64   `json:"eventId"`
	PeriodNumber     int     `json:"periodNumber"`
	BetType          string  `json:"betType"`
	Team             string  `json:"team"`
}

// BetResult é a resposta da casa ao pedido de aposta.
// Raw guarda o corpo exatamente como veio da API.
type BetResult struct {
	Status          string          `json:"status"`
	ErrorCode       string          `json:"errorCode,omitempty"`
	UniqueRequestID string          `json:"uniqueRequestId"`
	Raw             json.RawMessage `json:"-"`
}

func (r BetResult) String() string { return string(r.Raw) }
