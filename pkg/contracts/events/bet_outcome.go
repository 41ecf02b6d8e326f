package events

// Evento publicado no tópico "bet_outcome" a cada Execute do bet-trigger
type BetOutcome struct {
	RequestID string  `json:"request_id"`
	Home      string  `json:"home"`
	Away      string  `json:"away"`
	Team      string  `json:"team"`
	Stake     float64 `json:"stake"`
	Kind      string  `json:"kind"`           // "placed" | "domain_error" | "upstream_error"
	Code      string  `json:"code,omitempty"` // ex: "LEAGUE_NOT_FOUND", "INSUFFICIENT_FUNDS"
	Message   string  `json:"message,omitempty"`
	LeagueID  int64   `json:"league_id,omitempty"`
	EventID   int64   `json:"event_id,omitempty"`
	LineID    int64   `json:"line_id,omitempty"`
	BetStatus string  `json:"bet_status,omitempty"` // status devolvido pela casa
	TsUnixMs  int64   `json:"ts_unix_ms"`
}
