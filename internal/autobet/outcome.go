package autobet

import (
	"github.com/radieske/tennis-autobet/internal/pinnacle"
)

type Kind string

const (
	KindPlaced        Kind = "placed"
	KindDomainError   Kind = "domain_error"
	KindUpstreamError Kind = "upstream_error"
)

// Códigos de erro de domínio
const (
	CodeLeagueNotFound    = "LEAGUE_NOT_FOUND"
	CodeInsufficientFunds = pinnacle.ErrInsufficientFunds
	CodeDuplicate         = "DUPLICATE"
)

// DomainError é uma falha lógica levantada pelo próprio fluxo de aposta
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Outcome é o resultado de Execute: aposta feita, erro de domínio ou erro da casa.
// Bet só é preenchido quando a casa respondeu ao pedido de aposta.
type Outcome struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
	Bet     pinnacle.BetResult

	LeagueID int64
	EventID  int64
	LineID   int64
}

func (o Outcome) Placed() bool { return o.Kind == KindPlaced }

// Accepted indica que a casa aceitou a aposta: Placed e sem errorCode na resposta
func (o Outcome) Accepted() bool { return o.Placed() && o.Bet.ErrorCode == "" }

func (o *Outcome) domainError(code, msg string) {
	o.Kind = KindDomainError
	o.Code = code
	o.Message = msg
	o.Err = &DomainError{Code: code, Message: msg}
}

func (o *Outcome) upstreamError(err error) {
	o.Kind = KindUpstreamError
	o.Message = err.Error()
	o.Err = err
}
