package dto

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// BetRequest é o corpo do gatilho de aposta; todas as chaves são obrigatórias
type BetRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Home     string  `json:"home"`
	Away     string  `json:"away"`
	Team     string  `json:"team"` // "Team1" | "Team2"
	Stake    float64 `json:"stake"`
}

// ordem em que as chaves ausentes são reportadas
var requiredKeys = []string{"username", "password", "home", "away", "team", "stake"}

// ValidationError carrega a mensagem devolvida ao chamador com status 400
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ParseBetRequest valida o corpo JSON. Stake aceita número ou string numérica.
func ParseBetRequest(body []byte) (BetRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return BetRequest{}, &ValidationError{Message: "Invalid request body"}
	}
	for _, k := range requiredKeys {
		if _, ok := raw[k]; !ok {
			return BetRequest{}, &ValidationError{Message: "Missing required parameter: " + k}
		}
	}

	var req BetRequest
	fields := map[string]*string{
		"username": &req.Username,
		"password": &req.Password,
		"home":     &req.Home,
		"away":     &req.Away,
		"team":     &req.Team,
	}
	for _, k := range requiredKeys[:5] {
		if err := json.Unmarshal(raw[k], fields[k]); err != nil {
			return BetRequest{}, invalidParam(k)
		}
	}

	stake, ok := parseStake(raw["stake"])
	if !ok {
		return BetRequest{}, invalidParam("stake")
	}
	req.Stake = stake
	return req, nil
}

func invalidParam(key string) error {
	return &ValidationError{Message: "Invalid parameter: " + key}
}

func parseStake(v json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return f, validStake(f)
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, validStake(f)
}

func validStake(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}
