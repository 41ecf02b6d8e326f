package pinnacle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.pinnacle.com"

// Client fala com a API REST da Pinnacle usando Basic auth.
// As credenciais chegam por requisição, então cada Client pertence a uma conta.
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	username string
	password string
}

func New(base, username, password string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		BaseURL:  strings.TrimRight(base, "/"),
		HTTP:     &http.Client{Timeout: 10 * time.Second},
		username: username,
		password: password,
	}
}

// APIError representa uma resposta não-2xx da Pinnacle
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" && e.Message == "" {
		return fmt.Sprintf("pinnacle http %d", e.StatusCode)
	}
	return fmt.Sprintf("pinnacle http %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// GetFixtures lista os eventos de um esporte
func (c *Client) GetFixtures(ctx context.Context, sportID int64) (Fixtures, error) {
	q := url.Values{}
	q.Set("sportId", strconv.FormatInt(sportID, 10))

	var out Fixtures
	if err := c.getJSON(ctx, "/v1/fixtures", q, &out); err != nil {
		return Fixtures{}, fmt.Errorf("get fixtures: %w", err)
	}
	return out, nil
}

// GetBets lista apostas simples filtradas por lista, status e janela de datas
func (c *Client) GetBets(ctx context.Context, bq BetsQuery) ([]StraightBet, error) {
	q := url.Values{}
	q.Set("betlist", bq.BetList)
	if len(bq.BetStatuses) > 0 {
		q.Set("betStatuses", strings.Join(bq.BetStatuses, ","))
	}
	q.Set("fromDate", bq.From.UTC().Format(time.RFC3339))
	q.Set("toDate", bq.To.UTC().Format(time.RFC3339))

	var out betsResponse
	if err := c.getJSON(ctx, "/v3/bets", q, &out); err != nil {
		return nil, fmt.Errorf("get bets: %w", err)
	}
	return out.StraightBets, nil
}

// GetLine busca a cotação ao vivo de um mercado (sem cache)
func (c *Client) GetLine(ctx context.Context, lq LineQuery) (Line, error) {
	q := url.Values{}
	q.Set("sportId", strconv.FormatInt(lq.SportID, 10))
	q.Set("leagueId", strconv.FormatInt(lq.LeagueID, 10))
	q.Set("eventId", strconv.FormatInt(lq.EventID, 10))
	q.Set("periodNumber", strconv.Itoa(lq.PeriodNumber))
	q.Set("betType", lq.BetType)
	if lq.Team != "" {
		q.Set("team", lq.Team)
	}
	if lq.OddsFormat != "" {
		q.Set("oddsFormat", lq.OddsFormat)
	}

	var out Line
	if err := c.getJSON(ctx, "/v1/line", q, &out); err != nil {
		return Line{}, fmt.Errorf("get line: %w", err)
	}
	return out, nil
}

// PlaceBet envia a aposta e devolve a resposta crua junto com os campos de status
func (c *Client) PlaceBet(ctx context.Context, pb PlaceBetRequest) (BetResult, error) {
	body, err := json.Marshal(pb)
	if err != nil {
		return BetResult{}, fmt.Errorf("marshal place bet: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPost, "/v2/bets/place", nil, bytes.NewReader(body))
	if err != nil {
		return BetResult{}, fmt.Errorf("place bet: %w", err)
	}

	var out BetResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return BetResult{}, fmt.Errorf("decode place bet: %w", err)
	}
	out.Raw = raw
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, dst any) error {
	raw, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return err
	}
	// a Pinnacle responde 200 com corpo vazio quando não há dados
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body io.Reader) ([]byte, error) {
	u := c.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		_ = json.Unmarshal(raw, apiErr)
		return nil, apiErr
	}
	return raw, nil
}
