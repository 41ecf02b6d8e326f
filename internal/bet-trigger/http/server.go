package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/radieske/tennis-autobet/internal/autobet"
	"github.com/radieske/tennis-autobet/internal/bet-trigger/dto"
	"github.com/radieske/tennis-autobet/internal/pinnacle"
)

const maxBodyBytes = 64 << 10

// Executor executa um gatilho de aposta já validado
type Executor interface {
	Execute(ctx context.Context, home, away, team string, stake float64) autobet.Outcome
}

// ClientFactory cria um cliente de apostas novo por invocação, com as credenciais do corpo
type ClientFactory func(ctx context.Context, username, password, requestID string) Executor

// PinnacleFactory monta o cliente real: API Pinnacle + snapshot carregado no autobet.New
func PinnacleFactory(baseURL string, base autobet.Config) ClientFactory {
	return func(ctx context.Context, username, password, requestID string) Executor {
		cfg := base
		cfg.RequestID = requestID
		return autobet.New(ctx, pinnacle.New(baseURL, username, password), cfg)
	}
}

type Server struct {
	log         *zap.Logger
	newClient   ClientFactory
	corsOrigins []string
}

func NewServer(log *zap.Logger, f ClientFactory, corsOrigins []string) *Server {
	return &Server{log: log, newClient: f, corsOrigins: corsOrigins}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/bets", s.placeBet)
	return r
}

func (s *Server) placeBet(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeResponse(w, message(http.StatusBadRequest, "Invalid request body"))
		return
	}
	writeResponse(w, s.Handle(r.Context(), body))
}

// Handle implementa o contrato de invocação: corpo JSON em texto, resposta com status e corpo.
// Falhas lógicas da aposta saem com 200; só erro da casa ou pânico viram 500.
func (s *Server) Handle(ctx context.Context, body []byte) (resp dto.Response) {
	req, err := dto.ParseBetRequest(body)
	if err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			return message(http.StatusBadRequest, verr.Message)
		}
		return message(http.StatusBadRequest, "Invalid request body")
	}

	reqID := middleware.GetReqID(ctx)
	log := s.log.With(
		zap.String("request_id", reqID),
		zap.String("username", req.Username),
		zap.String("home", req.Home),
		zap.String("away", req.Away),
		zap.String("team", req.Team),
		zap.Float64("stake", req.Stake),
	)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("bet trigger panicked", zap.Any("panic", rec))
			resp = message(http.StatusInternalServerError, fmt.Sprint(rec))
		}
	}()

	client := s.newClient(ctx, req.Username, req.Password, reqID)
	out := client.Execute(ctx, req.Home, req.Away, req.Team, req.Stake)
	log.Info("bet trigger handled", zap.String("kind", string(out.Kind)), zap.String("code", out.Code))

	switch out.Kind {
	case autobet.KindPlaced:
		return dto.Response{StatusCode: http.StatusOK, Body: out.Bet.String()}
	case autobet.KindDomainError:
		return jsonBody(http.StatusOK, dto.MessageResponse{Message: out.Message, Kind: string(out.Kind), Code: out.Code})
	default:
		return message(http.StatusInternalServerError, out.Message)
	}
}

func message(status int, msg string) dto.Response {
	return jsonBody(status, dto.MessageResponse{Message: msg})
}

func jsonBody(status int, body dto.MessageResponse) dto.Response {
	b, _ := json.Marshal(body)
	return dto.Response{StatusCode: status, Body: string(b)}
}

func writeResponse(w http.ResponseWriter, resp dto.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}
