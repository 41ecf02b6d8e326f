package guard

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Guard marca partidas que já receberam um gatilho de aposta recente.
// Cada invocação cria um cliente novo, então o marcador precisa viver fora do processo.
type Guard struct {
	Rdb *redis.Client
	TTL time.Duration
}

func New(r *redis.Client, ttl time.Duration) *Guard { return &Guard{Rdb: r, TTL: ttl} }

// Espera chave "autobet:placed:{matchKey}"
func key(matchKey string) string { return "autobet:placed:" + matchKey }

// Acquire grava o marcador se ainda não existir; false significa gatilho repetido
func (g *Guard) Acquire(ctx context.Context, matchKey string) (bool, error) {
	return g.Rdb.SetNX(ctx, key(matchKey), time.Now().UTC().Format(time.RFC3339), g.TTL).Result()
}

// Release remove o marcador para permitir nova tentativa após falha
func (g *Guard) Release(ctx context.Context, matchKey string) error {
	return g.Rdb.Del(ctx, key(matchKey)).Err()
}
