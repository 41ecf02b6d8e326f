package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	ctopics "github.com/radieske/tennis-autobet/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução
// Inclui conexões opcionais, webhook de notificação e política de apostas
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string // ex: "bet-trigger", "bet-report"

	PinnacleBaseURL  string
	PinnacleUsername string // só para o bet-report; o bet-trigger recebe credenciais no corpo
	PinnaclePassword string

	SlackWebhookURL string // vazio = notificações desligadas

	RedisAddr string        // vazio = guard desligado
	GuardTTL  time.Duration // janela do marcador de gatilho repetido

	KafkaBrokers      string // "a:9092,b:9092"; vazio = publisher desligado
	TopicBetOutcome   string
	CheckDuplicates   bool    // confere apostas abertas antes de apostar
	AutoBetStake      float64 // stake usado como marcador de aposta automática no relatório
	OpenBetsLookback  time.Duration
	CORSAllowedOrigin []string

	// Portas do serviço atual
	HTTPPort    string // Porta pública (POST /bets)
	MetricsPort string // Porta exclusiva para /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults
func Load() Config {
	return Config{
		Env:         getEnv("ENV", "local"),
		ServiceName: getEnv("SERVICE_NAME", "bet-trigger"),

		PinnacleBaseURL:  getEnv("PINNACLE_BASE_URL", "https://api.pinnacle.com"),
		PinnacleUsername: getEnv("PINNACLE_USERNAME", ""),
		PinnaclePassword: getEnv("PINNACLE_PASSWORD", ""),

		SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),

		RedisAddr: getEnv("REDIS_ADDR", ""),
		GuardTTL:  getDuration("GUARD_TTL", 6*time.Hour),

		KafkaBrokers:      getEnv("KAFKA_BROKERS", ""),
		TopicBetOutcome:   getEnv("KAFKA_TOPIC_BET_OUTCOME", ctopics.BetOutcome),
		CheckDuplicates:   getBool("AUTOBET_CHECK_DUPLICATES", false),
		AutoBetStake:      getFloat("AUTOBET_STAKE", 500),
		OpenBetsLookback:  getDuration("OPEN_BETS_LOOKBACK", 7*24*time.Hour),
		CORSAllowedOrigin: splitList(getEnv("CORS_ORIGINS", "*")),

		HTTPPort:    getEnv("HTTP_PORT", "8085"),
		MetricsPort: getEnv("METRICS_PORT", "9100"),
	}
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	b, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return b
}

func getFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
