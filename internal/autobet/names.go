package autobet

import (
	"sort"
	"strings"
)

// nameTokens normaliza um nome: minúsculas, hífen vira espaço, tokens ordenados
func nameTokens(name string) []string {
	parts := strings.Fields(strings.ReplaceAll(strings.ToLower(name), "-", " "))
	sort.Strings(parts)
	return parts
}

// IsSameName compara dois nomes ignorando ordem das palavras, caixa e hífens.
// "Daniel Taro" casa com "taro-daniel". Nome sem tokens nunca casa.
func IsSameName(a, b string) bool {
	ta, tb := nameTokens(a), nameTokens(b)
	if len(ta) == 0 || len(tb) == 0 || len(ta) != len(tb) {
		return false
	}
	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}
	return true
}

// MatchKey é a forma canônica de uma partida, estável para nomes que casam via IsSameName
func MatchKey(home, away string) string {
	return strings.Join(nameTokens(home), " ") + "|" + strings.Join(nameTokens(away), " ")
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
