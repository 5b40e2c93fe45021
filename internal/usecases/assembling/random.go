package assembling

import (
	"math/rand"
	"time"
)

//go:generate mockgen -source=random.go -destination=mocks/random_mock.go -package=mocks

// Random é a fonte de aleatoriedade das escolhas cosméticas (fundos e logos).
// Injetável para que os testes sejam determinísticos; a escolha de asset é
// cosmética, não semântica, então em produção não há seed reproduzível
type Random interface {
	Intn(n int) int
}

// NewRandom cria a fonte de produção, semeada pelo relógio
func NewRandom() Random {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
