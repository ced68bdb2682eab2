package reference

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// Generator выдает уникальные референсы транзакций для платежного шлюза.
// 128 бит случайности, url-safe, без внешнего I/O.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) Generate() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}
