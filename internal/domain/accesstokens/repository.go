package accesstokens

import (
	"context"
	"errors"
)

var (
	// ErrTokenNotFound: no existe token con ese código.
	ErrTokenNotFound = errors.New("token not found")
	// ErrAlreadyConsumed: Consume no encontró el token con used=false.
	ErrAlreadyConsumed = errors.New("token already consumed")
)

type Repository interface {
	Create(ctx context.Context, t Token) error
	GetByCode(ctx context.Context, code string) (Token, error)

	// Consume marca used=true de forma condicional (solo si used=false).
	// Es la única transición permitida sobre un token; dos llamadas
	// concurrentes con el mismo código deben dejar exactamente una ganadora.
	// Devuelve ErrAlreadyConsumed si el flag ya estaba en true.
	Consume(ctx context.Context, code string) error

	ListByOwner(ctx context.Context, ownerID string, limit int) ([]Token, error)
}
