package assembling

import "errors"

// Erros específicos para o contexto de montagem de decks
var (
	// ErrUnknownColorScheme indica um esquema de cores de deck inexistente
	ErrUnknownColorScheme = errors.New("unknown color scheme")
)
