package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para correlacionar logs de uma
// execução e para nomear arquivos temporários durante a gravação atômica.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
