package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateDOMID gera um id válido para elementos HTML (sempre começa com letra)
func GenerateDOMID(prefix string) string {
	id, err := gonanoid.Generate(characters, 10)
	if err != nil {
		return prefix
	}
	return prefix + "_" + id
}
