// Package identity normaliza los identificadores de cuenta (email) para que la unicidad
// no distinga mayúsculas ni variantes Unicode de caja.
package identity

import (
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/coco-api/internal/domain"
)

// NormalizeEmail recorta espacios y aplica case folding Unicode.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// ValidEmail normaliza y valida el formato de una dirección simple (sin nombre visible).
func ValidEmail(email string) (string, error) {
	norm := NormalizeEmail(email)
	if norm == "" {
		return "", fmt.Errorf("%w: email requerido", domain.ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(norm)
	if err != nil || addr.Address != norm {
		return "", fmt.Errorf("%w: email %q", domain.ErrInvalidInput, email)
	}
	return norm, nil
}
