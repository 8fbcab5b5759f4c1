// Package credential genera credenciales iniciales aleatorias por cuenta y las hashea con bcrypt.
package credential

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// alphabet excluye caracteres ambiguos (0/O, 1/l/I) para facilitar el dictado.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// Límites de longitud de la credencial generada. bcrypt ignora más de 72 bytes.
const (
	MinLength     = 10
	MaxLength     = 64
	DefaultLength = 16
)

// Hasher deriva y verifica hashes de contraseñas.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// BcryptHasher implementación de Hasher sobre golang.org/x/crypto/bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher construye el hasher. Un costo fuera de rango usa bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash devuelve el hash bcrypt de plain.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// Compare devuelve nil si plain corresponde a hash.
func (h *BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// Generate devuelve una credencial aleatoria de length caracteres usando crypto/rand.
func Generate(length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("credential: longitud %d fuera de [%d, %d]", length, MinLength, MaxLength)
	}
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("credential: leer aleatorio: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// Issuer emite credenciales iniciales: genera el secreto en claro y su hash.
type Issuer struct {
	length int
	hasher Hasher
}

// NewIssuer construye el emisor. length <= 0 usa DefaultLength.
func NewIssuer(length int, hasher Hasher) *Issuer {
	if length <= 0 {
		length = DefaultLength
	}
	return &Issuer{length: length, hasher: hasher}
}

// Issue genera una credencial nueva. El texto plano solo debe viajar por el canal de notificación.
func (i *Issuer) Issue() (plain, hash string, err error) {
	plain, err = Generate(i.length)
	if err != nil {
		return "", "", err
	}
	hash, err = i.hasher.Hash(plain)
	if err != nil {
		return "", "", err
	}
	return plain, hash, nil
}
