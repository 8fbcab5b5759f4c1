package credential_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/coco-api/pkg/credential"
)

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error)  { return "", errors.New("sin entropía") }
func (failingHasher) Compare(string, string) error { return errors.New("no") }

func TestGenerate_LongitudYUnicidad(t *testing.T) {
	a, err := credential.Generate(16)
	require.NoError(t, err)
	b, err := credential.Generate(16)
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b, "dos credenciales consecutivas no deben coincidir")
	assert.False(t, strings.ContainsAny(a, "0O1lI"))
}

func TestGenerate_LongitudInvalida(t *testing.T) {
	_, err := credential.Generate(4)
	assert.Error(t, err)
	_, err = credential.Generate(100)
	assert.Error(t, err)
}

func TestIssuer_HashVerificable(t *testing.T) {
	h := credential.NewBcryptHasher(bcrypt.MinCost)
	plain, hash, err := credential.NewIssuer(12, h).Issue()
	require.NoError(t, err)

	assert.Len(t, plain, 12)
	assert.NotEqual(t, plain, hash)
	assert.NoError(t, h.Compare(hash, plain))
	assert.Error(t, h.Compare(hash, plain+"x"))
}

func TestIssuer_FalloDeHash(t *testing.T) {
	_, _, err := credential.NewIssuer(0, failingHasher{}).Issue()
	assert.Error(t, err)
}
