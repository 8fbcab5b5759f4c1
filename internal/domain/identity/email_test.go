package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/identity"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@co.com", identity.NormalizeEmail("  A@Co.COM "))
	assert.Equal(t, identity.NormalizeEmail("STRASSE@x.de"), identity.NormalizeEmail("strasse@X.DE"))
}

func TestValidEmail(t *testing.T) {
	got, err := identity.ValidEmail("Admin@Acme.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@acme.com", got)

	for _, in := range []string{"", "   ", "sin-arroba", "Nombre <a@b.com>"} {
		_, err := identity.ValidEmail(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in)
	}
}
