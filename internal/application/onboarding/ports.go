package onboarding

import (
	"context"

	"github.com/jhoicas/coco-api/internal/domain/repository"
	"github.com/jhoicas/coco-api/pkg/credential"
)

// Stores repositorios que participan en los flujos de alta. Dentro de TxRunner.Run todos
// comparten la misma transacción.
type Stores struct {
	Requests   repository.RequestRepository
	Users      repository.UserRepository
	Companies  repository.CompanyRepository
	Employees  repository.EmployeeRepository
	Coworkings repository.CoworkingRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
// El error de fn se devuelve sin modificar.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx Stores) error) error
}

// CredentialIssuer emite una credencial inicial y su hash.
type CredentialIssuer interface {
	Issue() (plain, hash string, err error)
}

// CredentialPolicy parámetros de las credenciales iniciales, fijados al arrancar.
type CredentialPolicy struct {
	Length     int
	BcryptCost int
}

// Issuer construye el emisor bcrypt de la política.
func (p CredentialPolicy) Issuer() *credential.Issuer {
	return credential.NewIssuer(p.Length, credential.NewBcryptHasher(p.BcryptCost))
}
