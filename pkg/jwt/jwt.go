package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Subject identidad del llamador que viaja en el token.
type Subject struct {
	UserID             string
	CompanyID          string // vacío si el usuario no es empleado de ninguna empresa
	Role               string // SUPERADMIN | ADMIN_COMPANY | EMPLOYEE | ADMIN_COWORKING
	MustChangePassword bool
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role va en el token para que el middleware RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID             string `json:"user_id"`
	CompanyID          string `json:"company_id,omitempty"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"pwd_reset,omitempty"`
}

// Generate genera un token JWT HS256 firmado para el sujeto.
func Generate(secret string, sub Subject, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:             sub.UserID,
		CompanyID:          sub.CompanyID,
		Role:               sub.Role,
		MustChangePassword: sub.MustChangePassword,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el sujeto.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Subject, error) {
	if secret == "" {
		return Subject{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Subject{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Subject{}, fmt.Errorf("claims inválidos")
	}
	return Subject{
		UserID:             claims.UserID,
		CompanyID:          claims.CompanyID,
		Role:               claims.Role,
		MustChangePassword: claims.MustChangePassword,
	}, nil
}
