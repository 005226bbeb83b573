package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// El cliente no conoce el secreto de firma del backend; la firma la valida
// el servidor. Aquí solo se inspeccionan claims para fallar rápido antes de
// gastar una llamada de red con un token ya vencido.

// Expiration extrae el vencimiento del token sin verificar la firma.
// Devuelve el instante cero si el token no trae claim exp.
func Expiration(tokenString string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return time.Time{}, fmt.Errorf("jwt: token ilegible: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// Expired indica si el token ya venció en el instante dado. Un token sin
// claim exp no expira localmente.
func Expired(tokenString string, now time.Time) (bool, error) {
	exp, err := Expiration(tokenString)
	if err != nil {
		return false, err
	}
	if exp.IsZero() {
		return false, nil
	}
	return now.After(exp), nil
}
