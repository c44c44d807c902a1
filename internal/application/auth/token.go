package auth

import (
	"github.com/jhoicas/grinder-parts-api/internal/domain/entity"
	"github.com/jhoicas/grinder-parts-api/pkg/jwt"
)

// PlaceholderToken token opaco que emite la sesión simulada por defecto.
const PlaceholderToken = "mock-jwt-token"

// TokenIssuer emite el token opaco que acompaña a la sesión. El store nunca lo verifica.
type TokenIssuer interface {
	Issue(user *entity.User) (string, error)
}

// PlaceholderTokenIssuer devuelve siempre PlaceholderToken.
type PlaceholderTokenIssuer struct{}

// Issue implementa TokenIssuer.
func (PlaceholderTokenIssuer) Issue(*entity.User) (string, error) {
	return PlaceholderToken, nil
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// JWTTokenIssuer firma un JWT HS256 con la identidad fabricada (se usa si JWT_SECRET está definido).
type JWTTokenIssuer struct {
	cfg JWTConfig
}

// NewJWTTokenIssuer construye el emisor.
func NewJWTTokenIssuer(cfg JWTConfig) *JWTTokenIssuer {
	return &JWTTokenIssuer{cfg: cfg}
}

// Issue implementa TokenIssuer.
func (i *JWTTokenIssuer) Issue(user *entity.User) (string, error) {
	return jwt.Generate(i.cfg.Secret, user.ID, user.Email, user.Role, i.cfg.Issuer, i.cfg.ExpMinutes)
}
