package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims хранит данные токена, которые guard кладёт в контекст запроса
type Claims struct {
	Subject string
	Issuer  string
}

// Verifier проверяет HS256-токены, выпущенные внешним сервисом авторизации
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier создаёт Verifier. Пустой issuer отключает проверку claim'а iss.
func NewVerifier(secret, issuer string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}
}

// VerifyHeader разбирает значение заголовка Authorization вида "Bearer <token>"
func (v *Verifier) VerifyHeader(header string) (*Claims, error) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return nil, ErrMissingToken
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return nil, ErrMissingToken
	}
	return v.Verify(token)
}

// Verify проверяет подпись, срок действия и обязательный sub
func (v *Verifier) Verify(token string) (*Claims, error) {
	var rc jwt.RegisteredClaims
	_, err := v.parser.ParseWithClaims(token, &rc, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if rc.Subject == "" {
		return nil, fmt.Errorf("%w: sub claim is empty", ErrInvalidToken)
	}
	return &Claims{Subject: rc.Subject, Issuer: rc.Issuer}, nil
}

type ctxKey struct{}

// WithClaims возвращает контекст с данными токена
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// ClaimsFromContext достаёт данные токена, положенные guard'ом
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok
}
