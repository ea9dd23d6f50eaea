package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/medicard/backend/internal/config"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	GenPair(ctx context.Context, uid int64, email string) (string, string, error)
	ParseAccess(ctx context.Context, tokenStr string) (Claims, error)
	ParseRefresh(ctx context.Context, tokenStr string) (Claims, error)
}

// Core signs and verifies the two token kinds. Access tokens embed the
// user id and email; refresh tokens embed the id only. The secrets are
// distinct so one kind never verifies as the other.
type Core struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
}

type Claims struct {
	UID   int64  `json:"uid"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func New(conf config.Config) *Core {
	return &Core{
		accessSecret:  []byte(conf.Auth.AccessSecret),
		refreshSecret: []byte(conf.Auth.RefreshSecret),
		issuer:        conf.Auth.Issuer,
	}
}

func (c *Core) GenPair(ctx context.Context, uid int64, email string) (string, string, error) {
	const op = "auth.GenPair.jwt"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	access, err := c.newToken(
		Claims{UID: uid, Email: email},
		config.AccessTokenDuration,
		c.accessSecret,
	)
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.Int64("uid", uid),
			zap.Error(err),
		)

		return "", "", err
	}

	refresh, err := c.newToken(
		Claims{UID: uid},
		config.RefreshTokenDuration,
		c.refreshSecret,
	)
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.Int64("uid", uid),
			zap.Error(err),
		)

		return "", "", err
	}

	return access, refresh, nil
}

func (c *Core) newToken(claims Claims, d time.Duration, secret []byte) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(d)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    c.issuer,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) ParseAccess(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseAccess.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.parseClaims(op, tokenStr, c.accessSecret)
}

func (c *Core) ParseRefresh(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseRefresh.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.parseClaims(op, tokenStr, c.refreshSecret)
}

func (c *Core) parseClaims(op, tokenStr string, secret []byte) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return secret, nil
		},
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid {
		zap.L().Debug(
			"Token is invalid",
			zap.String("op", op),
		)

		return claims, ErrInvalidToken
	}

	return claims, nil
}
