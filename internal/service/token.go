package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/send-logistics/internal/config"
	"github.com/send-logistics/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenExpireHours = 24

// UserJWTClaims 用户 JWT 声明
type UserJWTClaims struct {
	UserID uint   `json:"userId"`
	Phone  string `json:"phone"`
	jwt.RegisteredClaims
}

// TokenService 签发与校验用户令牌
type TokenService struct {
	secret      []byte
	expireHours int
	now         func() time.Time
}

// NewTokenService 创建令牌服务
func NewTokenService(cfg config.JWTConfig) *TokenService {
	expireHours := cfg.ExpireHours
	if expireHours <= 0 {
		expireHours = defaultTokenExpireHours
	}
	return &TokenService{
		secret:      []byte(cfg.SecretKey),
		expireHours: expireHours,
		now:         time.Now,
	}
}

// Generate 生成用户 JWT Token
func (s *TokenService) Generate(user *models.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(time.Duration(s.expireHours) * time.Hour)
	claims := UserJWTClaims{
		UserID: user.ID,
		Phone:  user.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse 解析用户 JWT Token，过期返回 ErrTokenExpired，其余失败返回 ErrTokenInvalid
func (s *TokenService) Parse(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, newBizError(ErrTokenExpired, "", err)
		}
		return nil, newBizError(ErrTokenInvalid, "", err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, newBizError(ErrTokenInvalid, "", nil)
	}
	return claims, nil
}
