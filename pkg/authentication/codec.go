// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeUser  = "user"
	tokenTypeAgent = "agent"
)

// CompanyContext is the company half of a user session.
type CompanyContext struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Role string `json:"role"`
}

// ProjectContext is the project half of a user session.
type ProjectContext struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Role string `json:"role"`
}

// UserSession is the decoded payload of a user session token. Company
// and Project are nil until the user selects a context.
type UserSession struct {
	UserID    int64
	Email     string
	Company   *CompanyContext
	Project   *ProjectContext
	ExpiresAt time.Time
}

// AgentIdentity is the decoded payload of a verified agent token.
type AgentIdentity struct {
	AgentID   string
	ProjectID int64
	ExpiresAt time.Time
}

type userClaims struct {
	Type    string          `json:"typ"`
	Email   string          `json:"email"`
	Company *CompanyContext `json:"company,omitempty"`
	Project *ProjectContext `json:"project,omitempty"`
	jwt.RegisteredClaims
}

type agentClaims struct {
	Type      string `json:"typ"`
	ProjectID int64  `json:"project_id"`
	jwt.RegisteredClaims
}

var _ TokenCodecInterface = (*TokenCodec)(nil)

// TokenCodec signs and parses the two token flavours. User tokens are
// signed with the platform secret; agent tokens are signed with the
// per-agent secret, so verification needs the agent row first.
type TokenCodec struct {
	secret   []byte
	agentTTL time.Duration
}

func NewTokenCodec(secret []byte, agentTTL time.Duration) *TokenCodec {
	return &TokenCodec{
		secret:   secret,
		agentTTL: agentTTL,
	}
}

func (c *TokenCodec) IssueUserToken(session *UserSession) (string, error) {
	now := time.Now()
	claims := userClaims{
		Type:    tokenTypeUser,
		Email:   session.Email,
		Company: session.Company,
		Project: session.Project,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(session.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *TokenCodec) ParseUserToken(raw string) (*UserSession, error) {
	var claims userClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, mapTokenError(err)
	}
	if !token.Valid {
		return nil, ErrMalformedToken
	}

	if claims.Type != tokenTypeUser {
		return nil, ErrWrongTokenType
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrMalformedToken
	}

	return &UserSession{
		UserID:    userID,
		Email:     claims.Email,
		Company:   claims.Company,
		Project:   claims.Project,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (c *TokenCodec) IssueAgentToken(agentID string, projectID int64, secret []byte) (string, error) {
	now := time.Now()
	claims := agentClaims{
		Type:      tokenTypeAgent,
		ProjectID: projectID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   agentID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.agentTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// DecodeAgentSubject extracts the agent identifier without verifying
// the signature. The caller must load the agent's secret and call
// VerifyAgentToken before trusting anything about the request.
func (c *TokenCodec) DecodeAgentSubject(raw string) (string, error) {
	var claims agentClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return "", ErrMalformedToken
	}

	if claims.Type != tokenTypeAgent {
		return "", ErrWrongTokenType
	}
	if claims.Subject == "" {
		return "", ErrMalformedToken
	}

	return claims.Subject, nil
}

func (c *TokenCodec) VerifyAgentToken(raw string, secret []byte) (*AgentIdentity, error) {
	var claims agentClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, mapTokenError(err)
	}
	if !token.Valid {
		return nil, ErrMalformedToken
	}

	if claims.Type != tokenTypeAgent {
		return nil, ErrWrongTokenType
	}

	return &AgentIdentity{
		AgentID:   claims.Subject,
		ProjectID: claims.ProjectID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	default:
		return ErrMalformedToken
	}
}
