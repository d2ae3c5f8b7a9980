// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session tells the profile editor which user it is editing.
//
// The id comes either from configuration ([NewStaticProvider]) or from the
// "sub" claim of a token issued by an upstream identity service
// ([NewTokenProvider]). The token signature is not checked here: the client
// only needs the subject, and the server does not authenticate requests.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-profile-editor/internal/config"
	"github.com/MKhiriev/go-profile-editor/internal/validators"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoIdentity        = errors.New("no user id or token configured")
	ErrParsingToken      = errors.New("error parsing session token")
	ErrNoSubject         = errors.New("session token has no subject")
	ErrInvalidIdentityID = errors.New("session user id is not a valid user id")
)

// Provider returns the id of the user whose profile is edited.
type Provider interface {
	UserID() (string, error)
}

// StaticProvider returns a fixed, pre-validated id.
type StaticProvider struct {
	userID string
}

func NewStaticProvider(userID string) (*StaticProvider, error) {
	id, err := normalize(userID)
	if err != nil {
		return nil, err
	}
	return &StaticProvider{userID: id}, nil
}

func (p *StaticProvider) UserID() (string, error) {
	return p.userID, nil
}

// TokenProvider extracts the id from the "sub" claim of a JWT.
type TokenProvider struct {
	token  string
	parser *jwt.Parser
}

func NewTokenProvider(token string) *TokenProvider {
	return &TokenProvider{
		token:  strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer ")),
		parser: jwt.NewParser(),
	}
}

func (p *TokenProvider) UserID() (string, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := p.parser.ParseUnverified(p.token, &claims); err != nil {
		return "", fmt.Errorf("%w: %w", ErrParsingToken, err)
	}

	if claims.Subject == "" {
		return "", ErrNoSubject
	}
	return normalize(claims.Subject)
}

// NewProvider picks the provider for cfg. A configured token wins over a
// static user id.
func NewProvider(cfg config.ClientSession) (Provider, error) {
	switch {
	case strings.TrimSpace(cfg.Token) != "":
		return NewTokenProvider(cfg.Token), nil
	case strings.TrimSpace(cfg.UserID) != "":
		p, err := NewStaticProvider(cfg.UserID)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, ErrNoIdentity
	}
}

func normalize(id string) (string, error) {
	id = strings.TrimSpace(id)
	if err := validators.ValidateUserID(id); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidIdentityID, err)
	}
	return validators.NormalizeUserID(id), nil
}
