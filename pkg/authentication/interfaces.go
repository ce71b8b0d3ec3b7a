// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"time"
)

type TokenCodecInterface interface {
	IssueUserToken(session *UserSession) (string, error)
	ParseUserToken(raw string) (*UserSession, error)
	IssueAgentToken(agentID string, projectID int64, secret []byte) (string, error)
	DecodeAgentSubject(raw string) (string, error)
	VerifyAgentToken(raw string, secret []byte) (*AgentIdentity, error)
}

type SessionManagerInterface interface {
	Lifetime() time.Duration
	Issue(w http.ResponseWriter, session *UserSession) error
	Read(r *http.Request) (*UserSession, error)
	Refresh(w http.ResponseWriter, session *UserSession) error
	Clear(w http.ResponseWriter)
}

type HasherInterface interface {
	Hash(secret string) (string, error)
	Compare(hash, secret string) error
}
