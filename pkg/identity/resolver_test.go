// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_identity.go -source=./interfaces.go

func newTestResolver(t *testing.T) (*Resolver, *MockStorageInterface, *authentication.TokenCodec) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	codec := authentication.NewTokenCodec([]byte("platform-secret"), 24*time.Hour)

	resolver := NewResolver(mockStorage, codec,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return resolver, mockStorage, codec
}

func TestResolver_ResolveUser(t *testing.T) {
	user := &types.User{ID: 42, Email: "user@example.com"}

	session := &authentication.UserSession{
		UserID:  42,
		Email:   "user@example.com",
		Company: &authentication.CompanyContext{ID: 7, Slug: "acme", Role: "admin"},
		Project: &authentication.ProjectContext{ID: 3, Slug: "edge", Role: "developer"},
	}

	testCases := []struct {
		name            string
		setupMocks      func(*MockStorageInterface)
		expectedCompany bool
		expectedProject bool
		expectedRole    string
	}{
		{
			name: "full context",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(42)).Return(user, nil)
				mockStorage.EXPECT().GetCompanyMember(gomock.Any(), int64(7), int64(42)).
					Return(&types.CompanyMember{CompanyID: 7, UserID: 42, Role: "admin"}, nil)
				mockStorage.EXPECT().GetProjectMember(gomock.Any(), int64(3), int64(42)).
					Return(&types.ProjectMember{ProjectID: 3, UserID: 42, Role: "developer"}, nil)
			},
			expectedCompany: true,
			expectedProject: true,
			expectedRole:    "admin",
		},
		{
			name: "revoked company membership drops company and project",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(42)).Return(user, nil)
				mockStorage.EXPECT().GetCompanyMember(gomock.Any(), int64(7), int64(42)).
					Return(nil, storage.ErrNotFound)
			},
			expectedCompany: false,
			expectedProject: false,
		},
		{
			name: "revoked project membership drops project only",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(42)).Return(user, nil)
				mockStorage.EXPECT().GetCompanyMember(gomock.Any(), int64(7), int64(42)).
					Return(&types.CompanyMember{CompanyID: 7, UserID: 42, Role: "admin"}, nil)
				mockStorage.EXPECT().GetProjectMember(gomock.Any(), int64(3), int64(42)).
					Return(nil, storage.ErrNotFound)
			},
			expectedCompany: true,
			expectedProject: false,
			expectedRole:    "admin",
		},
		{
			name: "role comes from the database not the token",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(42)).Return(user, nil)
				mockStorage.EXPECT().GetCompanyMember(gomock.Any(), int64(7), int64(42)).
					Return(&types.CompanyMember{CompanyID: 7, UserID: 42, Role: "member"}, nil)
				mockStorage.EXPECT().GetProjectMember(gomock.Any(), int64(3), int64(42)).
					Return(&types.ProjectMember{ProjectID: 3, UserID: 42, Role: "developer"}, nil)
			},
			expectedCompany: true,
			expectedProject: true,
			expectedRole:    "member",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolver, mockStorage, _ := newTestResolver(t)
			tc.setupMocks(mockStorage)

			uc, err := resolver.ResolveUser(context.Background(), session)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if uc.User.ID != 42 {
				t.Fatalf("expected user 42, got %d", uc.User.ID)
			}
			if (uc.Company != nil) != tc.expectedCompany {
				t.Fatalf("company context: expected %v, got %+v", tc.expectedCompany, uc.Company)
			}
			if (uc.Project != nil) != tc.expectedProject {
				t.Fatalf("project context: expected %v, got %+v", tc.expectedProject, uc.Project)
			}
			if uc.Company != nil && uc.Company.Role != tc.expectedRole {
				t.Fatalf("expected role %q, got %q", tc.expectedRole, uc.Company.Role)
			}
		})
	}
}

func TestResolver_ResolveUserDeleted(t *testing.T) {
	resolver, mockStorage, _ := newTestResolver(t)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(42)).Return(nil, storage.ErrNotFound)

	_, err := resolver.ResolveUser(context.Background(), &authentication.UserSession{UserID: 42})
	if !errors.Is(err, authentication.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestResolver_AuthenticateAgent(t *testing.T) {
	resolver, mockStorage, codec := newTestResolver(t)

	agent := &types.Agent{
		ID:         10,
		ProjectID:  3,
		AgentID:    "agent-abc",
		SecretHash: "stored-secret-hash",
		IsActive:   true,
	}

	token, err := codec.IssueAgentToken("agent-abc", 3, []byte(agent.SecretHash))
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), "agent-abc").Return(agent, nil)
	mockStorage.EXPECT().TouchAgentLastSeen(gomock.Any(), int64(10)).Return(nil)

	ac, err := resolver.AuthenticateAgent(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ac.Agent.ID != 10 {
		t.Fatalf("expected agent 10, got %d", ac.Agent.ID)
	}
}

func TestResolver_AuthenticateAgentErrors(t *testing.T) {
	inactive := &types.Agent{ID: 10, AgentID: "agent-abc", SecretHash: "hash", IsActive: false}
	active := &types.Agent{ID: 10, AgentID: "agent-abc", SecretHash: "hash-a", IsActive: true}

	testCases := []struct {
		name        string
		token       func(codec *authentication.TokenCodec) string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "garbage token",
			token: func(codec *authentication.TokenCodec) string {
				return "not-a-token"
			},
			setupMocks:  func(mockStorage *MockStorageInterface) {},
			expectedErr: authentication.ErrMalformedToken,
		},
		{
			name: "unknown agent",
			token: func(codec *authentication.TokenCodec) string {
				token, _ := codec.IssueAgentToken("agent-abc", 3, []byte("whatever"))
				return token
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), "agent-abc").
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: authentication.ErrInvalidCredentials,
		},
		{
			name: "inactive agent",
			token: func(codec *authentication.TokenCodec) string {
				token, _ := codec.IssueAgentToken("agent-abc", 3, []byte("hash"))
				return token
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), "agent-abc").
					Return(inactive, nil)
			},
			expectedErr: authentication.ErrInvalidCredentials,
		},
		{
			name: "token signed with another agent's secret",
			token: func(codec *authentication.TokenCodec) string {
				token, _ := codec.IssueAgentToken("agent-abc", 3, []byte("hash-b"))
				return token
			},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), "agent-abc").
					Return(active, nil)
			},
			expectedErr: authentication.ErrInvalidSignature,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolver, mockStorage, codec := newTestResolver(t)
			tc.setupMocks(mockStorage)

			_, err := resolver.AuthenticateAgent(context.Background(), tc.token(codec))
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
