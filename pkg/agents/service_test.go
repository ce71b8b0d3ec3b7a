// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agents

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/tcpfleet/agent-platform/internal/authorization"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/internal/monitoring"
	"github.com/tcpfleet/agent-platform/internal/storage"
	"github.com/tcpfleet/agent-platform/internal/tracing"
	"github.com/tcpfleet/agent-platform/internal/types"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package agents -destination ./mock_agents.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *authentication.TokenCodec) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)

	logger := logging.NewNoopLogger()
	codec := authentication.NewTokenCodec([]byte("test-signing-secret"), 24*time.Hour)
	service := NewService(mockStorage, authorization.NewAuthorizer(logger), codec,
		authentication.NewHasher(), 24*time.Hour, 24*time.Hour,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logger)
	return service, mockStorage, codec
}

func projectSession(projectRole string) *authentication.UserSession {
	return &authentication.UserSession{
		UserID:  1,
		Email:   "actor@x.com",
		Company: &authentication.CompanyContext{ID: 10, Slug: "acme", Role: types.CompanyRoleMember},
		Project: &authentication.ProjectContext{ID: 20, Slug: "edge", Role: projectRole},
	}
}

func projectAgent() *types.Agent {
	return &types.Agent{
		ID:        5,
		ProjectID: 20,
		Name:      "Edge Probe",
		Slug:      "edge-probe",
		AgentID:   "c0ffee00-0000-4000-8000-000000000001",
		IsActive:  true,
	}
}

func TestService_CreateAgent(t *testing.T) {
	service, mockStorage, _ := newTestService(t)
	session := projectSession(types.ProjectRoleAdmin)

	var created *types.Agent
	mockStorage.EXPECT().CreateAgent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *types.Agent) (*types.Agent, error) {
			created = a
			a.ID = 5
			return a, nil
		})
	mockStorage.EXPECT().InsertAgentActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *types.AgentActivityLog) error {
			if log.Action != types.ActivityCreateAgent {
				t.Errorf("expected %s activity, got %s", types.ActivityCreateAgent, log.Action)
			}
			if log.Metadata["created_by"] != "actor@x.com" {
				t.Errorf("unexpected metadata: %v", log.Metadata)
			}
			return nil
		})

	agent, err := service.CreateAgent(context.Background(), session, "Edge Probe", "roof sensor", []string{"metrics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ProjectID != 20 {
		t.Errorf("expected project 20, got %d", created.ProjectID)
	}
	if created.Slug != "edge-probe" {
		t.Errorf("expected slug edge-probe, got %q", created.Slug)
	}
	if created.IsActive {
		t.Error("a freshly provisioned agent must be pending")
	}
	if created.AgentID == "" {
		t.Error("expected a generated agent id")
	}
	if created.RegistrationToken == nil || len(*created.RegistrationToken) != 64 {
		t.Errorf("expected a 64 char registration token, got %v", created.RegistrationToken)
	}
	if created.RegistrationTokenExpiresAt == nil {
		t.Fatal("expected a registration token expiry")
	}
	want := time.Now().Add(24 * time.Hour)
	if got := *created.RegistrationTokenExpiresAt; got.Before(want.Add(-time.Minute)) || got.After(want.Add(time.Minute)) {
		t.Errorf("token expiry out of range: %v", got)
	}
	if agent.ID != 5 {
		t.Errorf("expected stored agent back, got id %d", agent.ID)
	}
}

func TestService_CreateAgentDenied(t *testing.T) {
	service, _, _ := newTestService(t)

	for _, role := range []string{types.ProjectRoleDeveloper, types.ProjectRoleAnalyst} {
		_, err := service.CreateAgent(context.Background(), projectSession(role), "Edge Probe", "", nil)
		if !errors.Is(err, authentication.ErrAccessDenied) {
			t.Errorf("role %s: expected ErrAccessDenied, got %v", role, err)
		}
	}
}

func TestService_GetAgentCrossProject(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	other := projectAgent()
	other.ProjectID = 99
	mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), other.AgentID).Return(other, nil)

	_, err := service.GetAgent(context.Background(), projectSession(types.ProjectRoleAnalyst), other.AgentID)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("an agent from another project must read as missing, got %v", err)
	}
}

func TestService_UpdateAgent(t *testing.T) {
	service, mockStorage, _ := newTestService(t)
	agent := projectAgent()

	mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), agent.AgentID).Return(agent, nil)
	mockStorage.EXPECT().UpdateAgent(gomock.Any(), agent.ID, "Roof Probe", "moved", []string{"metrics", "logs"}).
		Return(agent, nil)

	_, err := service.UpdateAgent(context.Background(), projectSession(types.ProjectRoleDeveloper),
		agent.AgentID, "Roof Probe", "moved", []string{"metrics", "logs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_DeleteAgent(t *testing.T) {
	t.Run("project owner deletes", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)
		agent := projectAgent()

		mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), agent.AgentID).Return(agent, nil)
		mockStorage.EXPECT().SoftDeleteAgent(gomock.Any(), agent.ID).Return(nil)

		if err := service.DeleteAgent(context.Background(), projectSession(types.ProjectRoleOwner), agent.AgentID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("project admin cannot delete", func(t *testing.T) {
		service, _, _ := newTestService(t)

		err := service.DeleteAgent(context.Background(), projectSession(types.ProjectRoleAdmin), "any")
		if !errors.Is(err, authentication.ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})
}

func TestService_RotateSecret(t *testing.T) {
	service, mockStorage, _ := newTestService(t)
	agent := projectAgent()

	var storedHash string
	mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), agent.AgentID).Return(agent, nil)
	mockStorage.EXPECT().UpdateAgentSecret(gomock.Any(), agent.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, hash string) error {
			storedHash = hash
			return nil
		})
	mockStorage.EXPECT().InsertAgentActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *types.AgentActivityLog) error {
			if log.Action != types.ActivityRotateAgentSecret {
				t.Errorf("expected %s activity, got %s", types.ActivityRotateAgentSecret, log.Action)
			}
			return nil
		})

	secret, err := service.RotateSecret(context.Background(), projectSession(types.ProjectRoleAdmin), agent.AgentID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(secret) != 64 {
		t.Errorf("expected a 64 char secret, got %d chars", len(secret))
	}
	if err := authentication.NewHasher().Compare(storedHash, secret); err != nil {
		t.Errorf("stored hash does not match the returned secret: %v", err)
	}
}

func TestService_Register(t *testing.T) {
	token := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

	pendingAgent := func(expiry time.Time) *types.Agent {
		a := projectAgent()
		a.IsActive = false
		a.RegistrationToken = &token
		a.RegistrationTokenExpiresAt = &expiry
		return a
	}

	t.Run("success", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)
		pending := pendingAgent(time.Now().Add(time.Hour))

		var storedHash string
		mockStorage.EXPECT().GetAgentByRegistrationToken(gomock.Any(), token).Return(pending, nil)
		mockStorage.EXPECT().ConsumeRegistrationToken(gomock.Any(), pending.ID, token, "rack-4-probe", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _, _, hash string) error {
				storedHash = hash
				return nil
			})
		registered := projectAgent()
		registered.Name = "rack-4-probe"
		mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), pending.AgentID).Return(registered, nil)
		mockStorage.EXPECT().InsertAgentActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *types.AgentActivityLog) error {
				if log.Action != types.ActivityRegisterAgent {
					t.Errorf("expected %s activity, got %s", types.ActivityRegisterAgent, log.Action)
				}
				return nil
			})

		reg, err := service.Register(context.Background(), token, "rack-4-probe")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(reg.Secret) != 64 {
			t.Errorf("expected a 64 char secret, got %d chars", len(reg.Secret))
		}
		if err := authentication.NewHasher().Compare(storedHash, reg.Secret); err != nil {
			t.Errorf("stored hash does not match the issued secret: %v", err)
		}
		if reg.Agent.Name != "rack-4-probe" {
			t.Errorf("expected the registered record back, got %q", reg.Agent.Name)
		}
	})

	t.Run("empty name keeps the provisioned one", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)
		pending := pendingAgent(time.Now().Add(time.Hour))

		mockStorage.EXPECT().GetAgentByRegistrationToken(gomock.Any(), token).Return(pending, nil)
		mockStorage.EXPECT().ConsumeRegistrationToken(gomock.Any(), pending.ID, token, pending.Name, gomock.Any()).Return(nil)
		mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), pending.AgentID).Return(projectAgent(), nil)
		mockStorage.EXPECT().InsertAgentActivity(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := service.Register(context.Background(), token, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetAgentByRegistrationToken(gomock.Any(), "bogus").Return(nil, storage.ErrNotFound)

		_, err := service.Register(context.Background(), "bogus", "")
		if !errors.Is(err, authentication.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("expired token mutates nothing", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)
		pending := pendingAgent(time.Now().Add(-time.Minute))

		mockStorage.EXPECT().GetAgentByRegistrationToken(gomock.Any(), token).Return(pending, nil)

		_, err := service.Register(context.Background(), token, "late")
		if !errors.Is(err, authentication.ErrExpired) {
			t.Fatalf("expected ErrExpired, got %v", err)
		}
	})

	t.Run("losing a concurrent exchange", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)
		pending := pendingAgent(time.Now().Add(time.Hour))

		mockStorage.EXPECT().GetAgentByRegistrationToken(gomock.Any(), token).Return(pending, nil)
		mockStorage.EXPECT().ConsumeRegistrationToken(gomock.Any(), pending.ID, token, gomock.Any(), gomock.Any()).
			Return(storage.ErrNotFound)

		_, err := service.Register(context.Background(), token, "")
		if !errors.Is(err, authentication.ErrAlreadyUsed) {
			t.Fatalf("expected ErrAlreadyUsed, got %v", err)
		}
	})
}

func TestService_Authenticate(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	hash, err := authentication.NewHasher().Hash(secret)
	if err != nil {
		t.Fatalf("failed to hash secret: %v", err)
	}

	activeAgent := func() *types.Agent {
		a := projectAgent()
		a.SecretHash = hash
		return a
	}

	t.Run("success", func(t *testing.T) {
		service, mockStorage, codec := newTestService(t)
		agent := activeAgent()

		mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), agent.AgentID).Return(agent, nil)
		mockStorage.EXPECT().TouchAgentLastSeen(gomock.Any(), agent.ID).Return(nil)
		mockStorage.EXPECT().InsertAgentActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *types.AgentActivityLog) error {
				if log.Action != types.ActivityAgentAuthenticated {
					t.Errorf("expected %s activity, got %s", types.ActivityAgentAuthenticated, log.Action)
				}
				return nil
			})

		creds, err := service.Authenticate(context.Background(), agent.AgentID, secret)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		identity, err := codec.VerifyAgentToken(creds.Token, []byte(hash))
		if err != nil {
			t.Fatalf("issued token does not verify under the agent's key: %v", err)
		}
		if identity.AgentID != agent.AgentID || identity.ProjectID != agent.ProjectID {
			t.Errorf("unexpected identity: %+v", identity)
		}

		want := time.Now().Add(24 * time.Hour)
		if creds.ExpiresAt.Before(want.Add(-time.Minute)) || creds.ExpiresAt.After(want.Add(time.Minute)) {
			t.Errorf("credential expiry out of range: %v", creds.ExpiresAt)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)
		agent := activeAgent()

		mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), agent.AgentID).Return(agent, nil)
		mockStorage.EXPECT().InsertAgentActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, log *types.AgentActivityLog) error {
				if log.Action != types.ActivityAuthenticationFailed {
					t.Errorf("expected %s activity, got %s", types.ActivityAuthenticationFailed, log.Action)
				}
				return nil
			})

		_, err := service.Authenticate(context.Background(), agent.AgentID, "not-the-secret")
		if !errors.Is(err, authentication.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("pending agent", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)
		agent := activeAgent()
		agent.IsActive = false

		mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), agent.AgentID).Return(agent, nil)

		_, err := service.Authenticate(context.Background(), agent.AgentID, secret)
		if !errors.Is(err, authentication.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown agent", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

		_, err := service.Authenticate(context.Background(), "ghost", secret)
		if !errors.Is(err, authentication.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestService_ListTelemetry(t *testing.T) {
	service, mockStorage, _ := newTestService(t)
	agent := projectAgent()
	since := time.Now().Add(-time.Hour)

	samples := []*types.TelemetrySample{{AgentID: agent.ID, CPUUsage: 0.4}}
	mockStorage.EXPECT().GetAgentByAgentID(gomock.Any(), agent.AgentID).Return(agent, nil)
	mockStorage.EXPECT().ListTelemetrySince(gomock.Any(), agent.ID, since, uint64(50)).Return(samples, nil)

	got, err := service.ListTelemetry(context.Background(), projectSession(types.ProjectRoleAnalyst), agent.AgentID, since, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(got))
	}
}

func TestService_ReportTelemetry(t *testing.T) {
	service, mockStorage, _ := newTestService(t)
	agent := projectAgent()

	mockStorage.EXPECT().InsertTelemetry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sample *types.TelemetrySample) error {
			if sample.AgentID != agent.ID {
				t.Errorf("expected agent id %d, got %d", agent.ID, sample.AgentID)
			}
			if sample.Timestamp.IsZero() {
				t.Error("expected a timestamp to be filled in")
			}
			return nil
		})

	err := service.ReportTelemetry(context.Background(), agent, &types.TelemetrySample{CPUUsage: 0.2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
