// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

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

//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_accounts.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockCheckoutInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockCheckout := NewMockCheckoutInterface(ctrl)

	service := NewService(mockStorage, authentication.NewHasher(), mockCheckout,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return service, mockStorage, mockCheckout
}

func TestService_SignUpFreshCompany(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	user := &types.User{ID: 1, Email: "a@x.com"}
	company := &types.Company{ID: 10, Name: "a's Company", Slug: "a"}

	mockStorage.EXPECT().CreateUser(gomock.Any(), "a@x.com", gomock.Any()).Return(user, nil)
	mockStorage.EXPECT().CompanySlugExists(gomock.Any(), "a").Return(false, nil)
	mockStorage.EXPECT().CreateCompany(gomock.Any(), "a's Company", "a").Return(company, nil)
	mockStorage.EXPECT().AddCompanyMember(gomock.Any(), int64(10), int64(1), types.CompanyRoleOwner).
		Return(&types.CompanyMember{CompanyID: 10, UserID: 1, Role: types.CompanyRoleOwner}, nil)

	result, err := service.SignUp(context.Background(), &SignUpInput{
		Email:    "a@x.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.User.ID != 1 {
		t.Fatalf("expected user 1, got %d", result.User.ID)
	}
	if result.Session.Company == nil || result.Session.Company.Role != types.CompanyRoleOwner {
		t.Fatalf("expected owner company context, got %+v", result.Session.Company)
	}
	if result.RedirectURL != "/dashboard" {
		t.Fatalf("expected /dashboard redirect, got %q", result.RedirectURL)
	}
}

func TestService_SignUpSlugCollision(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	user := &types.User{ID: 1, Email: "a@x.com"}
	company := &types.Company{ID: 10, Slug: "a-2"}

	mockStorage.EXPECT().CreateUser(gomock.Any(), "a@x.com", gomock.Any()).Return(user, nil)
	mockStorage.EXPECT().CompanySlugExists(gomock.Any(), "a").Return(true, nil)
	mockStorage.EXPECT().CompanySlugExists(gomock.Any(), "a-2").Return(false, nil)
	mockStorage.EXPECT().CreateCompany(gomock.Any(), "a's Company", "a-2").Return(company, nil)
	mockStorage.EXPECT().AddCompanyMember(gomock.Any(), int64(10), int64(1), types.CompanyRoleOwner).
		Return(&types.CompanyMember{Role: types.CompanyRoleOwner}, nil)

	result, err := service.SignUp(context.Background(), &SignUpInput{Email: "a@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Session.Company.Slug != "a-2" {
		t.Fatalf("expected slug a-2, got %q", result.Session.Company.Slug)
	}
}

func TestService_SignUpDuplicateEmail(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().CreateUser(gomock.Any(), "a@x.com", gomock.Any()).
		Return(nil, storage.ErrDuplicateKey)

	_, err := service.SignUp(context.Background(), &SignUpInput{Email: "a@x.com", Password: "password123"})
	if !errors.Is(err, authentication.ErrAlreadyUsed) {
		t.Fatalf("expected ErrAlreadyUsed, got %v", err)
	}
}

func TestService_SignUpWithCompanyInvitation(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	user := &types.User{ID: 2, Email: "invited@x.com"}
	invitation := &types.CompanyInvitation{
		ID:        5,
		CompanyID: 10,
		Email:     "invited@x.com",
		Role:      types.CompanyRoleAdmin,
		Status:    types.InvitationPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	company := &types.Company{ID: 10, Slug: "acme"}

	mockStorage.EXPECT().CreateUser(gomock.Any(), "invited@x.com", gomock.Any()).Return(user, nil)
	mockStorage.EXPECT().GetCompanyInvitationByToken(gomock.Any(), "tok").Return(invitation, nil)
	mockStorage.EXPECT().AcceptCompanyInvitation(gomock.Any(), int64(5)).Return(nil)
	mockStorage.EXPECT().AddCompanyMember(gomock.Any(), int64(10), int64(2), types.CompanyRoleAdmin).
		Return(&types.CompanyMember{Role: types.CompanyRoleAdmin}, nil)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), int64(10)).Return(company, nil)

	result, err := service.SignUp(context.Background(), &SignUpInput{
		Email:       "invited@x.com",
		Password:    "password123",
		InviteToken: "tok",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Session.Company == nil || result.Session.Company.Role != types.CompanyRoleAdmin {
		t.Fatalf("expected admin company context, got %+v", result.Session.Company)
	}
}

func TestService_SignUpWithProjectInvitation(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	user := &types.User{ID: 3, Email: "dev@x.com"}
	invitation := &types.ProjectInvitation{
		ID:        6,
		ProjectID: 20,
		Email:     "dev@x.com",
		Role:      types.ProjectRoleDeveloper,
		Status:    types.InvitationPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	project := &types.Project{ID: 20, CompanyID: 10, Slug: "edge"}
	company := &types.Company{ID: 10, Slug: "acme"}

	mockStorage.EXPECT().CreateUser(gomock.Any(), "dev@x.com", gomock.Any()).Return(user, nil)
	mockStorage.EXPECT().GetCompanyInvitationByToken(gomock.Any(), "tok").
		Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().GetProjectInvitationByToken(gomock.Any(), "tok").Return(invitation, nil)
	mockStorage.EXPECT().AcceptProjectInvitation(gomock.Any(), int64(6)).Return(nil)
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(20)).Return(project, nil)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), int64(10)).Return(company, nil)
	mockStorage.EXPECT().AddCompanyMember(gomock.Any(), int64(10), int64(3), types.CompanyRoleMember).
		Return(&types.CompanyMember{Role: types.CompanyRoleMember}, nil)
	mockStorage.EXPECT().AddProjectMember(gomock.Any(), int64(20), int64(3), types.ProjectRoleDeveloper).
		Return(&types.ProjectMember{Role: types.ProjectRoleDeveloper}, nil)

	result, err := service.SignUp(context.Background(), &SignUpInput{
		Email:       "dev@x.com",
		Password:    "password123",
		InviteToken: "tok",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Session.Company == nil || result.Session.Company.Role != types.CompanyRoleMember {
		t.Fatalf("expected member company context, got %+v", result.Session.Company)
	}
	if result.Session.Project == nil || result.Session.Project.Role != types.ProjectRoleDeveloper {
		t.Fatalf("expected developer project context, got %+v", result.Session.Project)
	}
}

func TestService_SignUpInvitationErrors(t *testing.T) {
	testCases := []struct {
		name        string
		invitation  *types.CompanyInvitation
		acceptErr   error
		expectedErr error
	}{
		{
			name: "expired invitation",
			invitation: &types.CompanyInvitation{
				ID:        5,
				Email:     "invited@x.com",
				Status:    types.InvitationPending,
				ExpiresAt: time.Now().Add(-time.Second),
			},
			expectedErr: authentication.ErrExpired,
		},
		{
			name: "already accepted",
			invitation: &types.CompanyInvitation{
				ID:        5,
				Email:     "invited@x.com",
				Status:    types.InvitationAccepted,
				ExpiresAt: time.Now().Add(time.Hour),
			},
			expectedErr: authentication.ErrAlreadyUsed,
		},
		{
			name: "email mismatch",
			invitation: &types.CompanyInvitation{
				ID:        5,
				Email:     "someone-else@x.com",
				Status:    types.InvitationPending,
				ExpiresAt: time.Now().Add(time.Hour),
			},
			expectedErr: authentication.ErrAccessDenied,
		},
		{
			name: "lost accept race",
			invitation: &types.CompanyInvitation{
				ID:        5,
				Email:     "invited@x.com",
				Status:    types.InvitationPending,
				ExpiresAt: time.Now().Add(time.Hour),
			},
			acceptErr:   storage.ErrNotFound,
			expectedErr: authentication.ErrAlreadyUsed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mockStorage, _ := newTestService(t)

			user := &types.User{ID: 2, Email: "invited@x.com"}
			mockStorage.EXPECT().CreateUser(gomock.Any(), "invited@x.com", gomock.Any()).Return(user, nil)
			mockStorage.EXPECT().GetCompanyInvitationByToken(gomock.Any(), "tok").Return(tc.invitation, nil)
			if tc.acceptErr != nil {
				mockStorage.EXPECT().AcceptCompanyInvitation(gomock.Any(), int64(5)).Return(tc.acceptErr)
			}

			_, err := service.SignUp(context.Background(), &SignUpInput{
				Email:       "invited@x.com",
				Password:    "password123",
				InviteToken: "tok",
			})
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_SignIn(t *testing.T) {
	hasher := authentication.NewHasher()
	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	user := &types.User{ID: 1, Email: "a@x.com", PasswordHash: hash}

	t.Run("success with company context", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		mockStorage.EXPECT().ListCompaniesByUserID(gomock.Any(), int64(1)).Return([]*storage.CompanyMembershipRow{
			{
				Company: &types.Company{ID: 10, Slug: "acme"},
				Member:  &types.CompanyMember{Role: types.CompanyRoleOwner},
			},
		}, nil)

		session, err := service.SignIn(context.Background(), "a@x.com", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.UserID != 1 {
			t.Fatalf("expected user 1, got %d", session.UserID)
		}
		if session.Company == nil || session.Company.Slug != "acme" {
			t.Fatalf("expected acme company context, got %+v", session.Company)
		}
	})

	t.Run("unknown email and wrong password are identical", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByEmail(gomock.Any(), "nobody@x.com").
			Return(nil, storage.ErrNotFound)
		_, unknownErr := service.SignIn(context.Background(), "nobody@x.com", "password123")

		mockStorage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		_, wrongErr := service.SignIn(context.Background(), "a@x.com", "not-the-password")

		if !errors.Is(unknownErr, authentication.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", unknownErr)
		}
		if !errors.Is(wrongErr, authentication.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", wrongErr)
		}
		if unknownErr.Error() != wrongErr.Error() {
			t.Fatalf("errors must be indistinguishable: %q vs %q", unknownErr, wrongErr)
		}
	})
}

func TestService_UpdatePassword(t *testing.T) {
	hasher := authentication.NewHasher()
	hash, err := hasher.Hash("old-password")
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	user := &types.User{ID: 1, Email: "a@x.com", PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(1)).Return(user, nil)
		mockStorage.EXPECT().UpdateUserPassword(gomock.Any(), int64(1), gomock.Any()).Return(nil)

		if err := service.UpdatePassword(context.Background(), 1, "old-password", "new-password"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong current password", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(1)).Return(user, nil)

		err := service.UpdatePassword(context.Background(), 1, "guess", "new-password")
		if !errors.Is(err, authentication.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestService_SwitchCompanyClearsProject(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	session := &authentication.UserSession{
		UserID:  1,
		Email:   "a@x.com",
		Company: &authentication.CompanyContext{ID: 10, Slug: "acme", Role: types.CompanyRoleOwner},
		Project: &authentication.ProjectContext{ID: 20, Slug: "edge", Role: types.ProjectRoleOwner},
	}

	mockStorage.EXPECT().GetCompanyBySlug(gomock.Any(), "other").
		Return(&types.Company{ID: 11, Slug: "other"}, nil)
	mockStorage.EXPECT().GetCompanyMember(gomock.Any(), int64(11), int64(1)).
		Return(&types.CompanyMember{Role: types.CompanyRoleMember}, nil)

	next, err := service.SwitchCompany(context.Background(), session, "other")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Company == nil || next.Company.ID != 11 {
		t.Fatalf("expected company 11, got %+v", next.Company)
	}
	if next.Project != nil {
		t.Fatalf("project context must be cleared on company switch, got %+v", next.Project)
	}
}

func TestService_SwitchCompanyDenied(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	session := &authentication.UserSession{UserID: 1, Email: "a@x.com"}

	mockStorage.EXPECT().GetCompanyBySlug(gomock.Any(), "other").
		Return(&types.Company{ID: 11, Slug: "other"}, nil)
	mockStorage.EXPECT().GetCompanyMember(gomock.Any(), int64(11), int64(1)).
		Return(nil, storage.ErrNotFound)

	_, err := service.SwitchCompany(context.Background(), session, "other")
	if !errors.Is(err, authentication.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestService_SwitchProject(t *testing.T) {
	company := &authentication.CompanyContext{ID: 10, Slug: "acme", Role: types.CompanyRoleOwner}

	t.Run("success keeps company", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		session := &authentication.UserSession{UserID: 1, Email: "a@x.com", Company: company}

		mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), int64(10), "edge").
			Return(&types.Project{ID: 20, CompanyID: 10, Slug: "edge"}, nil)
		mockStorage.EXPECT().GetProjectMember(gomock.Any(), int64(20), int64(1)).
			Return(&types.ProjectMember{Role: types.ProjectRoleDeveloper}, nil)

		next, err := service.SwitchProject(context.Background(), session, "edge")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Company != company {
			t.Fatal("company context must survive a project switch")
		}
		if next.Project == nil || next.Project.Role != types.ProjectRoleDeveloper {
			t.Fatalf("expected developer project context, got %+v", next.Project)
		}
	})

	t.Run("no company context", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.SwitchProject(context.Background(),
			&authentication.UserSession{UserID: 1, Email: "a@x.com"}, "edge")
		if !errors.Is(err, authentication.ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("project from another company", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		session := &authentication.UserSession{UserID: 1, Email: "a@x.com", Company: company}
		mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), int64(10), "foreign").
			Return(nil, storage.ErrNotFound)

		_, err := service.SwitchProject(context.Background(), session, "foreign")
		if !errors.Is(err, authentication.ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})
}

func TestService_SignUpWithCheckout(t *testing.T) {
	service, mockStorage, mockCheckout := newTestService(t)

	user := &types.User{ID: 1, Email: "a@x.com"}
	company := &types.Company{ID: 10, Slug: "a"}

	mockStorage.EXPECT().CreateUser(gomock.Any(), "a@x.com", gomock.Any()).Return(user, nil)
	mockStorage.EXPECT().CompanySlugExists(gomock.Any(), "a").Return(false, nil)
	mockStorage.EXPECT().CreateCompany(gomock.Any(), "a's Company", "a").Return(company, nil)
	mockStorage.EXPECT().AddCompanyMember(gomock.Any(), int64(10), int64(1), types.CompanyRoleOwner).
		Return(&types.CompanyMember{Role: types.CompanyRoleOwner}, nil)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), int64(10)).Return(company, nil)
	mockCheckout.EXPECT().CheckoutURL(gomock.Any(), company, "price-123").
		Return("https://billing.example.com/checkout/abc", nil)

	result, err := service.SignUp(context.Background(), &SignUpInput{
		Email:    "a@x.com",
		Password: "password123",
		PriceID:  "price-123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RedirectURL != "https://billing.example.com/checkout/abc" {
		t.Fatalf("expected checkout redirect, got %q", result.RedirectURL)
	}
}

func TestService_AcceptInvitation(t *testing.T) {
	t.Run("existing user joins company", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		user := &types.User{ID: 2, Email: "invited@x.com"}
		invitation := &types.CompanyInvitation{
			ID:        5,
			CompanyID: 10,
			Email:     "invited@x.com",
			Role:      types.CompanyRoleMember,
			Status:    types.InvitationPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}

		mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(2)).Return(user, nil)
		mockStorage.EXPECT().GetCompanyInvitationByToken(gomock.Any(), "tok").Return(invitation, nil)
		mockStorage.EXPECT().AcceptCompanyInvitation(gomock.Any(), int64(5)).Return(nil)
		mockStorage.EXPECT().AddCompanyMember(gomock.Any(), int64(10), int64(2), types.CompanyRoleMember).
			Return(&types.CompanyMember{Role: types.CompanyRoleMember}, nil)
		mockStorage.EXPECT().GetCompanyByID(gomock.Any(), int64(10)).
			Return(&types.Company{ID: 10, Slug: "acme"}, nil)

		session := &authentication.UserSession{UserID: 2, Email: "invited@x.com"}
		next, err := service.AcceptInvitation(context.Background(), session, "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Company == nil || next.Company.ID != 10 || next.Company.Role != types.CompanyRoleMember {
			t.Fatalf("expected member context in company 10, got %+v", next.Company)
		}
		if next.Project != nil {
			t.Fatalf("expected no project context, got %+v", next.Project)
		}
	})

	t.Run("accepted scope replaces the old one", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		user := &types.User{ID: 2, Email: "invited@x.com"}
		invitation := &types.CompanyInvitation{
			ID:        5,
			CompanyID: 11,
			Email:     "invited@x.com",
			Role:      types.CompanyRoleMember,
			Status:    types.InvitationPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}

		mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(2)).Return(user, nil)
		mockStorage.EXPECT().GetCompanyInvitationByToken(gomock.Any(), "tok").Return(invitation, nil)
		mockStorage.EXPECT().AcceptCompanyInvitation(gomock.Any(), int64(5)).Return(nil)
		mockStorage.EXPECT().AddCompanyMember(gomock.Any(), int64(11), int64(2), types.CompanyRoleMember).
			Return(&types.CompanyMember{Role: types.CompanyRoleMember}, nil)
		mockStorage.EXPECT().GetCompanyByID(gomock.Any(), int64(11)).
			Return(&types.Company{ID: 11, Slug: "beta"}, nil)

		session := &authentication.UserSession{
			UserID:  2,
			Email:   "invited@x.com",
			Company: &authentication.CompanyContext{ID: 10, Slug: "acme", Role: types.CompanyRoleOwner},
			Project: &authentication.ProjectContext{ID: 20, Slug: "edge", Role: types.ProjectRoleOwner},
		}
		next, err := service.AcceptInvitation(context.Background(), session, "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Company == nil || next.Company.ID != 11 {
			t.Fatalf("expected company 11, got %+v", next.Company)
		}
		if next.Project != nil {
			t.Fatalf("expected the stale project context to be gone, got %+v", next.Project)
		}
	})

	t.Run("existing user joins project", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		user := &types.User{ID: 3, Email: "dev@x.com"}
		invitation := &types.ProjectInvitation{
			ID:        6,
			ProjectID: 20,
			Email:     "dev@x.com",
			Role:      types.ProjectRoleDeveloper,
			Status:    types.InvitationPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}

		mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(3)).Return(user, nil)
		mockStorage.EXPECT().GetCompanyInvitationByToken(gomock.Any(), "tok").
			Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().GetProjectInvitationByToken(gomock.Any(), "tok").Return(invitation, nil)
		mockStorage.EXPECT().AcceptProjectInvitation(gomock.Any(), int64(6)).Return(nil)
		mockStorage.EXPECT().GetProjectByID(gomock.Any(), int64(20)).
			Return(&types.Project{ID: 20, CompanyID: 10, Slug: "edge"}, nil)
		mockStorage.EXPECT().GetCompanyByID(gomock.Any(), int64(10)).
			Return(&types.Company{ID: 10, Slug: "acme"}, nil)
		mockStorage.EXPECT().AddCompanyMember(gomock.Any(), int64(10), int64(3), types.CompanyRoleMember).
			Return(nil, storage.ErrDuplicateKey)
		mockStorage.EXPECT().AddProjectMember(gomock.Any(), int64(20), int64(3), types.ProjectRoleDeveloper).
			Return(&types.ProjectMember{Role: types.ProjectRoleDeveloper}, nil)

		session := &authentication.UserSession{UserID: 3, Email: "dev@x.com"}
		next, err := service.AcceptInvitation(context.Background(), session, "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Project == nil || next.Project.Role != types.ProjectRoleDeveloper {
			t.Fatalf("expected developer project context, got %+v", next.Project)
		}
	})

	t.Run("already accepted invitation", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(2)).
			Return(&types.User{ID: 2, Email: "invited@x.com"}, nil)
		mockStorage.EXPECT().GetCompanyInvitationByToken(gomock.Any(), "tok").
			Return(&types.CompanyInvitation{
				ID:        5,
				Email:     "invited@x.com",
				Status:    types.InvitationAccepted,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil)

		session := &authentication.UserSession{UserID: 2, Email: "invited@x.com"}
		_, err := service.AcceptInvitation(context.Background(), session, "tok")
		if !errors.Is(err, authentication.ErrAlreadyUsed) {
			t.Fatalf("expected ErrAlreadyUsed, got %v", err)
		}
	})

	t.Run("invitation addressed to someone else", func(t *testing.T) {
		service, mockStorage, _ := newTestService(t)

		mockStorage.EXPECT().GetUserByID(gomock.Any(), int64(2)).
			Return(&types.User{ID: 2, Email: "other@x.com"}, nil)
		mockStorage.EXPECT().GetCompanyInvitationByToken(gomock.Any(), "tok").
			Return(&types.CompanyInvitation{
				ID:        5,
				Email:     "invited@x.com",
				Status:    types.InvitationPending,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil)

		session := &authentication.UserSession{UserID: 2, Email: "other@x.com"}
		_, err := service.AcceptInvitation(context.Background(), session, "tok")
		if !errors.Is(err, authentication.ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})
}
