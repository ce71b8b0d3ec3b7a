// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tcpfleet/agent-platform/internal/http/types"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the membership routes. All of them operate on
// the company and project selected in the caller's session.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v1/company/members", a.listCompanyMembers)
	mux.Put("/api/v1/company/members/{userID}", a.updateCompanyMemberRole)
	mux.Delete("/api/v1/company/members/{userID}", a.removeCompanyMember)
	mux.Get("/api/v1/company/invitations", a.listCompanyInvitations)
	mux.Post("/api/v1/company/invitations", a.inviteCompanyMember)
	mux.Delete("/api/v1/company/invitations/{invitationID}", a.revokeCompanyInvitation)

	mux.Get("/api/v1/project/members", a.listProjectMembers)
	mux.Put("/api/v1/project/members/{userID}", a.updateProjectMemberRole)
	mux.Delete("/api/v1/project/members/{userID}", a.removeProjectMember)
	mux.Get("/api/v1/project/invitations", a.listProjectInvitations)
	mux.Post("/api/v1/project/invitations", a.inviteProjectMember)
	mux.Delete("/api/v1/project/invitations/{invitationID}", a.revokeProjectInvitation)
}

func requireSession(w http.ResponseWriter, r *http.Request) (*authentication.UserSession, bool) {
	session, ok := authentication.GetUserSession(r.Context())
	if !ok {
		types.WriteErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return session, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		types.WriteErrorResponse(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func (a *API) listCompanyMembers(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	members, err := a.service.ListCompanyMembers(r.Context(), session)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, members)
}

type updateCompanyMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner billing_admin admin member"`
}

func (a *API) updateCompanyMemberRole(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	var req updateCompanyMemberRoleRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	if err := a.service.UpdateCompanyMemberRole(r.Context(), session, userID, req.Role); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) removeCompanyMember(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	if err := a.service.RemoveCompanyMember(r.Context(), session, userID); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}

type inviteCompanyMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=owner billing_admin admin member"`
}

type inviteProjectMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=project_owner project_admin developer analyst"`
}

type updateProjectMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=project_owner project_admin developer analyst"`
}

// invitationResponse carries the one-time token back to the inviter.
// This is the only place the token ever appears in a response.
type invitationResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

func (a *API) inviteCompanyMember(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req inviteCompanyMemberRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	invitation, err := a.service.InviteCompanyMember(r.Context(), session, req.Email, req.Role)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusCreated, invitationResponse{
		ID:        invitation.ID,
		Email:     invitation.Email,
		Role:      invitation.Role,
		Token:     invitation.Token,
		ExpiresAt: invitation.ExpiresAt.Format(time.RFC3339),
	})
}

func (a *API) listCompanyInvitations(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	invitations, err := a.service.ListCompanyInvitations(r.Context(), session)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, invitations)
}

func (a *API) revokeCompanyInvitation(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	invitationID, ok := pathID(w, r, "invitationID")
	if !ok {
		return
	}

	if err := a.service.RevokeCompanyInvitation(r.Context(), session, invitationID); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) listProjectMembers(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	members, err := a.service.ListProjectMembers(r.Context(), session)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, members)
}

func (a *API) updateProjectMemberRole(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	var req updateProjectMemberRoleRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	if err := a.service.UpdateProjectMemberRole(r.Context(), session, userID, req.Role); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) removeProjectMember(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	if err := a.service.RemoveProjectMember(r.Context(), session, userID); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) inviteProjectMember(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req inviteProjectMemberRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	invitation, err := a.service.InviteProjectMember(r.Context(), session, req.Email, req.Role)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusCreated, invitationResponse{
		ID:        invitation.ID,
		Email:     invitation.Email,
		Role:      invitation.Role,
		Token:     invitation.Token,
		ExpiresAt: invitation.ExpiresAt.Format(time.RFC3339),
	})
}

func (a *API) listProjectInvitations(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	invitations, err := a.service.ListProjectInvitations(r.Context(), session)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, invitations)
}

func (a *API) revokeProjectInvitation(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	invitationID, ok := pathID(w, r, "invitationID")
	if !ok {
		return
	}

	if err := a.service.RevokeProjectInvitation(r.Context(), session, invitationID); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}
