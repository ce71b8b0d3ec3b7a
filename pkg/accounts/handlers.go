// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tcpfleet/agent-platform/internal/http/types"
	"github.com/tcpfleet/agent-platform/internal/logging"
	"github.com/tcpfleet/agent-platform/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	sessions authentication.SessionManagerInterface

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, sessions authentication.SessionManagerInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v1/auth/sign-up", a.signUp)
	mux.Post("/api/v1/auth/sign-in", a.signIn)
	mux.Post("/api/v1/auth/sign-out", a.signOut)
	mux.Post("/api/v1/auth/password", a.updatePassword)
	mux.Post("/api/v1/auth/switch-company", a.switchCompany)
	mux.Post("/api/v1/auth/switch-project", a.switchProject)
	mux.Post("/api/v1/invitations/accept", a.acceptInvitation)
}

type signUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	InviteToken string `json:"invite_token,omitempty"`
	PriceID     string `json:"price_id,omitempty"`
}

type sessionResponse struct {
	UserID      int64                          `json:"user_id"`
	Email       string                         `json:"email"`
	Company     *authentication.CompanyContext `json:"company,omitempty"`
	Project     *authentication.ProjectContext `json:"project,omitempty"`
	RedirectURL string                         `json:"redirect_url,omitempty"`
}

func (a *API) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	result, err := a.service.SignUp(r.Context(), &SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		InviteToken: req.InviteToken,
		PriceID:     req.PriceID,
	})
	if err != nil {
		types.WriteError(w, err)
		return
	}

	if err := a.sessions.Issue(w, result.Session); err != nil {
		a.logger.Errorf("failed to issue session: %v", err)
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusCreated, sessionResponse{
		UserID:      result.User.ID,
		Email:       result.User.Email,
		Company:     result.Session.Company,
		Project:     result.Session.Project,
		RedirectURL: result.RedirectURL,
	})
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (a *API) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	session, err := a.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	if err := a.sessions.Issue(w, session); err != nil {
		a.logger.Errorf("failed to issue session: %v", err)
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, sessionResponse{
		UserID:      session.UserID,
		Email:       session.Email,
		Company:     session.Company,
		RedirectURL: "/dashboard",
	})
}

func (a *API) signOut(w http.ResponseWriter, r *http.Request) {
	a.sessions.Clear(w)
	types.WriteResponse(w, http.StatusOK, nil)
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (a *API) updatePassword(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetUserSession(r.Context())
	if !ok {
		types.WriteErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req updatePasswordRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	if err := a.service.UpdatePassword(r.Context(), session.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}

type acceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

// acceptInvitation lets an existing user join the company or project an
// invitation names. Sign-up covers the new-user path; this endpoint
// covers everyone who already has an account.
func (a *API) acceptInvitation(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetUserSession(r.Context())
	if !ok {
		types.WriteErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req acceptInvitationRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	next, err := a.service.AcceptInvitation(r.Context(), session, req.Token)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	if err := a.sessions.Issue(w, next); err != nil {
		a.logger.Errorf("failed to issue session: %v", err)
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, sessionResponse{
		UserID:  next.UserID,
		Email:   next.Email,
		Company: next.Company,
		Project: next.Project,
	})
}

type switchCompanyRequest struct {
	Slug string `json:"slug" validate:"required"`
}

func (a *API) switchCompany(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetUserSession(r.Context())
	if !ok {
		types.WriteErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req switchCompanyRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	next, err := a.service.SwitchCompany(r.Context(), session, req.Slug)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	if err := a.sessions.Issue(w, next); err != nil {
		a.logger.Errorf("failed to issue session: %v", err)
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, sessionResponse{
		UserID:  next.UserID,
		Email:   next.Email,
		Company: next.Company,
	})
}

type switchProjectRequest struct {
	Slug string `json:"slug" validate:"required"`
}

func (a *API) switchProject(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetUserSession(r.Context())
	if !ok {
		types.WriteErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req switchProjectRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	next, err := a.service.SwitchProject(r.Context(), session, req.Slug)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	if err := a.sessions.Issue(w, next); err != nil {
		a.logger.Errorf("failed to issue session: %v", err)
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, sessionResponse{
		UserID:  next.UserID,
		Email:   next.Email,
		Company: next.Company,
		Project: next.Project,
	})
}
