// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"net/http"

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

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v1/projects", a.listProjects)
	mux.Post("/api/v1/projects", a.createProject)
	mux.Get("/api/v1/projects/{slug}", a.getProject)
	mux.Put("/api/v1/projects/{slug}", a.updateProject)
	mux.Delete("/api/v1/projects/{slug}", a.deleteProject)
}

func requireSession(w http.ResponseWriter, r *http.Request) (*authentication.UserSession, bool) {
	session, ok := authentication.GetUserSession(r.Context())
	if !ok {
		types.WriteErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return session, true
}

func (a *API) listProjects(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	projects, err := a.service.ListProjects(r.Context(), session)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, projects)
}

type createProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

func (a *API) createProject(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req createProjectRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	project, err := a.service.CreateProject(r.Context(), session, req.Name, req.Description)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusCreated, project)
}

func (a *API) getProject(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	project, err := a.service.GetProject(r.Context(), session, chi.URLParam(r, "slug"))
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, project)
}

type updateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

func (a *API) updateProject(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req updateProjectRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		types.WriteError(w, err)
		return
	}

	project, err := a.service.UpdateProject(r.Context(), session, chi.URLParam(r, "slug"), req.Name, req.Description)
	if err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, project)
}

func (a *API) deleteProject(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteProject(r.Context(), session, chi.URLParam(r, "slug")); err != nil {
		types.WriteError(w, err)
		return
	}

	types.WriteResponse(w, http.StatusOK, nil)
}
