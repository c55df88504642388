package handlers

import (
	"context"
	"net/http"
	"time"

	middleware "github.com/sparkminds-jsc/modern-biz-insight-sub001/middlewares"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/services"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReferenceHandler struct {
	service services.ReferenceService
}

func NewReferenceHandler(service services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		service: service,
	}
}

func (h *ReferenceHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if err := utils.DecodeAndValidate(w, r, &employee); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	employee.Metadata.CreatedBy = username
	employee.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateEmployee(ctx, &employee)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Employee created successfully", created, http.StatusCreated)
}

func (h *ReferenceHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	employees, err := h.service.ListEmployees(ctx, r.URL.Query().Get("status"))
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Employees retrieved successfully", employees, http.StatusOK)
}

func (h *ReferenceHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid employee ID format", http.StatusBadRequest)
		return
	}

	var employee models.Employee
	if err := utils.DecodeAndValidate(w, r, &employee); err != nil {
		return
	}

	employee.Metadata.UpdatedBy = middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateEmployee(ctx, objectID, &employee)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Employee updated successfully", updated, http.StatusOK)
}

func (h *ReferenceHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := utils.DecodeAndValidate(w, r, &project); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	project.Metadata.CreatedBy = username
	project.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateProject(ctx, &project)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Project created successfully", created, http.StatusCreated)
}

func (h *ReferenceHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	projects, err := h.service.ListProjects(ctx, r.URL.Query().Get("status"))
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Projects retrieved successfully", projects, http.StatusOK)
}

func (h *ReferenceHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	var project models.Project
	if err := utils.DecodeAndValidate(w, r, &project); err != nil {
		return
	}

	project.Metadata.UpdatedBy = middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateProject(ctx, objectID, &project)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Project updated successfully", updated, http.StatusOK)
}

func (h *ReferenceHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var team models.Team
	if err := utils.DecodeAndValidate(w, r, &team); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	team.Metadata.CreatedBy = username
	team.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateTeam(ctx, &team)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Team created successfully", created, http.StatusCreated)
}

func (h *ReferenceHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	teams, err := h.service.ListTeams(ctx, r.URL.Query().Get("status"))
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Teams retrieved successfully", teams, http.StatusOK)
}

func (h *ReferenceHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid team ID format", http.StatusBadRequest)
		return
	}

	var team models.Team
	if err := utils.DecodeAndValidate(w, r, &team); err != nil {
		return
	}

	team.Metadata.UpdatedBy = middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateTeam(ctx, objectID, &team)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Team updated successfully", updated, http.StatusOK)
}
