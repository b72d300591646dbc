package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"joinery/internal/export"
	"joinery/internal/service"
	"joinery/internal/store"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/projects", h.handleListProjects)
	r.Post("/projects", h.handleCreateProject)
	r.Delete("/projects/{projectID}", h.handleDeleteProject)
	r.Get("/projects/{projectID}/schedule", h.handleProjectSchedule)
	r.Get("/projects/{projectID}/schedule.ics", h.handleProjectScheduleFeed)
	r.Post("/projects/{projectID}/processes", h.handleCreateProcess)
	r.Delete("/processes/{processID}", h.handleDeleteProcess)

	r.Get("/calendar", h.handleCalendar)
	r.Get("/capacity", h.handleCapacity)
	r.Get("/value-projection", h.handleValueProjection)
	r.Get("/export/plan.xlsx", h.handleExportPlan)

	r.Get("/users", h.handleListUsers)
	r.Post("/users", h.handleCreateUser)
	r.Get("/holidays", h.handleListHolidays)
	r.Post("/holidays", h.handleCreateHoliday)
	r.Delete("/holidays/{holidayID}", h.handleDeleteHoliday)

	return r
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.ListProjects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to load projects", nil)
		return
	}
	resp := projectsResponse{Items: make([]projectView, 0, len(projects))}
	for _, project := range projects {
		resp.Items = append(resp.Items, mapProject(project))
	}
	writeJSON(w, http.StatusOK, resp)
}

type createProjectRequest struct {
	Name          string  `json:"name"`
	StartDate     string  `json:"start_date"`
	DeliveryDate  string  `json:"delivery_date"`
	ValueGBP      string  `json:"value_gbp"`
	ExpectedHours float64 `json:"expected_hours"`
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "name required", map[string]string{"name": "required"})
		return
	}
	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid start_date", map[string]string{"start_date": "invalid"})
		return
	}
	deliveryDate, err := parseOptionalDate(req.DeliveryDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid delivery_date", map[string]string{"delivery_date": "invalid"})
		return
	}
	value := decimal.Zero
	if strings.TrimSpace(req.ValueGBP) != "" {
		value, err = decimal.NewFromString(strings.TrimSpace(req.ValueGBP))
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid value_gbp", map[string]string{"value_gbp": "invalid"})
			return
		}
	}
	input := store.ProjectInput{
		Name:         strings.TrimSpace(req.Name),
		StartDate:    startDate,
		DeliveryDate: deliveryDate,
		ValueGBP:     value,
	}
	if req.ExpectedHours > 0 {
		input.ExpectedHours = &req.ExpectedHours
	}
	id, err := h.service.CreateProject(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to create project", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (h *Handler) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid project id", map[string]string{"project_id": "invalid"})
		return
	}
	if err := h.service.DeleteProject(r.Context(), projectID); err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to delete project", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleProjectSchedule(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid project id", map[string]string{"project_id": "invalid"})
		return
	}
	_, segments, err := h.service.ProjectSchedule(r.Context(), projectID)
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "project not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, mapSegments(projectID, segments))
}

func (h *Handler) handleProjectScheduleFeed(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid project id", map[string]string{"project_id": "invalid"})
		return
	}
	project, segments, err := h.service.ProjectSchedule(r.Context(), projectID)
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "project not found", nil)
		return
	}
	feed := export.ScheduleFeed(project, segments)
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=project-%d-schedule.ics", projectID))
	_, _ = w.Write([]byte(feed))
}

type createProcessRequest struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	EstimatedHours float64 `json:"estimated_hours"`
	SortOrder      int     `json:"sort_order"`
}

func (h *Handler) handleCreateProcess(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid project id", map[string]string{"project_id": "invalid"})
		return
	}
	var req createProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "code required", map[string]string{"code": "required"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "name required", map[string]string{"name": "required"})
		return
	}
	if req.EstimatedHours < 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid estimated_hours", map[string]string{"estimated_hours": ">= 0"})
		return
	}
	input := store.ProcessInput{
		ProjectID: projectID,
		Code:      strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:      strings.TrimSpace(req.Name),
		SortOrder: req.SortOrder,
	}
	if req.EstimatedHours > 0 {
		input.EstimatedHours = &req.EstimatedHours
	}
	id, err := h.service.CreateProcess(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to create process", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (h *Handler) handleDeleteProcess(w http.ResponseWriter, r *http.Request) {
	processID, err := parseID(chi.URLParam(r, "processID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid process id", map[string]string{"process_id": "invalid"})
		return
	}
	if err := h.service.DeleteProcess(r.Context(), processID); err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to delete process", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	from, err := parseDate(r.URL.Query().Get("from"))
	if err != nil {
		from = time.Now()
	}
	weeks := parseWeeks(r.URL.Query().Get("weeks"), 8)
	views, err := h.service.CalendarRange(r.Context(), from, weeks)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to build calendar", nil)
		return
	}
	resp := calendarResponse{Weeks: make([]weekView, 0, len(views))}
	for _, view := range views {
		resp.Weeks = append(resp.Weeks, mapWeekView(view))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCapacity(w http.ResponseWriter, r *http.Request) {
	week, err := parseDate(r.URL.Query().Get("week"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid week", map[string]string{"week": "invalid"})
		return
	}
	view, err := h.service.WeekViewFor(r.Context(), week)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to build week view", nil)
		return
	}
	writeJSON(w, http.StatusOK, mapWeekView(view))
}

func (h *Handler) handleValueProjection(w http.ResponseWriter, r *http.Request) {
	from, err := parseDate(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid from", map[string]string{"from": "invalid"})
		return
	}
	to, err := parseDate(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid to", map[string]string{"to": "invalid"})
		return
	}
	projection, err := h.service.ValueProjectionFor(r.Context(), from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to build projection", nil)
		return
	}
	writeJSON(w, http.StatusOK, mapValueProjection(projection))
}

func (h *Handler) handleExportPlan(w http.ResponseWriter, r *http.Request) {
	from, err := parseDate(r.URL.Query().Get("from"))
	if err != nil {
		from = time.Now()
	}
	weeks := parseWeeks(r.URL.Query().Get("weeks"), 8)
	views, err := h.service.CalendarRange(r.Context(), from, weeks)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to build plan", nil)
		return
	}
	buf, filename, err := export.PlanWorkbook(views)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to render workbook", nil)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to load users", nil)
		return
	}
	resp := usersResponse{Items: make([]userView, 0, len(users))}
	for _, user := range users {
		resp.Items = append(resp.Items, userView{ID: user.ID, Name: user.Name})
	}
	writeJSON(w, http.StatusOK, resp)
}

type createUserRequest struct {
	Name string `json:"name"`
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "name required", map[string]string{"name": "required"})
		return
	}
	id, err := h.service.CreateUser(r.Context(), store.UserInput{Name: strings.TrimSpace(req.Name)})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to create user", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (h *Handler) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.service.ListHolidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to load holidays", nil)
		return
	}
	resp := holidaysResponse{Items: make([]holidayView, 0, len(holidays))}
	for _, holiday := range holidays {
		resp.Items = append(resp.Items, mapHoliday(holiday))
	}
	writeJSON(w, http.StatusOK, resp)
}

type createHolidayRequest struct {
	UserID    int64  `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

func (h *Handler) handleCreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req createHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if req.UserID <= 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "user_id required", map[string]string{"user_id": "required"})
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid start_date", map[string]string{"start_date": "invalid"})
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid end_date", map[string]string{"end_date": "invalid"})
		return
	}
	if endDate.Before(startDate) {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "end_date before start_date", map[string]string{"end_date": "invalid"})
		return
	}
	id, err := h.service.CreateHoliday(r.Context(), store.HolidayInput{
		UserID:    req.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     strings.TrimSpace(req.Notes),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to create holiday", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (h *Handler) handleDeleteHoliday(w http.ResponseWriter, r *http.Request) {
	holidayID, err := parseID(chi.URLParam(r, "holidayID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid holiday id", map[string]string{"holiday_id": "invalid"})
		return
	}
	if err := h.service.DeleteHoliday(r.Context(), holidayID); err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to delete holiday", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
