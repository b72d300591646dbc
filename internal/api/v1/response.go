package v1

import (
	"joinery/internal/domain"
	"joinery/internal/plan"
	"joinery/internal/service"
)

type projectsResponse struct {
	Items []projectView `json:"items"`
}

type projectView struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Status        string        `json:"status"`
	StartDate     *string       `json:"start_date,omitempty"`
	DeliveryDate  *string       `json:"delivery_date,omitempty"`
	ValueGBP      string        `json:"value_gbp"`
	ExpectedHours float64       `json:"expected_hours"`
	Processes     []processView `json:"processes"`
}

type processView struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	EstimatedHours float64 `json:"estimated_hours"`
	SortOrder      int     `json:"sort_order"`
}

type scheduleResponse struct {
	ProjectID int64         `json:"project_id"`
	Segments  []segmentView `json:"segments"`
}

type segmentView struct {
	ProcessID int64   `json:"process_id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	SortOrder int     `json:"sort_order"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	Hours     float64 `json:"hours"`
	Color     string  `json:"color"`
}

type calendarResponse struct {
	Weeks []weekView `json:"weeks"`
}

type weekView struct {
	WeekStart  string            `json:"week_start"`
	WeekEnd    string            `json:"week_end"`
	Capacity   float64           `json:"capacity"`
	Demand     float64           `json:"demand"`
	Free       float64           `json:"free"`
	Overbooked bool              `json:"overbooked"`
	Projects   []projectWeekView `json:"projects"`
}

type projectWeekView struct {
	ProjectID   int64       `json:"project_id"`
	ProjectName string      `json:"project_name"`
	Chunks      []chunkView `json:"chunks"`
}

type chunkView struct {
	ProcessID        int64   `json:"process_id"`
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	SortOrder        int     `json:"sort_order"`
	ProportionOfWeek float64 `json:"proportion_of_week"`
	Hours            float64 `json:"hours"`
	Color            string  `json:"color"`
}

type valueProjectionResponse struct {
	From     string               `json:"from"`
	To       string               `json:"to"`
	Total    string               `json:"total"`
	Projects []projectedValueView `json:"projects"`
}

type projectedValueView struct {
	ProjectID   int64  `json:"project_id"`
	ProjectName string `json:"project_name"`
	Amount      string `json:"amount"`
}

type usersResponse struct {
	Items []userView `json:"items"`
}

type userView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type holidaysResponse struct {
	Items []holidayView `json:"items"`
}

type holidayView struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes,omitempty"`
}

func mapProject(project domain.Project) projectView {
	view := projectView{
		ID:            project.ID,
		Name:          project.Name,
		Status:        string(project.Status),
		ValueGBP:      project.ValueGBP.StringFixed(2),
		ExpectedHours: project.Hours(),
		Processes:     make([]processView, 0, len(project.Processes)),
	}
	if project.StartDate != nil {
		s := project.StartDate.Format(dateLayout)
		view.StartDate = &s
	}
	if project.DeliveryDate != nil {
		s := project.DeliveryDate.Format(dateLayout)
		view.DeliveryDate = &s
	}
	for _, process := range project.Processes {
		view.Processes = append(view.Processes, processView{
			ID:             process.ID,
			Code:           process.Code,
			Name:           process.Name,
			EstimatedHours: process.Hours(),
			SortOrder:      process.SortOrder,
		})
	}
	return view
}

func mapSegments(projectID int64, segments []domain.ScheduledSegment) scheduleResponse {
	resp := scheduleResponse{ProjectID: projectID, Segments: make([]segmentView, 0, len(segments))}
	for _, seg := range segments {
		resp.Segments = append(resp.Segments, segmentView{
			ProcessID: seg.ProcessID,
			Code:      seg.Code,
			Name:      seg.Name,
			SortOrder: seg.SortOrder,
			Start:     seg.Start.Format(dateLayout),
			End:       seg.End.Format(dateLayout),
			Hours:     seg.Hours,
			Color:     plan.ColorForCode(seg.Code),
		})
	}
	return resp
}

func mapWeekView(view service.WeekView) weekView {
	mapped := weekView{
		WeekStart:  view.Load.WeekStart.Format(dateLayout),
		WeekEnd:    view.Load.WeekEnd.Format(dateLayout),
		Capacity:   view.Load.Capacity,
		Demand:     view.Load.Demand,
		Free:       view.Load.Free,
		Overbooked: view.Load.Overbooked,
		Projects:   make([]projectWeekView, 0, len(view.Projects)),
	}
	for _, cells := range view.Projects {
		project := projectWeekView{
			ProjectID:   cells.Project.ID,
			ProjectName: cells.Project.Name,
			Chunks:      make([]chunkView, 0, len(cells.Chunks)),
		}
		for _, chunk := range cells.Chunks {
			project.Chunks = append(project.Chunks, chunkView{
				ProcessID:        chunk.ProcessID,
				Code:             chunk.Code,
				Name:             chunk.Name,
				SortOrder:        chunk.SortOrder,
				ProportionOfWeek: chunk.ProportionOfWeek,
				Hours:            chunk.Hours,
				Color:            chunk.Color,
			})
		}
		mapped.Projects = append(mapped.Projects, project)
	}
	return mapped
}

func mapValueProjection(projection service.ValueProjection) valueProjectionResponse {
	resp := valueProjectionResponse{
		From:     projection.RangeStart.Format(dateLayout),
		To:       projection.RangeEnd.Format(dateLayout),
		Total:    projection.Total.StringFixed(2),
		Projects: make([]projectedValueView, 0, len(projection.Projects)),
	}
	for _, pv := range projection.Projects {
		resp.Projects = append(resp.Projects, projectedValueView{
			ProjectID:   pv.Project.ID,
			ProjectName: pv.Project.Name,
			Amount:      pv.Amount.StringFixed(2),
		})
	}
	return resp
}

func mapHoliday(holiday domain.Holiday) holidayView {
	return holidayView{
		ID:        holiday.ID,
		UserID:    holiday.UserID,
		StartDate: holiday.StartDate.Format(dateLayout),
		EndDate:   holiday.EndDate.Format(dateLayout),
		Notes:     holiday.Notes,
	}
}
