package http

import (
	"strings"
	"time"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/planner"
)

// --- Request DTOs ---

type scheduleReq struct {
	Text             string `json:"text" binding:"required"`
	ConfirmDuplicate bool   `json:"confirm_duplicate"`
}

func (r scheduleReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	return nil
}

func (r scheduleReq) toInput(history []model.ConversationTurn) planner.ScheduleInput {
	return planner.ScheduleInput{
		Text:             r.Text,
		History:          history,
		ConfirmDuplicate: r.ConfirmDuplicate,
	}
}

// ---

type parseReq struct {
	Text string `json:"text" binding:"required"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	return nil
}

func (r parseReq) toInput(history []model.ConversationTurn) planner.ParseInput {
	return planner.ParseInput{
		Text:    r.Text,
		History: history,
	}
}

// ---

type upcomingReq struct {
	Limit int `form:"limit"`
}

func (r upcomingReq) validate() error {
	if r.Limit < 0 {
		return errInvalidLimit
	}
	return nil
}

func (r upcomingReq) toInput() planner.UpcomingInput {
	return planner.UpcomingInput{Limit: r.Limit}
}

// --- Response DTOs ---

type eventResp struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Link     string    `json:"link,omitempty"`
	Location string    `json:"location,omitempty"`
	AllDay   bool      `json:"all_day"`
}

func newEventResp(ev planner.ScheduledEvent) eventResp {
	return eventResp{
		ID:       ev.ID,
		Title:    ev.Title,
		Start:    ev.Start,
		End:      ev.End,
		Link:     ev.Link,
		Location: ev.Location,
		AllDay:   ev.AllDay,
	}
}

type taskResp struct {
	Title           string     `json:"title"`
	Start           *time.Time `json:"start,omitempty"`
	DateOnly        bool       `json:"date_only,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	Source          string     `json:"source"`
}

func newTaskResp(t planner.ParsedTask) taskResp {
	resp := taskResp{
		Title:           t.Title,
		DateOnly:        t.DateOnly,
		DurationMinutes: int(t.Duration / time.Minute),
		Source:          string(t.Source),
	}
	if !t.Start.IsZero() {
		start := t.Start
		resp.Start = &start
	}
	return resp
}

type scheduleResp struct {
	Message      string    `json:"message"`
	Event        eventResp `json:"event"`
	Task         taskResp  `json:"task"`
	SlotSearched bool      `json:"slot_searched"`
}

func (h *handler) newScheduleResp(out planner.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Message:      out.Message,
		Event:        newEventResp(out.Event),
		Task:         newTaskResp(out.Task),
		SlotSearched: out.SlotSearched,
	}
}

type parseResp struct {
	Status   string    `json:"status"`
	Task     *taskResp `json:"task,omitempty"`
	Question string    `json:"question,omitempty"`
	Reason   string    `json:"reason,omitempty"`
}

func (h *handler) newParseResp(out planner.ParseOutput) parseResp {
	r := out.Result
	resp := parseResp{
		Status:   string(r.Status),
		Question: r.Question,
		Reason:   r.Reason,
	}
	if r.Status == planner.ParseComplete {
		task := newTaskResp(r.Task)
		resp.Task = &task
	}
	return resp
}

type upcomingResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newUpcomingResp(out planner.UpcomingOutput) upcomingResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return upcomingResp{Events: events}
}

type historyResp struct {
	Turns []model.ConversationTurn `json:"turns"`
}

func (h *handler) newHistoryResp(turns []model.ConversationTurn) historyResp {
	if turns == nil {
		turns = []model.ConversationTurn{}
	}
	return historyResp{Turns: turns}
}

type homeResp struct {
	Connected bool        `json:"connected"`
	SignedIn  bool        `json:"signed_in"`
	LoginURL  string      `json:"login_url,omitempty"`
	Notice    string      `json:"notice,omitempty"`
	Events    []eventResp `json:"events"`
}

func (h *handler) newHomeResp(sc model.Scope, out planner.UpcomingOutput, connected bool, notice string) homeResp {
	home := homeResp{
		Connected: connected,
		SignedIn:  sc.Authenticated,
		Notice:    notice,
		Events:    h.newUpcomingResp(out).Events,
	}
	if !sc.Authenticated {
		home.LoginURL = "/login"
	}
	return home
}
