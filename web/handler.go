package web

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	internalstrings "github.com/tasknest/tasknest/internal/strings"
	"github.com/tasknest/tasknest/task"
	"github.com/tasknest/tasknest/view"
)

// Options configures the tasknest web handler.
type Options struct {
	BaseURL string
}

// Handler serves the tasknest web client.
type Handler struct {
	baseURL   string
	client    *http.Client
	mux       *http.ServeMux
	templates *templateWrapper

	mu    sync.Mutex
	rows  []taskRow
	draft *taskFormDraft
}

// NewHandler creates a new web handler.
func NewHandler(opts Options) *Handler {
	handler := &Handler{
		baseURL:   internalstrings.TrimTrailingSlash(opts.BaseURL),
		client:    &http.Client{},
		templates: newTemplateWrapper(),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/web/tasks", handler.handleTasks)
	mux.HandleFunc("/web/tasks/create", handler.handleTasksCreate)
	mux.HandleFunc("/web/tasks/update", handler.handleTasksUpdate)
	handler.mux = mux

	if handler.baseURL != "" {
		go handler.seed(handler.baseURL)
	}
	return handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type templateWrapper struct {
	tmpl *template.Template
}

func newTemplateWrapper() *templateWrapper {
	return &templateWrapper{tmpl: newTemplates()}
}

func (tw *templateWrapper) Render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = tw.tmpl.ExecuteTemplate(w, "page", data)
}

type selectOption struct {
	Value string
	Label string
}

type viewTab struct {
	Name     string
	Label    string
	Selected bool
}

type statusCount struct {
	Status string
	Count  int
}

type taskListItem struct {
	taskRow
	PaddingLeft int
}

type pageData struct {
	View           string
	Views          []viewTab
	Tasks          []taskListItem
	SelectedTask   *taskListItem
	SelectedTaskID int64
	Create         bool
	TaskForm       taskFormValues
	TaskError      string
	StatusOptions  []selectOption
	ParentOptions  []selectOption
	Summary        []statusCount
	Total          int
}

type taskFormValues struct {
	Description string
	ParentID    string
	Status      string
}

type taskFormDraft struct {
	mode      string
	id        int64
	err       string
	values    taskFormValues
	hasValues bool
}

const indentWidth = 18

func (h *Handler) handleTasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	baseURL := h.requestBaseURL(r)

	filter := view.FilterNonClear
	fetchError := ""
	if raw := trimmedQueryValue(r, "view"); raw != "" {
		parsed, err := view.ParseFilter(raw)
		if err != nil {
			fetchError = err.Error()
		} else {
			filter = parsed
		}
	}

	rows, err := h.refreshTasks(r.Context(), baseURL, filter)
	if err != nil && fetchError == "" {
		fetchError = err.Error()
	}
	summary, total, summaryErr := h.fetchStatusSummary(r.Context(), baseURL)
	if summaryErr != nil && fetchError == "" {
		fetchError = summaryErr.Error()
	}

	items := listItems(rows)
	createMode := r.URL.Query().Get("create") == "1"
	selectedID := parseTaskID(trimmedQueryValue(r, "id"))
	selectedTask := (*taskListItem)(nil)
	if !createMode {
		selectedTask = selectItem(items, selectedID)
		if selectedTask == nil && len(items) > 0 {
			selectedTask = &items[0]
			selectedID = selectedTask.ID
		}
	} else {
		selectedID = 0
	}

	formValues := defaultTaskFormValues()
	if selectedTask != nil {
		formValues.Status = string(selectedTask.Status)
	}

	taskError := fetchError
	if draft := h.consumeDraft(createMode, selectedID); draft != nil {
		if draft.err != "" {
			taskError = draft.err
		}
		if draft.hasValues {
			formValues = draft.values
		}
		if draft.mode == "create" {
			createMode = true
			selectedTask = nil
			selectedID = 0
		}
	}

	data := pageData{
		View:           string(filter),
		Views:          viewTabs(filter),
		Tasks:          items,
		SelectedTask:   selectedTask,
		SelectedTaskID: selectedID,
		Create:         createMode,
		TaskForm:       formValues,
		TaskError:      taskError,
		StatusOptions:  statusOptions(),
		ParentOptions:  parentOptions(rows),
		Summary:        summary,
		Total:          total,
	}
	h.templates.Render(w, data)
}

func (h *Handler) handleTasksCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	viewName := trimmedQueryValue(r, "view")
	if err := r.ParseForm(); err != nil {
		h.setDraft(taskFormDraft{mode: "create", err: "invalid form input"})
		http.Redirect(w, r, createRedirectPath(viewName), http.StatusSeeOther)
		return
	}
	values := taskFormValuesFromRequest(r)
	parentID, err := values.parentID()
	if err != nil {
		h.setDraft(taskFormDraft{mode: "create", err: err.Error(), values: values, hasValues: true})
		http.Redirect(w, r, createRedirectPath(viewName), http.StatusSeeOther)
		return
	}

	var response createResponse
	request := createRequest{Description: values.Description, ParentID: parentID}
	if err := postJSON(r.Context(), h.client, h.requestBaseURL(r), "/tasks/create", request, &response); err != nil {
		h.setDraft(taskFormDraft{mode: "create", err: err.Error(), values: values, hasValues: true})
		http.Redirect(w, r, createRedirectPath(viewName), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, taskRedirectPath(viewName, response.ID), http.StatusSeeOther)
}

func (h *Handler) handleTasksUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	viewName := trimmedQueryValue(r, "view")
	taskID := parseTaskID(trimmedQueryValue(r, "id"))
	if err := r.ParseForm(); err != nil {
		h.setDraft(taskFormDraft{mode: "update", id: taskID, err: "invalid form input"})
		http.Redirect(w, r, taskRedirectPath(viewName, taskID), http.StatusSeeOther)
		return
	}
	values := taskFormValuesFromRequest(r)
	if taskID <= 0 {
		h.setDraft(taskFormDraft{mode: "update", err: "task id is required", values: values, hasValues: true})
		http.Redirect(w, r, taskRedirectPath(viewName, 0), http.StatusSeeOther)
		return
	}
	status, err := parseStatusValue(values.Status)
	if err != nil {
		h.setDraft(taskFormDraft{mode: "update", id: taskID, err: err.Error(), values: values, hasValues: true})
		http.Redirect(w, r, taskRedirectPath(viewName, taskID), http.StatusSeeOther)
		return
	}

	request := updateRequest{ID: taskID, Status: status}
	if err := postJSON(r.Context(), h.client, h.requestBaseURL(r), "/tasks/update", request, &okResponse{}); err != nil {
		h.setDraft(taskFormDraft{mode: "update", id: taskID, err: err.Error(), values: values, hasValues: true})
	}
	http.Redirect(w, r, taskRedirectPath(viewName, taskID), http.StatusSeeOther)
}

func (h *Handler) requestBaseURL(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func (h *Handler) refreshTasks(ctx context.Context, baseURL string, filter view.Filter) ([]taskRow, error) {
	var response viewResponse
	err := postJSON(ctx, h.client, baseURL, "/tasks/view", viewRequest{Filter: string(filter)}, &response)
	if err != nil {
		h.mu.Lock()
		cached := append([]taskRow(nil), h.rows...)
		h.mu.Unlock()
		return cached, err
	}
	h.mu.Lock()
	h.rows = append([]taskRow(nil), response.Tasks...)
	h.mu.Unlock()
	return response.Tasks, nil
}

func (h *Handler) fetchStatusSummary(ctx context.Context, baseURL string) ([]statusCount, int, error) {
	var response statusResponse
	if err := getJSON(ctx, h.client, baseURL, "/status", &response); err != nil {
		return nil, 0, err
	}
	summary := make([]statusCount, 0, len(task.ValidStatuses()))
	for _, status := range task.ValidStatuses() {
		summary = append(summary, statusCount{Status: string(status), Count: response.Counts[status]})
	}
	return summary, response.Total, nil
}

func (h *Handler) seed(baseURL string) {
	for i := 0; i < 25; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		_, tasksErr := h.refreshTasks(ctx, baseURL, view.FilterNonClear)
		_, _, summaryErr := h.fetchStatusSummary(ctx, baseURL)
		cancel()
		if tasksErr == nil && summaryErr == nil {
			return
		}
		time.Sleep(120 * time.Millisecond)
	}
}

func (h *Handler) consumeDraft(createMode bool, selectedID int64) *taskFormDraft {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.draft == nil {
		return nil
	}
	draft := h.draft
	match := false
	if draft.mode == "create" && createMode {
		match = true
	}
	if draft.mode == "update" {
		if draft.id == 0 && !createMode {
			match = true
		}
		if draft.id != 0 && draft.id == selectedID {
			match = true
		}
	}
	if !match {
		return nil
	}
	h.draft = nil
	return draft
}

func (h *Handler) setDraft(draft taskFormDraft) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft = &draft
}

func defaultTaskFormValues() taskFormValues {
	return taskFormValues{Status: string(task.StatusActive)}
}

func taskFormValuesFromRequest(r *http.Request) taskFormValues {
	return taskFormValues{
		Description: r.FormValue("description"),
		ParentID:    trimmedFormValue(r, "parent_id"),
		Status:      trimmedFormValue(r, "status"),
	}
}

func (values taskFormValues) parentID() (*int64, error) {
	if values.ParentID == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(values.ParentID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parent must be a task id")
	}
	return &parsed, nil
}

func parseStatusValue(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("status is required")
	}
	status := task.Status(internalstrings.NormalizeUpperTrimSpace(trimmed))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status %q", trimmed)
	}
	return string(status), nil
}

func parseTaskID(value string) int64 {
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed <= 0 {
		return 0
	}
	return parsed
}

func trimmedQueryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func trimmedFormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func listItems(rows []taskRow) []taskListItem {
	items := make([]taskListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, taskListItem{taskRow: row, PaddingLeft: row.Depth * indentWidth})
	}
	return items
}

func selectItem(items []taskListItem, id int64) *taskListItem {
	if id <= 0 {
		return nil
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

func viewTabs(selected view.Filter) []viewTab {
	labels := []struct {
		filter view.Filter
		label  string
	}{
		{view.FilterActive, "Active"},
		{view.FilterNonClear, "Non-clear"},
		{view.FilterAll, "All"},
	}
	tabs := make([]viewTab, 0, len(labels))
	for _, entry := range labels {
		tabs = append(tabs, viewTab{
			Name:     string(entry.filter),
			Label:    entry.label,
			Selected: entry.filter == selected,
		})
	}
	return tabs
}

func statusOptions() []selectOption {
	options := make([]selectOption, 0, len(task.ValidStatuses()))
	for _, status := range task.ValidStatuses() {
		options = append(options, selectOption{Value: string(status), Label: string(status)})
	}
	return options
}

// parentOptions lists the tasks eligible to parent a new task. Every view
// includes all ACTIVE tasks, so filtering the current rows is complete.
func parentOptions(rows []taskRow) []selectOption {
	options := []selectOption{{Value: "", Label: "No parent"}}
	for _, row := range rows {
		if row.Status != task.StatusActive {
			continue
		}
		options = append(options, selectOption{
			Value: strconv.FormatInt(row.ID, 10),
			Label: fmt.Sprintf("#%d %s", row.ID, row.Description),
		})
	}
	return options
}

func tasksPagePath(viewName string) string {
	if viewName == "" {
		return "/web/tasks"
	}
	return "/web/tasks?view=" + viewName
}

func taskRedirectPath(viewName string, id int64) string {
	path := tasksPagePath(viewName)
	if id <= 0 {
		return path
	}
	return path + querySeparator(path) + "id=" + strconv.FormatInt(id, 10)
}

func createRedirectPath(viewName string) string {
	path := tasksPagePath(viewName)
	return path + querySeparator(path) + "create=1"
}

func querySeparator(path string) string {
	if strings.Contains(path, "?") {
		return "&"
	}
	return "?"
}

func writeMethodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
