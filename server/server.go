// Package server exposes the task store and its cached views over a small
// JSON-over-HTTP RPC surface, with the browser client mounted under /web/.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"time"

	internalstrings "github.com/tasknest/tasknest/internal/strings"
	"github.com/tasknest/tasknest/task"
	"github.com/tasknest/tasknest/view"
	"github.com/tasknest/tasknest/web"
)

// Views supplies filtered task listings.
type Views interface {
	Get(filter view.Filter) ([]view.Row, error)
}

// Options configures a task server.
type Options struct {
	Store  *task.Store
	Cache  Views
	Logger *log.Logger
}

// Server handles task RPCs.
type Server struct {
	store  *task.Store
	views  Views
	logger *log.Logger
}

const shutdownTimeout = 5 * time.Second

// NewServer creates a task server.
func NewServer(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "tasknest: ", log.LstdFlags)
	}
	views := opts.Cache
	if views == nil {
		views = view.New(opts.Store)
	}
	return &Server{
		store:  opts.Store,
		views:  views,
		logger: logger,
	}, nil
}

// Handler returns the HTTP handler for task RPCs.
func (s *Server) Handler() http.Handler {
	return s.handler("")
}

func (s *Server) handler(baseURL string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/create", s.handleTasksCreate)
	mux.HandleFunc("/tasks/update", s.handleTasksUpdate)
	mux.HandleFunc("/tasks/view", s.handleTasksView)
	mux.HandleFunc("/schema", s.handleSchema)
	mux.HandleFunc("/status", s.handleStatus)
	webHandler := web.NewHandler(web.Options{BaseURL: baseURL})
	mux.Handle("/web/", webHandler)
	mux.Handle("/web", http.RedirectHandler("/web/tasks", http.StatusFound))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/web/tasks", http.StatusFound)
	})
	return s.recoverHandler(mux)
}

// Serve runs the server on the given address.
func (s *Server) Serve(addr string) error {
	server := &http.Server{
		Addr:     addr,
		Handler:  s.handler(resolveWebBaseURL(addr)),
		ErrorLog: s.logger,
	}

	listenErrs := make(chan error, 1)
	go func() {
		listenErrs <- server.ListenAndServe()
	}()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	select {
	case err := <-listenErrs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logf("server stopped: %v", err)
			return err
		}
		return nil
	case <-interrupts:
		s.logf("interrupt received, shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		shutdownErr := server.Shutdown(shutdownCtx)
		cancel()
		listenErr := <-listenErrs
		if errors.Is(listenErr, http.ErrServerClosed) {
			listenErr = nil
		}
		if errors.Is(shutdownErr, http.ErrServerClosed) {
			shutdownErr = nil
		}
		return errors.Join(shutdownErr, listenErr)
	}
}

func resolveWebBaseURL(addr string) string {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return internalstrings.TrimTrailingSlash(trimmed)
	}
	host := trimmed
	if strings.HasPrefix(host, ":") {
		host = "127.0.0.1" + host
	}
	if strings.HasPrefix(host, "0.0.0.0:") {
		host = "127.0.0.1:" + strings.TrimPrefix(host, "0.0.0.0:")
	}
	return "http://" + host
}

func (s *Server) handleTasksCreate(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload createRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	created, err := s.store.Create(payload.Description, task.CreateOptions{ParentID: payload.ParentID})
	if err != nil {
		s.writeError(w, r, statusForError(err), err)
		return
	}
	writeJSON(w, http.StatusOK, createResponse{ID: created.ID})
}

func (s *Server) handleTasksUpdate(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload updateRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if _, err := s.store.UpdateStatus(payload.ID, task.Status(payload.Status)); err != nil {
		s.writeError(w, r, statusForError(err), err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) handleTasksView(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodPost) {
		return
	}
	var payload viewRequest
	if err := decodeJSON(r, &payload); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	filter, err := view.ParseFilter(payload.Filter)
	if err != nil {
		s.writeError(w, r, statusForError(err), err)
		return
	}
	rows, err := s.views.Get(filter)
	if err != nil {
		s.writeError(w, r, statusForError(err), err)
		return
	}
	tasks := make([]viewRow, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, viewRow{
			ID:          row.ID,
			Description: row.Description,
			Status:      row.Status,
			Depth:       row.Depth,
		})
	}
	writeJSON(w, http.StatusOK, viewResponse{Tasks: tasks})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodGet) {
		return
	}
	tables, err := s.store.Schema()
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, schemaResponse{Tables: tables})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodGet) {
		return
	}
	total, err := s.store.Count()
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	counts, err := s.store.Counts()
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Total: total, Counts: counts})
}

func statusForError(err error) int {
	switch kindForError(err) {
	case task.KindValidation, task.KindParentNotActive:
		return http.StatusBadRequest
	case task.KindTaskNotFound, task.KindParentNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func kindForError(err error) string {
	if errors.Is(err, view.ErrInvalidFilter) {
		return task.KindValidation
	}
	return task.Kind(err)
}

func (s *Server) recoverHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseTracker{ResponseWriter: w}
		defer func() {
			if recovered := recover(); recovered != nil {
				s.logf("panic handling request %s %s: %v\n%s", r.Method, r.URL.Path, recovered, debug.Stack())
				if writer.wroteHeader {
					return
				}
				writeJSON(writer, http.StatusInternalServerError, errorResponse{
					Error: "internal server error",
					Kind:  task.KindInternal,
				})
			}
		}()
		next.ServeHTTP(writer, r)
	})
}

type createRequest struct {
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id"`
}

type createResponse struct {
	ID int64 `json:"id"`
}

type updateRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type viewRequest struct {
	Filter string `json:"filter"`
}

type viewRow struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	Status      task.Status `json:"status"`
	Depth       int         `json:"depth"`
}

type viewResponse struct {
	Tasks []viewRow `json:"tasks"`
}

type schemaResponse struct {
	Tables []task.TableSchema `json:"tables"`
}

type statusResponse struct {
	Total  int                 `json:"total"`
	Counts map[task.Status]int `json:"counts"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	s.writeError(w, r, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
	return false
}

func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("unexpected extra JSON data")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logRequestError(r, status, err)
	kind := kindForError(err)
	// Malformed requests (bad JSON, wrong method) carry no task error kind.
	if kind == task.KindInternal && status < http.StatusInternalServerError {
		kind = task.KindValidation
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

func (s *Server) logRequestError(r *http.Request, status int, err error) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Printf("request %s %s failed (%d): %v", r.Method, r.URL.Path, status, err)
}

func (s *Server) logf(format string, args ...any) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Printf(format, args...)
}

type responseTracker struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseTracker) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseTracker) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(data)
}

func (w *responseTracker) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
