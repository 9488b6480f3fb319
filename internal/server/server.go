// Package server exposes the opportunity pipeline over HTTP as a small JSON
// API, for dashboards and integrations that do not go through the CLI.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/marion-inge/bdnavigator/internal/assessment"
	"github.com/marion-inge/bdnavigator/internal/service"
)

// Server wires the services into an HTTP handler.
type Server struct {
	opportunities service.OpportunityService
	pipeline      service.PipelineService
	assessor      assessment.Service
	logger        *log.Logger
}

// NewServer creates a Server. logger may be nil to disable request logging.
func NewServer(opps service.OpportunityService, pipeline service.PipelineService, assessor assessment.Service, logger *log.Logger) *Server {
	return &Server{
		opportunities: opps,
		pipeline:      pipeline,
		assessor:      assessor,
		logger:        logger,
	}
}

// Router builds the full route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/opportunities", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/opportunities", s.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/opportunities/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/opportunities/{id}", s.handleUpdateDetails).Methods(http.MethodPatch)
	api.HandleFunc("/opportunities/{id}", s.handleDelete).Methods(http.MethodDelete)

	api.HandleFunc("/opportunities/{id}/scoring", s.handleSaveScoring).Methods(http.MethodPut)
	api.HandleFunc("/opportunities/{id}/scoring/answers", s.handleSaveAnswers).Methods(http.MethodPost)
	api.HandleFunc("/opportunities/{id}/detailed-scoring", s.handleSaveDetailedScoring).Methods(http.MethodPut)
	api.HandleFunc("/opportunities/{id}/business-case", s.handleSaveBusinessCase).Methods(http.MethodPut)
	api.HandleFunc("/opportunities/{id}/analysis", s.handleSaveAnalysis).Methods(http.MethodPut)

	api.HandleFunc("/opportunities/{id}/advance", s.handleAdvance).Methods(http.MethodPost)
	api.HandleFunc("/opportunities/{id}/revert", s.handleRevert).Methods(http.MethodPost)
	api.HandleFunc("/opportunities/{id}/gates", s.handleDecide).Methods(http.MethodPost)
	api.HandleFunc("/opportunities/{id}/gates/{gateID}", s.handleEditGate).Methods(http.MethodPut)
	api.HandleFunc("/opportunities/{id}/gates/{gateID}", s.handleDeleteGate).Methods(http.MethodDelete)

	api.HandleFunc("/opportunities/{id}/assessment", s.handleAssess).Methods(http.MethodPost)

	return r
}

// Run serves the API on addr until ctx is cancelled, then shuts down with a
// short drain window.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if s.logger != nil {
			s.logger.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
		}
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
