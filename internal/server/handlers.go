package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/marion-inge/bdnavigator/internal/assessment"
	"github.com/marion-inge/bdnavigator/internal/domain"
	"github.com/marion-inge/bdnavigator/internal/service"
	"github.com/marion-inge/bdnavigator/internal/stagegate"
)

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	opps, err := s.opportunities.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opps)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Industry    string          `json:"industry"`
		Geography   string          `json:"geography"`
		Technology  string          `json:"technology"`
		Owner       string          `json:"owner"`
		Scoring     *domain.Scoring `json:"scoring"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "title is required"})
		return
	}

	o := &domain.Opportunity{
		Title:       req.Title,
		Description: req.Description,
		Industry:    req.Industry,
		Geography:   req.Geography,
		Technology:  req.Technology,
		Owner:       req.Owner,
	}
	if req.Scoring != nil {
		o.Scoring = *req.Scoring
	}
	if err := s.opportunities.Create(r.Context(), o); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	o, err := s.opportunities.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleUpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Industry    *string `json:"industry"`
		Geography   *string `json:"geography"`
		Technology  *string `json:"technology"`
		Owner       *string `json:"owner"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	o, err := s.opportunities.UpdateDetails(r.Context(), mux.Vars(r)["id"], service.DetailsUpdate{
		Title:       req.Title,
		Description: req.Description,
		Industry:    req.Industry,
		Geography:   req.Geography,
		Technology:  req.Technology,
		Owner:       req.Owner,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.opportunities.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSaveScoring(w http.ResponseWriter, r *http.Request) {
	var scoring domain.Scoring
	if !decodeBody(w, r, &scoring) {
		return
	}
	o, err := s.opportunities.SaveScoring(r.Context(), mux.Vars(r)["id"], scoring)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleSaveAnswers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers map[string]int `json:"answers"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	o, err := s.opportunities.SaveScoringFromAnswers(r.Context(), mux.Vars(r)["id"], req.Answers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleSaveDetailedScoring(w http.ResponseWriter, r *http.Request) {
	var d domain.DetailedScoring
	if !decodeBody(w, r, &d) {
		return
	}
	o, err := s.opportunities.SaveDetailedScoring(r.Context(), mux.Vars(r)["id"], &d)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleSaveBusinessCase(w http.ResponseWriter, r *http.Request) {
	var bc domain.BusinessCase
	if !decodeBody(w, r, &bc) {
		return
	}
	o, err := s.opportunities.SaveBusinessCase(r.Context(), mux.Vars(r)["id"], &bc)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleSaveAnalysis(w http.ResponseWriter, r *http.Request) {
	var a domain.Analysis
	if !decodeBody(w, r, &a) {
		return
	}
	o, err := s.opportunities.SaveAnalysis(r.Context(), mux.Vars(r)["id"], a)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	o, err := s.pipeline.Advance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleRevert(w http.ResponseWriter, r *http.Request) {
	o, err := s.pipeline.Revert(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Gate     domain.GateID   `json:"gate"`
		Decision domain.Decision `json:"decision"`
		Decider  string          `json:"decider"`
		Comment  string          `json:"comment"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	o, record, err := s.pipeline.Decide(r.Context(), mux.Vars(r)["id"], stagegate.DecisionInput{
		Gate:     req.Gate,
		Decision: req.Decision,
		Decider:  req.Decider,
		Comment:  req.Comment,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"opportunity": o,
		"record":      record,
	})
}

func (s *Server) handleEditGate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Decision domain.Decision `json:"decision"`
		Decider  string          `json:"decider"`
		Comment  string          `json:"comment"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	vars := mux.Vars(r)
	o, err := s.pipeline.EditGate(r.Context(), vars["id"], vars["gateID"], req.Decision, req.Decider, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleDeleteGate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	o, err := s.pipeline.DeleteGate(r.Context(), vars["id"], vars["gateID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language assessment.Language `json:"language"`
	}
	// Body is optional; default language is English.
	if r.ContentLength > 0 && !decodeBody(w, r, &req) {
		return
	}

	o, err := s.opportunities.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.assessor.Assess(r.Context(), assessment.Request{
		Title:       o.Title,
		Description: o.Description,
		Scoring:     o.Scoring,
		Language:    req.Language,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
