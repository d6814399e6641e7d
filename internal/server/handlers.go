package server

import (
	"encoding/json"
	"net/http"

	"contentstudio/internal/domain"
	"contentstudio/internal/task"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) handleContentCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.ContentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := s.content.CreateContent(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleContentResearch(w http.ResponseWriter, r *http.Request) {
	var req domain.ContentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := s.research.ResearchTopic(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleContentFactCheck(w http.ResponseWriter, r *http.Request) {
	var req task.FactCheckRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := s.research.FactCheckContent(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleContentReview(w http.ResponseWriter, r *http.Request) {
	var req task.ReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := s.review.ReviewContent(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleContentImprove(w http.ResponseWriter, r *http.Request) {
	var req task.ImproveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := s.review.ImproveContent(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleContentKeywords(w http.ResponseWriter, r *http.Request) {
	var req domain.ContentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := s.seo.SuggestKeywords(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleContentOptimize(w http.ResponseWriter, r *http.Request) {
	var req task.OptimizeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := s.seo.OptimizeContent(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleContentMetaTags(w http.ResponseWriter, r *http.Request) {
	var req task.MetaTagRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := s.seo.GenerateMetaTags(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleContentIdeas(w http.ResponseWriter, r *http.Request) {
	var req task.IdeaRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, domain.ErrEmptyTopic.Error())
		return
	}

	record, err := s.ideation.GenerateIdeas(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleContentHeadlines(w http.ResponseWriter, r *http.Request) {
	var req task.HeadlineRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, domain.ErrEmptyTopic.Error())
		return
	}

	record, err := s.ideation.BrainstormHeadlines(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
