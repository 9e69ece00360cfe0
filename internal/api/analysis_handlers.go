package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/drinklog/internal/analysis"
	"github.com/limbo/drinklog/internal/service"
	"github.com/limbo/drinklog/pkg/httputil"
)

// Analyses read a whole year of records, so they get more time than plain reads.
const analysisTimeout = 15 * time.Second

type SetGoalRequest struct {
	SojuBottles int `json:"soju_bottles"`
	BeerCans    int `json:"beer_cans"`
}

func (s *Server) SetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SetGoalRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("set goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	goal, err := s.goalsService.SetGoal(ctx, uid, service.SetGoalRequest{
		SojuBottles: req.SojuBottles,
		BeerCans:    req.BeerCans,
	})
	if err != nil {
		writeServiceError(w, logger, "setting goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal set")
}

func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	goal, err := s.goalsService.GetGoal(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
}

func (s *Server) WeeklyAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	year, err := queryYear(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()
	weeks, err := s.analysisService.WeeklyAnalysis(ctx, uid, year)
	if err != nil {
		writeServiceError(w, logger, "weekly analysis", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, weeks)
}

func (s *Server) MonthlyAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	year, err := queryYear(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()
	months, err := s.analysisService.MonthlyAnalysis(ctx, uid, year)
	if err != nil {
		writeServiceError(w, logger, "monthly analysis", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, months)
}

func (s *Server) CustomAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, to, err := queryRange(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from and to must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()
	res, err := s.analysisService.CustomPeriodAnalysis(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "custom analysis", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
}

func (s *Server) Chart(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	mode, err := analysis.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeServiceError(w, logger, "chart", err)
		return
	}
	req := service.ChartRequest{Mode: mode}
	if mode == analysis.ModeCustom {
		req.From, req.To, err = queryRange(r)
	} else {
		req.Year, err = queryYear(r)
	}
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid chart period", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()
	points, err := s.analysisService.Chart(ctx, uid, req)
	if err != nil {
		writeServiceError(w, logger, "chart", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, points)
}
