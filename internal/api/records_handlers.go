package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/limbo/drinklog/internal/service"
	"github.com/limbo/drinklog/pkg/entity"
	"github.com/limbo/drinklog/pkg/httputil"
)

type SaveRecordRequest struct {
	Drank       bool `json:"drank"`
	SojuBottles int  `json:"soju_bottles"`
	BeerCans    int  `json:"beer_cans"`
}

type ListRecordsResponse struct {
	UserID  string               `json:"uid"`
	From    civil.Date           `json:"from"`
	To      civil.Date           `json:"to"`
	Records []entity.DailyRecord `json:"records"`
}

// authorizedDate resolves the caller and the {date} path value, writing the error response itself.
func authorizedDate(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, civil.Date, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, civil.Date{}, false
	}
	date, err := civil.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		logger.Error(op + " error: invalid date in path")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path, expected YYYY-MM-DD", nil)
		return uuid.UUID{}, civil.Date{}, false
	}
	return uid, date, true
}

func (s *Server) SaveRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, date, ok := authorizedDate(w, r, "save record")
	if !ok {
		return
	}
	var req SaveRecordRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("save record error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	record, err := s.recordsService.SaveRecord(ctx, uid, service.SaveRecordRequest{
		Date:        date,
		Drank:       req.Drank,
		SojuBottles: req.SojuBottles,
		BeerCans:    req.BeerCans,
	})
	if err != nil {
		writeServiceError(w, logger, "saving record", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
	logger.Info("record saved")
}

func (s *Server) GetRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, date, ok := authorizedDate(w, r, "get record")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	record, err := s.recordsService.GetRecord(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "getting record", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
}

func (s *Server) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, date, ok := authorizedDate(w, r, "delete record")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.recordsService.DeleteRecord(ctx, uid, date); err != nil {
		writeServiceError(w, logger, "deleting record", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("record deleted")
}

func (s *Server) ListRecords(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list records error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, to, err := queryRange(r)
	if err != nil {
		logger.Error("list records error: invalid range query")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from and to must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	records, err := s.recordsService.ListRecords(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "listing records", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListRecordsResponse{
		UserID:  uid.String(),
		From:    from,
		To:      to,
		Records: records,
	})
}

func (s *Server) MonthCalendar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("calendar error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	year, err := queryYear(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year", nil)
		return
	}
	month := int(time.Now().Month())
	if raw := r.URL.Query().Get("month"); raw != "" {
		if month, err = strconv.Atoi(raw); err != nil {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid month", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	days, err := s.recordsService.MonthCalendar(ctx, uid, year, month)
	if err != nil {
		writeServiceError(w, logger, "building calendar", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, days)
}
