package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/limbo/drinklog/internal/analysis"
	"github.com/limbo/drinklog/internal/api"
	errorvalues "github.com/limbo/drinklog/internal/error_values"
	"github.com/limbo/drinklog/internal/service"
	"github.com/limbo/drinklog/internal/service/mocks"
	"github.com/limbo/drinklog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGoalsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GoalsService: gService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.SetGoalRequest{SojuBottles: 2, BeerCans: 4})
	require.NoError(t, err)

	t.Run("goal set", func(t *testing.T) {
		gService.EXPECT().SetGoal(gomock.Any(), userID, service.SetGoalRequest{SojuBottles: 2, BeerCans: 4}).
			Return(&entity.Goal{UserID: userID, SojuBottles: 2, BeerCans: 4}, nil)
		rr := httptest.NewRecorder()
		serv.SetGoal(rr, withUID(httptest.NewRequest(http.MethodPut, "/api/v1/goal", bytes.NewReader(body)), userID))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("goal out of range", func(t *testing.T) {
		gService.EXPECT().SetGoal(gomock.Any(), userID, service.SetGoalRequest{SojuBottles: 2, BeerCans: 4}).
			Return(nil, errorvalues.ErrValidation)
		rr := httptest.NewRecorder()
		serv.SetGoal(rr, withUID(httptest.NewRequest(http.MethodPut, "/api/v1/goal", bytes.NewReader(body)), userID))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("goal invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.SetGoal(rr, withUID(httptest.NewRequest(http.MethodPut, "/api/v1/goal", nil), userID))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("goal fetched", func(t *testing.T) {
		gService.EXPECT().GetGoal(gomock.Any(), userID).Return(&entity.Goal{UserID: userID, SojuBottles: 1}, nil)
		rr := httptest.NewRecorder()
		serv.GetGoal(rr, withUID(httptest.NewRequest(http.MethodGet, "/api/v1/goal", nil), userID))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var got entity.Goal
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&got))
		assert.Equal(t, 1, got.SojuBottles)
	})
	t.Run("goal never set", func(t *testing.T) {
		gService.EXPECT().GetGoal(gomock.Any(), userID).Return(nil, errorvalues.ErrGoalNotFound)
		rr := httptest.NewRecorder()
		serv.GetGoal(rr, withUID(httptest.NewRequest(http.MethodGet, "/api/v1/goal", nil), userID))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestWeeklyAnalysisHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAnalysisServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		AnalysisService: aService,
	})
	testCases := []struct {
		Desc         string
		Target       string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "explicit year",
			Target:       "/api/v1/analysis/weekly?year=2024",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				aService.EXPECT().WeeklyAnalysis(gomock.Any(), userID, 2024).Return([]entity.WeeklyAnalysis{{WeekNumber: 1, Year: 2024, TotalDays: 7}}, nil)
			},
		},
		{
			Desc:         "defaults to current year",
			Target:       "/api/v1/analysis/weekly",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				aService.EXPECT().WeeklyAnalysis(gomock.Any(), userID, time.Now().Year()).Return([]entity.WeeklyAnalysis{}, nil)
			},
		},
		{
			Desc:         "year out of range",
			Target:       "/api/v1/analysis/weekly?year=1800",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				aService.EXPECT().WeeklyAnalysis(gomock.Any(), userID, 1800).Return(nil, errorvalues.ErrInvalidYear)
			},
		},
		{
			Desc:         "year not a number",
			Target:       "/api/v1/analysis/weekly?year=twenty",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "service error",
			Target:       "/api/v1/analysis/weekly?year=2024",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				aService.EXPECT().WeeklyAnalysis(gomock.Any(), userID, 2024).Return(nil, errors.New("timeout"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.WeeklyAnalysis(rr, withUID(httptest.NewRequest(http.MethodGet, tc.Target, nil), userID))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestMonthlyAnalysisHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAnalysisServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		AnalysisService: aService,
	})
	aService.EXPECT().MonthlyAnalysis(gomock.Any(), userID, 2023).Return([]entity.MonthlyAnalysis{{Month: 1, Year: 2023, TotalDays: 31}}, nil)
	rr := httptest.NewRecorder()
	serv.MonthlyAnalysis(rr, withUID(httptest.NewRequest(http.MethodGet, "/api/v1/analysis/monthly?year=2023", nil), userID))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var got []entity.MonthlyAnalysis
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, 31, got[0].TotalDays)
}

func TestCustomAnalysisHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAnalysisServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		AnalysisService: aService,
	})
	from, to := mustDate(t, "2024-01-01"), mustDate(t, "2024-01-14")

	t.Run("analysed", func(t *testing.T) {
		aService.EXPECT().CustomPeriodAnalysis(gomock.Any(), userID, from, to).
			Return(&entity.CustomPeriodAnalysis{StartDate: from, EndDate: to, TotalDays: 14}, nil)
		rr := httptest.NewRecorder()
		serv.CustomAnalysis(rr, withUID(httptest.NewRequest(http.MethodGet, "/api/v1/analysis/custom?from=2024-01-01&to=2024-01-14", nil), userID))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("reversed range", func(t *testing.T) {
		aService.EXPECT().CustomPeriodAnalysis(gomock.Any(), userID, to, from).Return(nil, errorvalues.ErrInvalidRange)
		rr := httptest.NewRecorder()
		serv.CustomAnalysis(rr, withUID(httptest.NewRequest(http.MethodGet, "/api/v1/analysis/custom?from=2024-01-14&to=2024-01-01", nil), userID))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("malformed date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.CustomAnalysis(rr, withUID(httptest.NewRequest(http.MethodGet, "/api/v1/analysis/custom?from=yesterday&to=2024-01-01", nil), userID))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestChartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAnalysisServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		AnalysisService: aService,
	})
	points := []entity.ChartDataPoint{{Period: "week 1", TotalDays: 7}}
	testCases := []struct {
		Desc         string
		Target       string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "weekly chart",
			Target:       "/api/v1/analysis/chart?mode=weekly&year=2024",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				aService.EXPECT().Chart(gomock.Any(), userID, service.ChartRequest{Mode: analysis.ModeWeekly, Year: 2024}).Return(points, nil)
			},
		},
		{
			Desc:         "custom chart",
			Target:       "/api/v1/analysis/chart?mode=custom&from=2024-01-01&to=2024-01-14",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				aService.EXPECT().Chart(gomock.Any(), userID, service.ChartRequest{
					Mode: analysis.ModeCustom,
					From: mustDate(t, "2024-01-01"),
					To:   mustDate(t, "2024-01-14"),
				}).Return(points, nil)
			},
		},
		{
			Desc:         "unknown mode",
			Target:       "/api/v1/analysis/chart?mode=yearly",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "custom chart without range",
			Target:       "/api/v1/analysis/chart?mode=custom",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.Chart(rr, withUID(httptest.NewRequest(http.MethodGet, tc.Target, nil), userID))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}
