//go:build unit

package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/user"
	"tablebook/internal/handler/api"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"
	"tablebook/tests/common/builder"
	"tablebook/tests/common/httptest"
	"tablebook/tests/common/testutil"
	commandsmock "tablebook/tests/mock/commands"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Public creation endpoint plus staff routes behind a role stand-in
	// driven by the X-Test-Role header.
	withRole := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if role := c.GetHeader("X-Test-Role"); role != "" {
				c.Set("user_id", uuid.New())
				c.Set("user_role", user.Role(role))
			}
			next(c)
		}
	}

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations", s.handler.ListReservations)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.POST("/reservations/:id/check-in", withRole(s.handler.CheckIn))
	s.router.POST("/reservations/:id/cancel", withRole(s.handler.Cancel))
	s.router.DELETE("/reservations/:id", withRole(s.handler.DeleteReservation))
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func performWithRole(t *testing.T, router *gin.Engine, method, url, role string) *nethttptest.ResponseRecorder {
	t.Helper()
	req := nethttptest.NewRequest(method, url, nil)
	req.Header.Set("X-Test-Role", role)
	rec := nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	reqBody := builder.NewReservationBuilder().BuildDTO()

	s.Run("valid booking returns the stored view", func() {
		view := builder.NewReservationBuilder().BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToParams()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal("confirmed", resp.Status)
	})

	s.Run("closed day maps to bad request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, commands.ErrClosedDay)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "closed")
	})

	s.Run("full slot maps to conflict", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, commands.ErrSlotUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})

	s.Run("domain validation failure maps to unprocessable entity", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, commands.ErrValidationFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("binding validation", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "party size boundary OK (1)", mutate: testutil.Field("party_size", 1), expectCode: http.StatusCreated},
			{name: "party size boundary invalid (0)", mutate: testutil.Field("party_size", 0), expectCode: http.StatusBadRequest},
			{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: phone", mutate: testutil.Field("phone", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: time", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
						Return(builder.NewReservationBuilder().WithPartySize(1).BuildView(), nil)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("existing id returns the view", func() {
		view := builder.NewReservationBuilder().BuildView()
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "")

		var resp queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
	})

	s.Run("unknown id maps to not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(nil, queries.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("malformed id is a bad request", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	s.Run("passes filters through and returns items", func() {
		date := "2026-06-15"
		status := "confirmed"
		items := []*queries.ReservationListItem{builder.NewReservationBuilder().BuildListItem()}

		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.ListFilter) ([]*queries.ReservationListItem, error) {
				s.Require().NotNil(filter.Date)
				s.Equal(date, *filter.Date)
				s.Require().NotNil(filter.Status)
				s.Equal(status, *filter.Status)
				s.Equal(queries.SortBySlotAsc, filter.SortBy)
				return items, nil
			})

		url := fmt.Sprintf("/reservations?date=%s&status=%s&sort_by=%s", date, status, queries.SortBySlotAsc)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var resp []*queries.ReservationListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("empty result encodes as an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("[]", rec.Body.String())
	})
}

func (s *ReservationHandlerTestSuite) TestCheckIn() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/check-in"

	s.Run("staff role maps to the staff actor", func() {
		view := builder.NewReservationBuilder().WithStatus("seated").BuildView()
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, reservation.ActorStaff).Return(view, nil)

		rec := performWithRole(s.T(), s.router, http.MethodPost, url, "staff")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("illegal transition maps to conflict with the allowed moves", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, reservation.ActorStaff).
			Return(nil, &commands.IllegalTransitionError{
				From:    reservation.StatusCancelled,
				Allowed: []reservation.Status{},
			})

		rec := performWithRole(s.T(), s.router, http.MethodPost, url, "staff")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")

		var body struct {
			CurrentStatus string   `json:"current_status"`
			Allowed       []string `json:"allowed_next_statuses"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("cancelled", body.CurrentStatus)
		s.Empty(body.Allowed)
	})

	s.Run("unknown id maps to not found", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id, reservation.ActorStaff).
			Return(nil, commands.ErrReservationNotFound)

		rec := performWithRole(s.T(), s.router, http.MethodPost, url, "staff")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/cancel"

	s.Run("manager role maps to the manager actor", func() {
		view := builder.NewReservationBuilder().WithStatus("cancelled").BuildView()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, reservation.ActorManager).Return(view, nil)

		rec := performWithRole(s.T(), s.router, http.MethodPost, url, "manager")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("staff acting on a manager-only transition conflicts", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, reservation.ActorStaff).
			Return(nil, &commands.IllegalTransitionError{
				From:    reservation.StatusConfirmed,
				Allowed: []reservation.Status{reservation.StatusSeated},
			})

		rec := performWithRole(s.T(), s.router, http.MethodPost, url, "staff")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")

		var body struct {
			Allowed []string `json:"allowed_next_statuses"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal([]string{"seated"}, body.Allowed)
	})
}

func (s *ReservationHandlerTestSuite) TestDeleteReservation() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("manager deletes", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, reservation.ActorManager).Return(nil)

		rec := performWithRole(s.T(), s.router, http.MethodDelete, url, "manager")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("forbidden for staff", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, reservation.ActorStaff).
			Return(commands.ErrDeleteForbidden)

		rec := performWithRole(s.T(), s.router, http.MethodDelete, url, "staff")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
