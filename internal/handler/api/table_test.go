//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"tablebook/internal/handler/api"
	"tablebook/internal/usecase/queries"
	"tablebook/tests/common/httptest"
	commandsmock "tablebook/tests/mock/commands"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TableHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTableCommands
	mockQueries  *queriesmock.MockTableQueries
	handler      *api.TableHandler
}

func (s *TableHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTableCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTableQueries(s.mockCtrl)
	s.handler = api.NewTableHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/tables", s.handler.ListTables)
}

func (s *TableHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTableHandlerSuite(t *testing.T) {
	suite.Run(t, new(TableHandlerTestSuite))
}

func (s *TableHandlerTestSuite) TestListTables() {
	s.Run("returns the floor-plan tables", func() {
		tables := []*queries.TableView{
			{ID: uuid.New(), Name: "T1", Capacity: 2, Shape: "round", X: 10, Y: 20},
			{ID: uuid.New(), Name: "T2", Capacity: 4, Shape: "square", X: 30, Y: 20},
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(tables, nil)

		req := nethttptest.NewRequest(http.MethodGet, "/tables", nil)
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		var resp []queries.TableView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp, 2)
		s.Equal("T1", resp[0].Name)
		s.Equal("square", resp[1].Shape)
	})

	s.Run("empty floor plan renders an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.TableView{}, nil)

		req := nethttptest.NewRequest(http.MethodGet, "/tables", nil)
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
		var raw []json.RawMessage
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
		s.Empty(raw)
	})
}
