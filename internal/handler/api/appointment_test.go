//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bookline/internal/domain/appointment"
	"bookline/internal/handler/api"
	resdto "bookline/internal/handler/dto/response"
	"bookline/internal/usecase/commands"
	"bookline/internal/usecase/queries"
	"bookline/tests/common/builder"
	"bookline/tests/common/httptest"
	"bookline/tests/common/testutil"
	commandsmock "bookline/tests/mock/commands"
	queriesmock "bookline/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
	ownerID      uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)
	s.ownerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("owner_id", s.ownerID)
		c.Next()
	}

	// Setup routes
	s.router.POST("/appointments", authMiddleware, s.handler.CreateAppointment)
	s.router.GET("/appointments", authMiddleware, s.handler.ListAppointments)
	s.router.GET("/appointments/today", authMiddleware, s.handler.ListToday)
	s.router.GET("/appointments/week", authMiddleware, s.handler.ListThisWeek)
	s.router.GET("/appointments/month", authMiddleware, s.handler.ListThisMonth)
	s.router.GET("/appointments/:id", authMiddleware, s.handler.GetAppointment)
	s.router.PATCH("/appointments/:id", authMiddleware, s.handler.UpdateAppointment)
	s.router.PATCH("/appointments/:id/status", authMiddleware, s.handler.ChangeStatus)
	s.router.PATCH("/appointments/:id/paid", authMiddleware, s.handler.TogglePaid)
	s.router.DELETE("/appointments/:id", authMiddleware, s.handler.DeleteAppointment)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

type testCaseAppointment struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateAppointment
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCreateAppointment() {
	url := "/appointments"

	reqBody := builder.NewAppointmentBuilder().BuildCreateRequestDTO()
	returnView := builder.NewAppointmentBuilder().BuildView()

	validation := []testCaseAppointment{
		{name: "missing field: service_id (required)", mutate: testutil.Field("service_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: scheduled_at (required)", mutate: testutil.Field("scheduled_at", nil), expectCode: http.StatusBadRequest},
		{name: "malformed service_id", mutate: testutil.Field("service_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		{name: "malformed scheduled_at", mutate: testutil.Field("scheduled_at", "tomorrow"), expectCode: http.StatusBadRequest},
		{name: "walk-in without a name", mutate: testutil.Field("walk_in", map[string]any{"phone": "555-0100"}), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.ownerID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.AccessCode, response.AccessCode)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "service not found",
				commandsError:  commands.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "validation failure",
				commandsError:  commands.ErrValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "access code exhaustion",
				commandsError:  commands.ErrAccessCodeConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "access code",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.ownerID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetAppointment
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String()

	returnView := builder.NewAppointmentBuilder().BuildView()
	returnView.ID = appointmentID

	s.Run("success: returns 200 OK with AppointmentResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.ownerID, appointmentID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(appointmentID, response.ID)
		s.Equal(returnView.ClientName, response.ClientName)
		s.Equal(returnView.ServiceName, response.ServiceName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing appointment", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.ownerID, appointmentID).
			Return(nil, queries.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 403 Forbidden for another owner's appointment", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.ownerID, appointmentID).
			Return(nil, queries.ErrUnauthorizedOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestListAppointments
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestListAppointments() {
	url := "/appointments"

	items := []*queries.AppointmentListItem{
		builder.NewAppointmentBuilder().BuildListItem(),
		builder.NewAppointmentBuilder().BuildListItem(),
	}

	s.Run("success: returns 200 OK with all appointments", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.ownerID, gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: passes status and range filters through", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.ownerID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, filter queries.ListFilter) ([]*queries.AppointmentListItem, error) {
				s.Require().NotNil(filter.Status)
				s.Equal(appointment.StatusPending, *filter.Status)
				s.Require().NotNil(filter.Window)
				s.Equal(25, filter.Limit)
				return items, nil
			}).Times(1)

		query := "?status=pending&from=2025-06-01T00:00:00Z&to=2025-06-30T23:59:59Z&limit=25"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+query, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on bad filters", func() {
		badQueries := []struct {
			name  string
			query string
		}{
			{name: "unknown status", query: "?status=done"},
			{name: "from without to", query: "?from=2025-06-01T00:00:00Z"},
			{name: "unparseable from", query: "?from=yesterday&to=2025-06-30T23:59:59Z"},
			{name: "from after to", query: "?from=2025-07-01T00:00:00Z&to=2025-06-01T00:00:00Z"},
			{name: "non-numeric limit", query: "?limit=ten"},
			{name: "zero limit", query: "?limit=0"},
		}
		for _, tc := range badQueries {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+tc.query, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

// ================================================================================
// TestCalendarListings
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCalendarListings() {
	items := []*queries.AppointmentListItem{builder.NewAppointmentBuilder().BuildListItem()}

	s.Run("success: today, week and month delegate to their queries", func() {
		s.mockQueries.EXPECT().ListToday(gomock.Any(), s.ownerID, gomock.Nil()).
			Return(items, nil).Times(1)
		s.mockQueries.EXPECT().ListThisWeek(gomock.Any(), s.ownerID, gomock.Nil()).
			Return(items, nil).Times(1)
		s.mockQueries.EXPECT().ListThisMonth(gomock.Any(), s.ownerID, gomock.Nil()).
			Return(items, nil).Times(1)

		for _, path := range []string{"/appointments/today", "/appointments/week", "/appointments/month"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "bearer-token")

			var response []resdto.AppointmentListResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Len(response, 1)
		}
	})

	s.Run("success: status filter reaches the query", func() {
		s.mockQueries.EXPECT().ListToday(gomock.Any(), s.ownerID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, status *appointment.Status) ([]*queries.AppointmentListItem, error) {
				s.Require().NotNil(status)
				s.Equal(appointment.StatusConfirmed, *status)
				return items, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/today?status=confirmed", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/week?status=done", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestUpdateAppointment
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestUpdateAppointment() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String()

	returnView := builder.NewAppointmentBuilder().BuildView()
	returnView.ID = appointmentID

	newTime := time.Date(2025, 6, 20, 14, 0, 0, 0, time.UTC)
	reqBody := map[string]any{"scheduled_at": newTime.Format(time.RFC3339)}

	s.Run("success: returns 200 OK with the updated appointment", func() {
		s.mockCommands.EXPECT().UpdateDetails(gomock.Any(), s.ownerID, appointmentID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(appointmentID, response.ID)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not found", commandsError: commands.ErrAppointmentNotFound, expectedStatus: http.StatusNotFound},
			{name: "another owner", commandsError: commands.ErrUnauthorizedOwner, expectedStatus: http.StatusForbidden},
			{name: "validation failure", commandsError: commands.ErrValidation, expectedStatus: http.StatusUnprocessableEntity},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateDetails(gomock.Any(), s.ownerID, appointmentID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/appointments/not-a-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestChangeStatus
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestChangeStatus() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String() + "/status"

	returnView := builder.NewAppointmentBuilder().BuildView()
	returnView.ID = appointmentID
	returnView.Status = "confirmed"

	s.Run("success: returns 200 OK with the new status", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), s.ownerID, appointmentID, appointment.StatusConfirmed).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 Bad Request when status is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 Unprocessable Entity on invalid transition", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), s.ownerID, appointmentID, appointment.StatusPending).
			Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "pending"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid status transition")
	})
}

// ================================================================================
// TestTogglePaid
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestTogglePaid() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String() + "/paid"

	returnView := builder.NewAppointmentBuilder().BuildView()
	returnView.ID = appointmentID
	returnView.Paid = true

	s.Run("success: empty body flips the flag", func() {
		s.mockCommands.EXPECT().TogglePaid(gomock.Any(), s.ownerID, appointmentID, gomock.Nil()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Paid)
	})

	s.Run("success: explicit body sets the flag", func() {
		s.mockCommands.EXPECT().TogglePaid(gomock.Any(), s.ownerID, appointmentID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, explicit *bool) (*queries.AppointmentView, error) {
				s.Require().NotNil(explicit)
				s.True(*explicit)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"paid": true}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for missing appointment", func() {
		s.mockCommands.EXPECT().TogglePaid(gomock.Any(), s.ownerID, appointmentID, gomock.Nil()).
			Return(nil, commands.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}

// ================================================================================
// TestDeleteAppointment
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestDeleteAppointment() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.ownerID, appointmentID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for another owner's appointment", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.ownerID, appointmentID).
			Return(commands.ErrUnauthorizedOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
