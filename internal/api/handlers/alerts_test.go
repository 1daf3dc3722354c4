package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/msp-alert-engine/internal/api/handlers"
	"github.com/donaldgifford/msp-alert-engine/internal/store"
	storeMocks "github.com/donaldgifford/msp-alert-engine/internal/store/mocks"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// fakeTransitioner records operator actions.
type fakeTransitioner struct {
	err   error
	calls []string
}

func (f *fakeTransitioner) Acknowledge(_ context.Context, id, actor, note string) (*domain.AlertInstance, error) {
	return f.do("ack", id, actor, note, domain.AlertAcknowledged)
}

func (f *fakeTransitioner) Resolve(_ context.Context, id, actor, note string) (*domain.AlertInstance, error) {
	return f.do("resolve", id, actor, note, domain.AlertResolved)
}

func (f *fakeTransitioner) do(op, id, actor, note string, to domain.AlertStatus) (*domain.AlertInstance, error) {
	f.calls = append(f.calls, fmt.Sprintf("%s %s %s %s", op, id, actor, note))
	if f.err != nil {
		return nil, f.err
	}
	return &domain.AlertInstance{ID: id, Status: to}, nil
}

func newAlertAPI(t *testing.T, ms *storeMocks.MockStore, tr handlers.AlertTransitioner) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterAlertRoutes(api, handlers.NewAlertHandler(ms, tr))
	return api
}

func TestAlertHandler_List(t *testing.T) {
	t.Parallel()

	since := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns page",
			path: "/api/v1/alerts",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListAlertInstances(mock.Anything, &store.AlertQuery{}).
					Return([]domain.AlertInstance{{ID: "a1", Status: domain.AlertActive}}, 1, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name: "filters",
			path: "/api/v1/alerts?tenant_id=acme&severity=critical&status=active&status=acknowledged" +
				"&since=2026-03-02T10:00:00Z&limit=10&offset=20&order_by=severity",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListAlertInstances(mock.Anything, &store.AlertQuery{
					TenantID: ptr("acme"),
					Severity: ptr("critical"),
					Statuses: []string{"active", "acknowledged"},
					Since:    &since,
					Limit:    10,
					Offset:   20,
					OrderBy:  "severity",
				}).Return(nil, 0, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"alerts":[]`,
		},
		{
			name:       "unknown status",
			path:       "/api/v1/alerts?status=snoozed",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `unknown status snoozed`,
		},
		{
			name: "store error",
			path: "/api/v1/alerts",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListAlertInstances(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `listing alerts`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newAlertAPI(t, ms, &fakeTransitioner{}).Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestAlertHandler_Transitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantCall   string
		wantBody   string
	}{
		{
			name:       "acknowledge",
			path:       "/api/v1/alerts/a1/acknowledge",
			wantStatus: http.StatusOK,
			wantCall:   "ack a1 jane on it",
			wantBody:   `"acknowledged"`,
		},
		{
			name:       "resolve",
			path:       "/api/v1/alerts/a1/resolve",
			wantStatus: http.StatusOK,
			wantCall:   "resolve a1 jane on it",
			wantBody:   `"resolved"`,
		},
		{
			name:       "invalid transition",
			path:       "/api/v1/alerts/a1/acknowledge",
			err:        fmt.Errorf("moving alert: %w", domain.ErrInvalidTransition),
			wantStatus: http.StatusConflict,
			wantCall:   "ack a1 jane on it",
		},
		{
			name:       "missing alert",
			path:       "/api/v1/alerts/a1/resolve",
			err:        fmt.Errorf("moving alert: %w", store.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCall:   "resolve a1 jane on it",
			wantBody:   `alert not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := &fakeTransitioner{err: tt.err}
			api := newAlertAPI(t, storeMocks.NewMockStore(t), tr)

			resp := api.Post(tt.path, map[string]any{"actor": "jane", "note": "on it"})
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Equal(t, []string{tt.wantCall}, tr.calls)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestAlertHandler_TransitionRequiresActor(t *testing.T) {
	t.Parallel()

	tr := &fakeTransitioner{}
	api := newAlertAPI(t, storeMocks.NewMockStore(t), tr)

	resp := api.Post("/api/v1/alerts/a1/acknowledge", map[string]any{"note": "x"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Empty(t, tr.calls)
}

func TestAlertHandler_Escalations(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetAlertInstance(mock.Anything, "a1").Return(&domain.AlertInstance{ID: "a1"}, nil).Once()
	ms.EXPECT().ListEscalationStates(mock.Anything, []string{"a1"}).Return([]domain.EscalationState{{
		AlertID: "a1", PolicyID: "p1", State: domain.EscalationEscalating, LastExecutedStep: 0,
	}}, nil).Once()
	ms.EXPECT().ListEscalationDispatches(mock.Anything, "a1").Return(nil, nil).Once()
	ms.EXPECT().GetAlertInstance(mock.Anything, "gone").Return(nil, store.ErrNotFound).Once()

	api := newAlertAPI(t, ms, &fakeTransitioner{})

	resp := api.Get("/api/v1/alerts/a1/escalations")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"escalating"`)
	assert.Contains(t, resp.Body.String(), `"dispatches":[]`)

	resp = api.Get("/api/v1/alerts/gone/escalations")
	require.Equal(t, http.StatusNotFound, resp.Code)
}
