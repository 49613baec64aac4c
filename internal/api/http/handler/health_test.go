package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/postboard-server/internal/mocks"
	"github.com/dtroode/postboard-server/internal/testutil"
)

func TestHealth_Check(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "database reachable", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "database down", pingErr: errors.New("dial tcp: connection refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := mocks.NewPinger(t)
			db.On("Ping", mock.Anything).Return(tt.pingErr)

			app := newTestApp()
			app.Get("/healthz", NewHealth(db, testutil.MakeNoopLogger()).Check)

			status, body := doRequest(t, app, http.MethodGet, "/healthz", "")

			assert.Equal(t, tt.wantStatus, status)
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}
