package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/models"
)

func TestGetServerVersion_WritesBuildInfo(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.info.EXPECT().GetBuildInfo(gomock.Any()).
		Return(models.VersionResponse{Version: "1.2.3", Date: "2026-10-01", Commit: "abc123"})

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-10-01","commit":"abc123"}`, rec.Body.String())
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.info.EXPECT().GetBuildInfo(gomock.Any()).
		Return(models.VersionResponse{Version: "v2.0.0-beta+build.42", Date: "N/A", Commit: "N/A"})

	rec := serve(h.Init(), httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.VersionResponse](t, rec)
	assert.Equal(t, "v2.0.0-beta+build.42", got.Version)
	assert.Equal(t, "N/A", got.Commit)
}
