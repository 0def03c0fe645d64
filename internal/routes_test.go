package internal

import (
	"net/http"
	"net/http/httptest"
	"photobooth/internal/controllers"
	"photobooth/internal/frame"
	"photobooth/internal/notify/notifytest"
	"photobooth/internal/services"
	"photobooth/internal/storage"
	"photobooth/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouteTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	conf := testutil.NewConfig()
	logger := &testutil.MockLogger{}
	svc := services.NewPhotoboothService(conf, testutil.NewFakeSource(true, frame.FacingFront),
		testutil.NewFakeClock(time.Unix(0, 0)), storage.NewStore(conf), &testutil.MockScheduler{},
		&notifytest.RecordingNotifier{}, testutil.NewMockCache(), logger, testutil.NewMockMetrics())
	router := InitRoutes(controllers.NewApiController(logger, svc))

	mux := http.NewServeMux()
	for _, r := range router.GetRoutes() {
		mux.Handle(r.Url, r.Handler)
	}
	return mux
}

func TestInitRoutes_RegistersEndpoints(t *testing.T) {
	conf := testutil.NewConfig()
	logger := &testutil.MockLogger{}
	svc := services.NewPhotoboothService(conf, testutil.NewFakeSource(true, frame.FacingFront),
		testutil.NewFakeClock(time.Unix(0, 0)), storage.NewStore(conf), &testutil.MockScheduler{},
		&notifytest.RecordingNotifier{}, testutil.NewMockCache(), logger, testutil.NewMockMetrics())

	routes := InitRoutes(controllers.NewApiController(logger, svc)).GetRoutes()
	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	require.Len(t, routes, 35)
	for _, u := range []string{
		"/camera/start", "/camera/stop", "/camera/flip", "/camera/mirror",
		"/settings", "/session/start", "/session/abort", "/session/new",
		"/session/status", "/session/stats", "/photos", "/photos/image",
		"/editor/open", "/editor/close", "/editor/sticker", "/editor/move",
		"/editor/rotate", "/editor/resize", "/editor/remove", "/editor/reset",
		"/editor/enhance", "/editor/save", "/editor/apply-all", "/editor/preview",
		"/export/photo", "/export/collage", "/collage", "/sessions/save",
		"/history", "/overlay", "/share",
	} {
		assert.Contains(t, urls, u)
	}
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	mux := newRouteTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/session/start", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "POST", rr.Header().Get("Allow"))

	req = httptest.NewRequest(http.MethodPost, "/history", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestInitRoutes_SettingsServesBothMethods(t *testing.T) {
	mux := newRouteTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/settings", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
