package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	})
}

func serve(h http.Handler, method string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/test", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouterProvider_GetAddsRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", textHandler("ok"))

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/test", routes[0].Url)
}

func TestRouterProvider_KeepsRegistrationOrder(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/a", textHandler("a"))
	rp.Post("/b", textHandler("b"))
	rp.Get("/c", textHandler("c"))

	routes := rp.GetRoutes()
	require.Len(t, routes, 3)
	assert.Equal(t, "/a", routes[0].Url)
	assert.Equal(t, "/b", routes[1].Url)
	assert.Equal(t, "/c", routes[2].Url)
}

func TestRouterProvider_SameUrlTwoMethods(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/settings", textHandler("read"))
	rp.Post("/settings", textHandler("write"))

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)

	assert.Equal(t, "read", serve(routes[0].Handler, http.MethodGet).Body.String())
	assert.Equal(t, "write", serve(routes[0].Handler, http.MethodPost).Body.String())
}

func TestRouterProvider_GetRouteRejectsPost(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", textHandler("ok"))

	rr := serve(rp.GetRoutes()[0].Handler, http.MethodPost)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET", rr.Header().Get("Allow"))
}

func TestRouterProvider_PostRouteRejectsGet(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/test", textHandler("ok"))

	rr := serve(rp.GetRoutes()[0].Handler, http.MethodGet)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
