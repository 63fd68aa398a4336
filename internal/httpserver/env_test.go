package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/db/dbtest"
	"github.com/Skotchmaster/restaurant/internal/events"
	"github.com/Skotchmaster/restaurant/internal/repo"
	"github.com/Skotchmaster/restaurant/internal/service"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Deps   *Deps
	Events *events.Recorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := dbtest.OpenSeeded(t)
	rec := &events.Recorder{}
	deps := NewDeps(gdb, service.New(repo.New(gdb), rec))

	e := echo.New()
	Register(e, deps)

	return &testEnv{T: t, E: e, DB: gdb, Deps: deps, Events: rec}
}

// doJSONRequest builds a context for calling a handler directly.
func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, *http.Request, echo.Context) {
	env.T.Helper()

	req := httptest.NewRequest(method, path, encode(env.T, body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, req, env.E.NewContext(req, rec)
}

// serve runs the request through the router and the error handler.
func (env *testEnv) serve(method, path string, body any) *httptest.ResponseRecorder {
	env.T.Helper()

	req := httptest.NewRequest(method, path, encode(env.T, body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func encode(t *testing.T, body any) *bytes.Reader {
	t.Helper()

	switch b := body.(type) {
	case nil:
		return bytes.NewReader(nil)
	case string:
		return bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		return bytes.NewReader(raw)
	}
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
}
