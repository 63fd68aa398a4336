package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/restaurant/internal/db"
	"github.com/Skotchmaster/restaurant/internal/transport"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusOK, env.serve(http.MethodGet, "/health/live", nil).Code)
	require.Equal(t, http.StatusOK, env.serve(http.MethodGet, "/health/ready", nil).Code)

	require.NoError(t, db.Close(env.DB))
	require.Equal(t, http.StatusServiceUnavailable, env.serve(http.MethodGet, "/health/ready", nil).Code)
}

func TestOrderStatusesReadOnly(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodGet, "/order-statuses", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var statuses []transport.OrderStatusDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statuses))
	require.Len(t, statuses, 4)
	require.Equal(t, transport.OrderStatusDTO{ID: 4, StatusName: "PAID"}, statuses[3])

	require.Equal(t, http.StatusNotFound, env.serve(http.MethodGet, "/order-statuses/8", nil).Code)
	require.Equal(t, http.StatusMethodNotAllowed, env.serve(http.MethodPost, "/order-statuses", `{"statusName":"NEW"}`).Code)
}
