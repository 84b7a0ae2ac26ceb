package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonedash/internal/domain"
	"phonedash/internal/repos"
	"phonedash/internal/services"
)

func TestConfigNotFound(t *testing.T) {
	a := newTestApp(t, testConfig())

	for _, path := range []string{"/api/config/iphone", "/api/config/accesorio"} {
		resp, body := a.get(t, path)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, `{"error":"Configuración no encontrada"}`, body, path)
	}
}

func TestConfigFound(t *testing.T) {
	a := newTestApp(t, testConfig())
	svc := services.NewConfigService(repos.NewConfigRepo(a.db), nil)
	_, err := svc.Put(context.Background(), domain.ConfigIPhone, []byte(`{
		"series": ["15", "16"],
		"modelos_por_serie": {"16": ["16", "16 PRO", "16 PRO MAX"]},
		"configuraciones": {"16 PRO": {"capacidades": ["128", "256"]}}
	}`))
	require.NoError(t, err)
	_, err = svc.Put(context.Background(), domain.ConfigAccessory, []byte(`{
		"modelos": ["FUNDA"],
		"gamas_por_modelo": {"FUNDA": ["CUERO"]},
		"series_por_modelo_gama": {"FUNDA": {"CUERO": ["16"]}},
		"configuraciones": {}
	}`))
	require.NoError(t, err)

	resp, body := a.get(t, "/api/config/iphone")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{
		"series": ["15", "16"],
		"modelos_por_serie": {"16": ["16", "16 PRO", "16 PRO MAX"]},
		"configuraciones": {"16 PRO": {"capacidades": ["128", "256"]}}
	}`, body)

	resp, body = a.get(t, "/api/config/accesorio")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{
		"modelos": ["FUNDA"],
		"gamas_por_modelo": {"FUNDA": ["CUERO"]},
		"series_por_modelo_gama": {"FUNDA": {"CUERO": ["16"]}},
		"configuraciones": {}
	}`, body)
}

func TestConfigStorageFailure(t *testing.T) {
	a := newTestApp(t, testConfig())
	require.NoError(t, a.db.Close())

	var body string
	entries := captureLogs(t, func() {
		var resp *http.Response
		resp, body = a.get(t, "/api/config/iphone")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
	assert.Equal(t, `{"error":"Error al obtener la configuración"}`, body)
	assert.NotContains(t, body, "closed")

	e, ok := findLog(entries, "config.get.fail")
	require.True(t, ok, "expected config.get.fail log")
	assert.Equal(t, "error", e.Level)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.NotEmpty(t, e.ReqID)
	assert.Equal(t, "iphone", e.Fields["document"])
}
