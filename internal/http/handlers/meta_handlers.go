package handlers

import "net/http"

// RootHandler godoc
// @Summary Service metadata
// @Tags meta
// @Produce json
// @Success 200 {object} MetadataResult
// @Router / [get]
func RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MetadataResult{
		Message: "catalog api",
		Service: "catalog-api",
		Version: "1.0",
	})
}

// HealthHandler godoc
// @Summary Database connectivity status
// @Tags meta
// @Produce json
// @Success 200 {object} HealthResult
// @Failure 503 {object} HealthResult
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !dbStatus.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResult{Message: "degraded", Database: "not ready"})
		return
	}
	if err := dbStatus.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResult{Message: "degraded", Database: "unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResult{Message: "ok", Database: "connected"})
}
