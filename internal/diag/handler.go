// Package diag serves the storage diagnostic endpoint used by deploy checks.
package diag

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jurassic-quiz/jurassic-quiz/internal/platform/httpx"
)

// Handler reports storage connectivity without ever failing the request.
type Handler struct {
	logger *slog.Logger
	pool   *pgxpool.Pool
	dsnSet bool
}

// NewHandler constructs a diagnostic handler. pool may be nil when the
// database never came up.
func NewHandler(logger *slog.Logger, pool *pgxpool.Pool, dsnSet bool) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, pool: pool, dsnSet: dsnSet}
}

type report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
}

// TestDatabase answers GET /test. Faults are folded into descriptive status
// strings; the endpoint itself always returns 200.
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	out := report{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		DatabaseName:     "unknown",
		ConnectionStatus: "not connected",
		Tables:           []string{},
	}
	if h.dsnSet {
		out.DatabaseURL = "set"
	}

	if h.pool == nil {
		httpx.JSON(w, http.StatusOK, out)
		return
	}

	ctx := r.Context()
	if err := h.pool.Ping(ctx); err != nil {
		out.Database = "error: " + truncate(err.Error(), 50)
		httpx.JSON(w, http.StatusOK, out)
		return
	}
	out.Database = "available"
	out.ConnectionStatus = "connected"

	var name string
	if err := h.pool.QueryRow(ctx, `SELECT current_database()`).Scan(&name); err == nil {
		out.DatabaseName = name
	}

	rows, err := h.pool.Query(ctx,
		`SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename LIMIT 10`)
	if err != nil {
		out.Database = "connected but error: " + truncate(err.Error(), 50)
		httpx.JSON(w, http.StatusOK, out)
		return
	}
	defer rows.Close()
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			out.Database = "connected but error: " + truncate(err.Error(), 50)
			httpx.JSON(w, http.StatusOK, out)
			return
		}
		out.Tables = append(out.Tables, table)
	}
	if err := rows.Err(); err != nil {
		out.Database = "connected but error: " + truncate(err.Error(), 50)
		httpx.JSON(w, http.StatusOK, out)
		return
	}
	out.Database = "connected and working"

	httpx.JSON(w, http.StatusOK, out)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
