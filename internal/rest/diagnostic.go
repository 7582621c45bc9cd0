package rest

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"oneMinuteShop/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type StoreProber interface {
	Status(ctx context.Context) domain.StoreStatus
}

type DiagnosticHandler struct {
	store   StoreProber
	timeout time.Duration
}

func NewDiagnosticHandler(store StoreProber, timeout time.Duration) *DiagnosticHandler {
	return &DiagnosticHandler{
		store:   store,
		timeout: timeout,
	}
}

type DiagnosticResponse struct {
	Backend          string   `json:"backend"`
	Store            string   `json:"store"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (h *DiagnosticHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "1MinuteShop Backend Running"})
}

// Test probes the store. Store failures are reported in the body; the
// status is always 200.
func (h *DiagnosticHandler) Test(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	status := h.store.Status(ctx)

	res := DiagnosticResponse{
		Backend:          "Running",
		Store:            status.Backend,
		Database:         "Not Available",
		DatabaseURL:      envState("DATABASE_URL"),
		DatabaseName:     envState("DATABASE_NAME"),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	switch {
	case status.Connected && status.Err == nil:
		res.Database = "Connected and Working"
		res.ConnectionStatus = "Connected"
		res.Collections = append(res.Collections, status.Collections...)
	case status.Connected:
		res.Database = "Connected but Error: " + truncate(status.Err.Error(), 50)
		res.ConnectionStatus = "Connected"
	case status.Err != nil:
		res.Database = "Error: " + truncate(status.Err.Error(), 50)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(res))
}

func envState(key string) string {
	if os.Getenv(key) != "" {
		return "Set"
	}
	return "Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}
