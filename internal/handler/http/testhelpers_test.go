package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-transactions/internal/config"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/mock"
	"github.com/MKhiriev/go-transactions/internal/service"
	"github.com/MKhiriev/go-transactions/internal/utils"
	"go.uber.org/mock/gomock"
)

// newTestHandler creates a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

type mockedServices struct {
	auth         *mock.MockAuthService
	transactions *mock.MockTransactionService
	appInfo      *mock.MockAppInfoService
}

// newMockedHandler builds a Handler whose services are gomock mocks.
func newMockedHandler(t *testing.T, cfg config.Server) (*Handler, mockedServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mockedServices{
		auth:         mock.NewMockAuthService(ctrl),
		transactions: mock.NewMockTransactionService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:        m.auth,
		TransactionService: m.transactions,
		AppInfoService:     m.appInfo,
	}, cfg, logger.Nop())

	return h, m
}

// withCaller stores uid in the request context the way the auth middleware does.
func withCaller(r *http.Request, uid string) *http.Request {
	return r.WithContext(utils.WithUID(r.Context(), uid))
}
