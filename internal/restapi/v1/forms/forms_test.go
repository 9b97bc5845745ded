package v1forms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-ukrpay-service/internal/config"
	"github.com/eurofurence/reg-ukrpay-service/internal/interaction"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database/inmemory"
	"github.com/eurofurence/reg-ukrpay-service/internal/restapi/middleware"
	v1paymentqr "github.com/eurofurence/reg-ukrpay-service/internal/restapi/v1/paymentqr"
)

const (
	formKey   = "nbu_qr_generator_data"
	formsPath = "/api/rest/v1/forms/" + formKey
)

func setupServer(t *testing.T) (*httptest.Server, func()) {
	i, err := interaction.NewServiceInteractor(inmemory.NewInMemoryProvider(), config.ServiceConfig{
		DefaultVersion:  "002",
		DefaultCurrency: "UAH",
		ImageSize:       256,
	}, logging.NewNoopLogger())
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(middleware.RequestIdMiddleware())
	router.Use(middleware.LogRequestIdMiddleware())
	router.Route("/api/rest/v1", func(r chi.Router) {
		Create(r, i, formKey)
	})

	srv := httptest.NewServer(router)
	return srv, srv.Close
}

func do(t *testing.T, method string, url string, body string) *http.Response {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func readForm(t *testing.T, resp *http.Response) v1paymentqr.PaymentDataDto {
	defer resp.Body.Close()
	dto := v1paymentqr.PaymentDataDto{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dto))
	return dto
}

func TestFormLifecycle(t *testing.T) {
	srv, close := setupServer(t)
	defer close()

	resp := do(t, http.MethodGet, srv.URL+formsPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	empty := readForm(t, resp)
	require.Equal(t, "", empty.RecipientName)
	require.Equal(t, "UAH", empty.Currency)
	require.Nil(t, empty.Amount)

	resp = do(t, http.MethodPut, srv.URL+formsPath, `{"recipientName":"Тест","iban":"UA1","amount":150.5,"purpose":"Оплата"}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = do(t, http.MethodGet, srv.URL+formsPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := readForm(t, resp)
	require.Equal(t, "Тест", saved.RecipientName)
	require.Equal(t, "UA1", saved.IBAN)
	require.Equal(t, 150.5, *saved.Amount)
	require.Equal(t, "UAH", saved.Currency)

	resp = do(t, http.MethodDelete, srv.URL+formsPath, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = do(t, http.MethodGet, srv.URL+formsPath, "")
	cleared := readForm(t, resp)
	require.Equal(t, "", cleared.RecipientName)
}

func TestFormDeepLinkOverlay(t *testing.T) {
	srv, close := setupServer(t)
	defer close()

	resp := do(t, http.MethodPut, srv.URL+formsPath, `{"recipientName":"Старий","iban":"UA1","purpose":"p"}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = do(t, http.MethodGet, srv.URL+formsPath+"?name=New&amount=20", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	opened := readForm(t, resp)
	require.Equal(t, "New", opened.RecipientName)
	require.Equal(t, "UA1", opened.IBAN)
	require.Equal(t, 20.0, *opened.Amount)

	// the overlay is persisted
	resp = do(t, http.MethodGet, srv.URL+formsPath, "")
	require.Equal(t, "New", readForm(t, resp).RecipientName)
}

func TestFormInvalidRequests(t *testing.T) {
	srv, close := setupServer(t)
	defer close()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{
			name:   "Should refuse an invalid key",
			method: http.MethodGet,
			path:   "/api/rest/v1/forms/bad%20key",
		},
		{
			name:   "Should refuse broken json",
			method: http.MethodPut,
			path:   formsPath,
			body:   `{"recipientName":`,
		},
		{
			name:   "Should refuse unknown fields",
			method: http.MethodPut,
			path:   formsPath,
			body:   `{"version":"002"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, srv.URL+tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.NoError(t, resp.Body.Close())
		})
	}
}

func TestConfiguredFormKey(t *testing.T) {
	srv, close := setupServer(t)
	defer close()

	resp := do(t, http.MethodPut, srv.URL+"/api/rest/v1/forms", `{"recipientName":"Тест","iban":"UA1"}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	// same form, addressed by its explicit key
	resp = do(t, http.MethodGet, srv.URL+formsPath, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Тест", readForm(t, resp).RecipientName)

	resp = do(t, http.MethodGet, srv.URL+"/api/rest/v1/forms?purpose=rent", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	opened := readForm(t, resp)
	require.Equal(t, "Тест", opened.RecipientName)
	require.Equal(t, "rent", opened.Purpose)

	resp = do(t, http.MethodDelete, srv.URL+"/api/rest/v1/forms", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = do(t, http.MethodGet, srv.URL+formsPath, "")
	require.Equal(t, "", readForm(t, resp).RecipientName)
}

func TestInvalidConfiguredFormKey(t *testing.T) {
	i, err := interaction.NewServiceInteractor(inmemory.NewInMemoryProvider(), config.ServiceConfig{}, logging.NewNoopLogger())
	require.NoError(t, err)

	router := chi.NewRouter()
	Create(router, i, "")

	srv := httptest.NewServer(router)
	defer srv.Close()

	resp := do(t, http.MethodGet, srv.URL+"/forms", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
