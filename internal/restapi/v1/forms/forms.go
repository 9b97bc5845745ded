package v1forms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"

	"github.com/eurofurence/reg-ukrpay-service/internal/apierrors"
	"github.com/eurofurence/reg-ukrpay-service/internal/deeplink"
	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
	"github.com/eurofurence/reg-ukrpay-service/internal/interaction"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/restapi/common"
	"github.com/eurofurence/reg-ukrpay-service/internal/restapi/media"
	v1paymentqr "github.com/eurofurence/reg-ukrpay-service/internal/restapi/v1/paymentqr"
)

var validFormKey = regexp.MustCompile("^[a-zA-Z0-9_.-]{1,80}$")

type formRequest struct {
	key     string
	overlay entities.PaymentDataOverlay
	data    entities.PaymentData
}

type formHandler struct {
	interactor interaction.Interactor
	formKey    string
}

// Create registers the form routes. The routes without a key work on formKey,
// the one form the generator page keeps.
func Create(router chi.Router, i interaction.Interactor, formKey string) {
	handler := formHandler{
		interactor: i,
		formKey:    formKey,
	}

	for _, path := range []string{"/forms", "/forms/{key}"} {
		router.Get(path, common.CreateHandler(
			handler.openFormEndpoint,
			handler.openFormRequestHandler,
			formResponseHandler,
		))
		router.Put(path, common.CreateHandler(
			handler.saveFormEndpoint,
			handler.saveFormRequestHandler,
			noContentResponseHandler,
		))
		router.Delete(path, common.CreateHandler(
			handler.clearFormEndpoint,
			handler.keyOnlyRequestHandler,
			noContentResponseHandler,
		))
	}
}

func (h *formHandler) openFormEndpoint(ctx context.Context, req *formRequest, logger logging.Logger) (*entities.PaymentData, error) {
	data, err := h.interactor.OpenForm(ctx, req.key, req.overlay)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (h *formHandler) saveFormEndpoint(ctx context.Context, req *formRequest, logger logging.Logger) (*struct{}, error) {
	if err := h.interactor.SaveForm(ctx, req.key, req.data); err != nil {
		return nil, err
	}
	logger.Debug("saved form %s", req.key)
	return &struct{}{}, nil
}

func (h *formHandler) clearFormEndpoint(ctx context.Context, req *formRequest, logger logging.Logger) (*struct{}, error) {
	if err := h.interactor.ClearForm(ctx, req.key); err != nil {
		return nil, err
	}
	logger.Info("cleared form %s", req.key)
	return &struct{}{}, nil
}

func (h *formHandler) formKeyFrom(r *http.Request) (string, error) {
	key := chi.URLParam(r, "key")
	if key == "" {
		key = h.formKey
	}
	if !validFormKey.MatchString(key) {
		return "", apierrors.NewBadRequest(fmt.Sprintf("invalid form key %q", key))
	}
	return key, nil
}

func (h *formHandler) keyOnlyRequestHandler(r *http.Request) (*formRequest, error) {
	key, err := h.formKeyFrom(r)
	if err != nil {
		return nil, err
	}
	return &formRequest{key: key}, nil
}

func (h *formHandler) openFormRequestHandler(r *http.Request) (*formRequest, error) {
	req, err := h.keyOnlyRequestHandler(r)
	if err != nil {
		return nil, err
	}
	req.overlay, _ = deeplink.ParseQuery(r.URL.Query())
	return req, nil
}

func (h *formHandler) saveFormRequestHandler(r *http.Request) (*formRequest, error) {
	req, err := h.keyOnlyRequestHandler(r)
	if err != nil {
		return nil, err
	}

	dto := v1paymentqr.PaymentDataDtoFrom(h.interactor.DefaultForm())
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dto); err != nil {
		return nil, apierrors.NewBadRequest(fmt.Sprintf("invalid json body: %v", err))
	}

	req.data = v1paymentqr.PaymentDataFrom(dto)
	return req, nil
}

func formResponseHandler(ctx context.Context, res *entities.PaymentData, w http.ResponseWriter) error {
	w.Header().Set(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v1paymentqr.PaymentDataDtoFrom(*res)); err != nil {
		logging.LoggerFromContext(ctx).Warn("error while encoding form response: %v", err)
	}
	return nil
}

func noContentResponseHandler(ctx context.Context, res *struct{}, w http.ResponseWriter) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}
