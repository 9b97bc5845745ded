package v1paymentqr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"

	"github.com/eurofurence/reg-ukrpay-service/internal/apierrors"
	"github.com/eurofurence/reg-ukrpay-service/internal/deeplink"
	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
	"github.com/eurofurence/reg-ukrpay-service/internal/interaction"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/nbuqr"
	"github.com/eurofurence/reg-ukrpay-service/internal/restapi/common"
	"github.com/eurofurence/reg-ukrpay-service/internal/restapi/media"
)

const (
	versionParam = "version"
	sizeParam    = "size"
)

type qrRequest struct {
	data    entities.PaymentData
	version entities.QrVersion
	size    int
}

type qrImage struct {
	png    []byte
	result *entities.EncodingResult
}

type decodeRequest struct {
	token string
}

type qrHandler struct {
	interactor interaction.Interactor
}

func Create(router chi.Router, i interaction.Interactor) {
	handler := qrHandler{
		interactor: i,
	}

	router.Post("/qr", common.CreateHandler(
		handler.generateQrEndpoint,
		handler.bodyRequestHandler,
		encodingResultResponseHandler,
	))
	router.Get("/qr", common.CreateHandler(
		handler.generateQrEndpoint,
		handler.deepLinkRequestHandler,
		encodingResultResponseHandler,
	))
	router.Post("/qr/image", common.CreateHandler(
		handler.qrImageEndpoint,
		handler.bodyRequestHandler,
		imageResponseHandler,
	))
	router.Get("/qr/image", common.CreateHandler(
		handler.qrImageEndpoint,
		handler.deepLinkRequestHandler,
		imageResponseHandler,
	))
	router.Get("/qr/decode/{token}", common.CreateHandler(
		handler.decodeEndpoint,
		decodeRequestHandler,
		decodeResponseHandler,
	))
}

func (h *qrHandler) generateQrEndpoint(ctx context.Context, req *qrRequest, logger logging.Logger) (*entities.EncodingResult, error) {
	return h.interactor.GenerateQr(ctx, req.data, req.version)
}

func (h *qrHandler) qrImageEndpoint(ctx context.Context, req *qrRequest, logger logging.Logger) (*qrImage, error) {
	png, result, err := h.interactor.RenderQrImage(ctx, req.data, req.version, req.size)
	if err != nil {
		return nil, err
	}
	logger.Info("rendered qr image with %d bytes", len(png))
	return &qrImage{png: png, result: result}, nil
}

func (h *qrHandler) decodeEndpoint(ctx context.Context, req *decodeRequest, logger logging.Logger) (*DecodeResultDto, error) {
	raw, err := h.interactor.DecodeQr(ctx, req.token)
	if err != nil {
		return nil, err
	}
	return &DecodeResultDto{
		RawPayload: raw,
		Fields:     nbuqr.SplitFields(raw),
	}, nil
}

// bodyRequestHandler starts from an empty form, so fields missing in the body keep their defaults.
func (h *qrHandler) bodyRequestHandler(r *http.Request) (*qrRequest, error) {
	body := GenerateQrRequest{
		Data: PaymentDataDtoFrom(h.interactor.DefaultForm()),
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		return nil, apierrors.NewBadRequest(fmt.Sprintf("invalid json body: %v", err))
	}

	return newQrRequest(PaymentDataFrom(body.Data), body.Version, r.URL.Query().Get(sizeParam))
}

func (h *qrHandler) deepLinkRequestHandler(r *http.Request) (*qrRequest, error) {
	query := r.URL.Query()
	overlay, _ := deeplink.ParseQuery(query)

	return newQrRequest(overlay.ApplyTo(h.interactor.DefaultForm()), query.Get(versionParam), query.Get(sizeParam))
}

func newQrRequest(data entities.PaymentData, version string, size string) (*qrRequest, error) {
	req := &qrRequest{
		data:    data,
		version: entities.QrVersion(version),
	}

	if version != "" && !req.version.IsValid() {
		return nil, apierrors.NewBadRequest(fmt.Sprintf("version must be one of 001, 002, 003, got %q", version))
	}

	if size != "" {
		parsed, err := strconv.Atoi(size)
		if err != nil {
			return nil, apierrors.NewBadRequest(fmt.Sprintf("size must be an integer, got %q", size))
		}
		req.size = parsed
	}

	return req, nil
}

func decodeRequestHandler(r *http.Request) (*decodeRequest, error) {
	return &decodeRequest{token: chi.URLParam(r, "token")}, nil
}

func encodingResultResponseHandler(ctx context.Context, res *entities.EncodingResult, w http.ResponseWriter) error {
	w.Header().Set(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(http.StatusOK)
	writeJson(ctx, w, EncodingResultDtoFrom(res))
	return nil
}

func imageResponseHandler(ctx context.Context, res *qrImage, w http.ResponseWriter) error {
	w.Header().Set(headers.ContentType, media.ContentTypeImagePng)
	w.Header().Set(headers.ContentLength, strconv.Itoa(len(res.png)))
	w.Header().Set(common.PaymentUrlHeader, res.result.FullUrl)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.png); err != nil {
		logging.LoggerFromContext(ctx).Warn("error while writing qr image: %v", err)
	}
	return nil
}

func decodeResponseHandler(ctx context.Context, res *DecodeResultDto, w http.ResponseWriter) error {
	w.Header().Set(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(http.StatusOK)
	writeJson(ctx, w, res)
	return nil
}

// writeJson only logs, the status line has already been sent.
func writeJson(ctx context.Context, w http.ResponseWriter, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logging.LoggerFromContext(ctx).Warn("error while encoding json response: %v", err)
	}
}
