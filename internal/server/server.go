package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/eurofurence/reg-ukrpay-service/internal/config"
	"github.com/eurofurence/reg-ukrpay-service/internal/interaction"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/restapi/middleware"
	v1forms "github.com/eurofurence/reg-ukrpay-service/internal/restapi/v1/forms"
	v1health "github.com/eurofurence/reg-ukrpay-service/internal/restapi/v1/health"
	v1paymentqr "github.com/eurofurence/reg-ukrpay-service/internal/restapi/v1/paymentqr"
)

func NewServer(ctx context.Context, conf *config.ServerConfig, router http.Handler) *http.Server {

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", conf.BaseAddress, conf.Port),
		Handler:      router,
		ReadTimeout:  time.Second * time.Duration(conf.ReadTimeout),
		WriteTimeout: time.Second * time.Duration(conf.WriteTimeout),
		IdleTimeout:  time.Second * time.Duration(conf.IdleTimeout),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}
}

func CreateRouter(i interaction.Interactor, conf *config.Application) chi.Router {
	router := chi.NewRouter()

	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestIdMiddleware())
	router.Use(middleware.LogRequestIdMiddleware())
	router.Use(middleware.CorsHeadersMiddleware(conf.Security.Cors))

	setupV1Routes(router, i, conf)

	return router
}

func setupV1Routes(router chi.Router, i interaction.Interactor, conf *config.Application) {
	v1health.Create(router)

	router.Route("/api/rest/v1", func(r chi.Router) {
		v1paymentqr.Create(r, i)

		r.Group(func(r chi.Router) {
			r.Use(middleware.TokenHandlerMiddleware(conf.Security.Fixed.Api))
			v1forms.Create(r, i, conf.Service.FormKey)
		})
	})
}

// Serve blocks until the server fails or is shut down through ctx.
func Serve(ctx context.Context, srv *http.Server) error {
	logger := logging.NoCtx()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Stopping services now")

	tCtx, tcancel := context.WithTimeout(context.Background(), time.Second*5)
	defer tcancel()

	if err := srv.Shutdown(tCtx); err != nil {
		logger.Error("Couldn't shutdown server gracefully. [error]: %v", err)
		return err
	}

	return nil
}
