package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/eurofurence/reg-ukrpay-service/internal/common"
	"github.com/eurofurence/reg-ukrpay-service/internal/config"
	"github.com/eurofurence/reg-ukrpay-service/internal/deeplink"
	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
	"github.com/eurofurence/reg-ukrpay-service/internal/interaction"
	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database/inmemory"
	"github.com/eurofurence/reg-ukrpay-service/internal/server"
)

func main() {
	app := &cli.App{
		Name:  common.ApplicationName,
		Usage: "NBU payment qr code service",
		Commands: []*cli.Command{
			serveCmd,
			encodeCmd,
			decodeCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "run the http service",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to the yaml configuration",
			Value:   "config.yaml",
		},
	},
	Action: serve,
}

func serve(ctx *cli.Context) error {
	conf, err := config.LoadConfiguration(ctx.String("config"))
	if err != nil {
		return err
	}

	logger := logging.NoCtx()
	if err := config.Validate(conf, logger.Error); err != nil {
		return err
	}

	logging.SetupLogging(conf.Logging.Severity)
	logger.Info("starting %s", conf.Service.Name)

	repo, err := server.CreateRepository(conf.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to set up %s database: %w", conf.Database.Use, err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close database: %v", err)
		}
	}()

	i, err := interaction.NewServiceInteractor(repo, conf.Service, logger)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := server.CreateRouter(i, conf)
	srv := server.NewServer(sigCtx, &conf.Server, handler)

	return server.Serve(sigCtx, srv)
}

var encodeCmd = &cli.Command{
	Name:      "encode",
	Usage:     "print the payment link for the given data",
	UsageText: "encode --name NAME --iban IBAN [--amount 150.50] [--png out.png]",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "recipient name"},
		&cli.StringFlag{Name: "iban", Usage: "recipient account"},
		&cli.StringFlag{Name: "edrpou", Usage: "recipient identification code"},
		&cli.StringFlag{Name: "amount", Usage: "amount, parsed like the deep link parameter"},
		&cli.StringFlag{Name: "currency", Value: entities.DefaultCurrency},
		&cli.StringFlag{Name: "purpose", Usage: "payment purpose"},
		&cli.StringFlag{Name: "reference"},
		&cli.StringFlag{Name: "display"},
		&cli.StringFlag{Name: "version", Value: string(entities.DefaultQrVersion)},
		&cli.BoolFlag{Name: "raw", Usage: "also print the raw payload"},
		&cli.StringFlag{Name: "png", Usage: "write the qr code image to this file"},
		&cli.IntFlag{Name: "size", Usage: "image size in pixels"},
	},
	Action: encode,
}

func encode(ctx *cli.Context) error {
	version := entities.QrVersion(ctx.String("version"))
	if !version.IsValid() {
		return fmt.Errorf("unsupported version %q", version)
	}

	data := paymentDataFromFlags(ctx)

	i, err := interaction.NewServiceInteractor(inmemory.NewInMemoryProvider(), config.ServiceConfig{
		DefaultVersion:  string(entities.DefaultQrVersion),
		DefaultCurrency: entities.DefaultCurrency,
		ImageSize:       1000,
	}, logging.NewNoopLogger())
	if err != nil {
		return err
	}

	var result *entities.EncodingResult
	if path := ctx.String("png"); path != "" {
		var png []byte
		png, result, err = i.RenderQrImage(ctx.Context, data, version, ctx.Int("size"))
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, png, 0644); err != nil {
			return err
		}
	} else {
		result, err = i.GenerateQr(ctx.Context, data, version)
		if err != nil {
			return err
		}
	}

	if ctx.Bool("raw") {
		fmt.Println(result.RawPayload)
	}
	fmt.Println(result.FullUrl)
	return nil
}

func paymentDataFromFlags(ctx *cli.Context) entities.PaymentData {
	data := entities.DefaultPaymentData()
	data.RecipientName = ctx.String("name")
	data.IBAN = ctx.String("iban")
	data.IdentificationCode = ctx.String("edrpou")
	data.Currency = ctx.String("currency")
	data.Purpose = ctx.String("purpose")

	if ctx.IsSet("amount") {
		amount := deeplink.ParseAmount(ctx.String("amount"))
		data.Amount = &amount
	}
	if ctx.IsSet("reference") {
		reference := ctx.String("reference")
		data.Reference = &reference
	}
	if ctx.IsSet("display") {
		display := ctx.String("display")
		data.Display = &display
	}

	return data
}

var decodeCmd = &cli.Command{
	Name:      "decode",
	Usage:     "print the raw payload of a payment link token",
	ArgsUsage: "TOKEN",
	Action:    decode,
}

func decode(ctx *cli.Context) error {
	if ctx.Args().Len() < 1 {
		return errors.New("payload token not provided")
	}

	i, err := interaction.NewServiceInteractor(inmemory.NewInMemoryProvider(), config.ServiceConfig{}, logging.NewNoopLogger())
	if err != nil {
		return err
	}

	raw, err := i.DecodeQr(ctx.Context, ctx.Args().First())
	if err != nil {
		return err
	}

	fmt.Println(raw)
	return nil
}
