package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/hcmut-hub/tkb/apps/api/echo"
	"github.com/hcmut-hub/tkb/core"
	"github.com/hcmut-hub/tkb/core/catalog"
	"github.com/hcmut-hub/tkb/core/schedule"
	logsvc "github.com/hcmut-hub/tkb/services/logger"
	notifysvc "github.com/hcmut-hub/tkb/services/notify"
	catalogstore "github.com/hcmut-hub/tkb/storage/catalog"
	filestate "github.com/hcmut-hub/tkb/storage/state/file"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up services
	var notifSvc core.NotificationService
	if conf.Debug || conf.NotifyWebhookURL == "" {
		notifSvc = notifysvc.NewConsoleService(conf)
	} else {
		notifSvc = notifysvc.NewDiscordService(conf, logger)
	}

	cat, err := catalogstore.Load(conf.CatalogPath)
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading catalog: %v", err), err)
	}
	catalogSvc := catalog.NewService(conf, cat, logger)
	notifSvc.SendNotifications(&core.Notification{
		Event:   "catalog.loaded",
		Message: conf.CatalogPath,
		Fields:  map[string]string{"courses": strconv.Itoa(len(cat))},
	})

	stateRepo := filestate.NewStore(conf.StatePath)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	schedule.InitValidators(validate, translator)

	scheduleSvc := schedule.NewService(stateRepo, validate, notifSvc, logger)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewInt("courses").Set(int64(len(cat)))

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:        conf,
			Logger:      logger,
			CatalogSvc:  catalogSvc,
			ScheduleSvc: scheduleSvc,
			Validate:    validate,
			Translator:  translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shut down and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
