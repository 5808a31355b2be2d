package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createFormHandler "github.com/m04kA/LIFF-HolidayService/internal/api/handlers/create_form"
	editRemindersHandler "github.com/m04kA/LIFF-HolidayService/internal/api/handlers/edit_reminders"
	getFormHandler "github.com/m04kA/LIFF-HolidayService/internal/api/handlers/get_form"
	listSubjectsHandler "github.com/m04kA/LIFF-HolidayService/internal/api/handlers/list_subjects"
	pickDateHandler "github.com/m04kA/LIFF-HolidayService/internal/api/handlers/pick_date"
	resetFormHandler "github.com/m04kA/LIFF-HolidayService/internal/api/handlers/reset_form"
	selectSubjectHandler "github.com/m04kA/LIFF-HolidayService/internal/api/handlers/select_subject"
	setModeHandler "github.com/m04kA/LIFF-HolidayService/internal/api/handlers/set_mode"
	submitFormHandler "github.com/m04kA/LIFF-HolidayService/internal/api/handlers/submit_form"
	updateDetailsHandler "github.com/m04kA/LIFF-HolidayService/internal/api/handlers/update_details"
	"github.com/m04kA/LIFF-HolidayService/internal/api/middleware"
	"github.com/m04kA/LIFF-HolidayService/internal/config"
	"github.com/m04kA/LIFF-HolidayService/internal/infra/sessions"
	holidayServiceClient "github.com/m04kA/LIFF-HolidayService/internal/integrations/holidayservice"
	lineAuthClient "github.com/m04kA/LIFF-HolidayService/internal/integrations/lineauth"
	subjectServiceClient "github.com/m04kA/LIFF-HolidayService/internal/integrations/subjectservice"
	formsService "github.com/m04kA/LIFF-HolidayService/internal/service/forms"
	listSubjectsUC "github.com/m04kA/LIFF-HolidayService/internal/usecase/list_subjects"
	submitHolidayUC "github.com/m04kA/LIFF-HolidayService/internal/usecase/submit_holiday"
	"github.com/m04kA/LIFF-HolidayService/pkg/logger"
	"github.com/m04kA/LIFF-HolidayService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LIFF-HolidayService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище сессий форм
	sessionTTL := time.Duration(cfg.Sessions.TTLMinutes) * time.Minute
	cleanupInterval := time.Duration(cfg.Sessions.CleanupIntervalMinutes) * time.Minute
	store := sessions.NewStore(sessionTTL, log)

	stopCh := make(chan struct{})
	store.StartCleanup(cleanupInterval, stopCh)
	log.Info("Session store initialized (ttl=%dm, cleanup=%dm)",
		cfg.Sessions.TTLMinutes, cfg.Sessions.CleanupIntervalMinutes)

	// Экспорт числа активных сессий в метрики
	if cfg.Metrics.Enabled {
		go func() {
			ticker := time.NewTicker(cleanupInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					metricsCollector.FormSessionsActive.Set(float64(store.Len()))
				case <-stopCh:
					return
				}
			}
		}()
	}

	// Инициализируем интеграционных клиентов
	lineClient := lineAuthClient.NewClient(
		cfg.LineAuth.VerifyURL,
		cfg.LineAuth.ChannelID,
		time.Duration(cfg.LineAuth.Timeout)*time.Second,
		log,
	)
	subjectClient := subjectServiceClient.NewClient(
		cfg.SubjectService.URL,
		time.Duration(cfg.SubjectService.Timeout)*time.Second,
		log,
	)
	holidayClient := holidayServiceClient.NewClient(
		cfg.HolidayService.SubmitURL,
		cfg.HolidayService.RemindersURL,
		time.Duration(cfg.HolidayService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (LineAuth=%s, SubjectService=%s, HolidayService=%s)",
		cfg.LineAuth.VerifyURL, cfg.SubjectService.URL, cfg.HolidayService.SubmitURL)

	// Инициализируем сервисы
	formsSvc := formsService.NewService(store, lineClient, log)

	// Инициализируем use cases
	listSubjectsUseCase := listSubjectsUC.NewUseCase(lineClient, subjectClient, log)
	submitHolidayUseCase := submitHolidayUC.NewUseCase(store, holidayClient, log)

	// Инициализируем handlers
	createForm := createFormHandler.NewHandler(formsSvc, log)
	getForm := getFormHandler.NewHandler(formsSvc, log)
	setMode := setModeHandler.NewHandler(formsSvc, log)
	selectSubject := selectSubjectHandler.NewHandler(formsSvc, log)
	pickDate := pickDateHandler.NewHandler(formsSvc, log)
	updateDetails := updateDetailsHandler.NewHandler(formsSvc, log)
	editReminders := editRemindersHandler.NewHandler(formsSvc, log)
	resetForm := resetFormHandler.NewHandler(formsSvc, log)
	submitForm := submitFormHandler.NewHandler(submitHolidayUseCase, log)
	listSubjects := listSubjectsHandler.NewHandler(listSubjectsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют LINE id token в Authorization header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание ---
	protected.HandleFunc("/subjects", listSubjects.Handle).Methods(http.MethodGet)

	// --- Формы ---
	protected.HandleFunc("/forms", createForm.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/forms/{formId}", getForm.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/forms/{formId}/mode", setMode.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/forms/{formId}/subject", selectSubject.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/forms/{formId}/date", pickDate.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/forms/{formId}/details", updateDetails.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/forms/{formId}/reset", resetForm.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/forms/{formId}/submit", submitForm.Handle).Methods(http.MethodPost)

	// --- Напоминания ---
	protected.HandleFunc("/forms/{formId}/reminders", editReminders.HandleAdd).Methods(http.MethodPost)
	protected.HandleFunc("/forms/{formId}/reminders/{index}", editReminders.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/forms/{formId}/reminders/{index}", editReminders.HandleRemove).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи хранилища сессий
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
