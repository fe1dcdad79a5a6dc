package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/costperday/costperday/internal/config"
	"github.com/costperday/costperday/internal/database"
	"github.com/costperday/costperday/internal/export"
	cpdHttp "github.com/costperday/costperday/internal/http"
	exportHandler "github.com/costperday/costperday/internal/http/export"
	importHandler "github.com/costperday/costperday/internal/http/importjson"
	itemHandler "github.com/costperday/costperday/internal/http/item"
	settingHandler "github.com/costperday/costperday/internal/http/setting"
	"github.com/costperday/costperday/internal/importer"
	"github.com/costperday/costperday/internal/item"
	itemStore "github.com/costperday/costperday/internal/item/store"
	"github.com/costperday/costperday/internal/setting"
	settingStore "github.com/costperday/costperday/internal/setting/store"
	"github.com/costperday/costperday/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DB.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		itemService    = item.NewService(itemStore.New(db))
		settingService = setting.NewService(settingStore.New(db))
		importService  = importer.NewService()
		exportService  = export.NewService(itemService)
	)

	var (
		itemH    = itemHandler.NewHandler(itemService)
		settingH = settingHandler.NewHandler(settingService)
		exportH  = exportHandler.NewHandler(exportService)
		importH  = importHandler.NewHandler(importService, itemService)
	)

	router := cpdHttp.New(itemH, settingH, exportH, importH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", server.Addr, "db", cfg.DB.Path)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
