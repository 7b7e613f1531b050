package main

import (
	"WooMasterKit/internal/admin"
	"WooMasterKit/internal/bulkprice"
	"WooMasterKit/internal/cache"
	"WooMasterKit/internal/config"
	"WooMasterKit/internal/database"
	"WooMasterKit/internal/handlers/httphandler"
	"WooMasterKit/internal/nonce"
	"WooMasterKit/internal/store"
	"WooMasterKit/internal/sync"
	"WooMasterKit/internal/telegram"
	"WooMasterKit/internal/version"
	"WooMasterKit/internal/wooapi"
	"WooMasterKit/pkg/logging"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
)

const purgeInterval = 10 * time.Minute

func main() {
	cfg := config.GetConfig()
	logging.Init(cfg.LOG.Path, cfg.LOG.Debug == 1)

	logger := logging.GetLogger()
	logger.Info("Start Main")
	v := version.GetVersion()
	logger.Infof("Version %s", v.String())
	defer logger.Info("End Main")

	wooAPI := wooapi.NewAPI(cfg.WOOCOMMERCE.URL, cfg.WOOCOMMERCE.Key, cfg.WOOCOMMERCE.Secret,
		cfg.WOOCOMMERCE.RPS,
		time.Duration(cfg.WOOCOMMERCE.Timeout)*time.Second,
		cfg.WOOCOMMERCE.QueryStringAuth == 1)
	products := store.NewWooStore(wooAPI)

	db, err := database.Open(cfg.DBSQLITE.DB)
	if err != nil {
		logger.Fatalf("%s, %v", cfg.DBSQLITE.DB, err)
	}
	defer db.Close()

	notifier := telegram.Nop()
	if cfg.TELEGRAM.Report == 1 {
		bot, err := telegram.NewBot(cfg.TELEGRAM.BotToken, cfg.TELEGRAM.ChatID, cfg.TELEGRAM.Debug == 1)
		if err != nil {
			logger.Errorf("failed telegram.NewBot(), notifications are off: %v", err)
		} else {
			notifier = bot
		}
	}

	ttl := time.Duration(cfg.REPORT.TTL) * time.Minute
	var reports bulkprice.ReportStore
	switch cfg.REPORT.Driver {
	case "redis":
		rs := cache.NewRedisReportStore(cache.NewRedisClient(cfg.REDIS.Addr, cfg.REDIS.Password, cfg.REDIS.DB), ttl)
		if err := rs.Ping(); err != nil {
			logger.Fatal("failed main; redis; ", err)
		}
		reports = rs
	case "memory":
		reports = cache.NewMemoryReportStore(ttl)
	default:
		rs := database.NewReportStore(db)
		go sync.NewPurgeService(rs, ttl, purgeInterval, notifier).PurgeServiceWithRecovered(context.Background())
		reports = rs
	}
	logger.Infof("Report storage: %s", cfg.REPORT.Driver)

	h := httphandler.New(httphandler.Deps{
		Service:  bulkprice.NewService(products, cfg.WOOCOMMERCE.Currency),
		Search:   products,
		Reports:  reports,
		Licenses: database.NewLicenseStore(db),
		Nonce:    nonce.New(cfg.NONCE.Secret, time.Duration(cfg.NONCE.Lifetime)*time.Hour),
		Notifier: notifier,
		User:     cfg.ADMIN.User,
		BaseURL:  cfg.SERVICE.BaseURL,
		Settings: admin.Settings{
			StoreURL:     cfg.WOOCOMMERCE.URL,
			Currency:     cfg.WOOCOMMERCE.Currency,
			RPS:          cfg.WOOCOMMERCE.RPS,
			ReportDriver: cfg.REPORT.Driver,
			Notify:       cfg.TELEGRAM.Report == 1,
			Version:      v.String(),
		},
	})

	router := httprouter.New()
	h.Register(router)

	logger.Infof("Listen on :%d", cfg.SERVICE.PORT)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.SERVICE.PORT), router))
}
