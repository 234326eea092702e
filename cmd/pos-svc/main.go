package main

import (
	"log"
	"time"

	"loycal/config"
	httpapi "loycal/internal/api/http"
	"loycal/internal/reporting"
	"loycal/internal/service"
	"loycal/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(config.OrdersTopic)
	defer kafkaWriter.Close()

	orderRepo := storage.NewPostgresOrderRepository(db)
	catalogRepo := storage.NewPostgresCatalogRepository(db)
	programCache := storage.NewRedisProgramCache(rdb, 5*time.Minute)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	qrEncoder := service.ReceiptQRGenerator{BaseURL: config.ReceiptBaseURL()}

	orderSvc := service.NewOrderService(orderRepo, catalogRepo, programCache, publisher, qrEncoder)
	catalogSvc := service.NewCatalogService(catalogRepo, programCache)
	reports := reporting.NewStore(db, rdb)

	handler := httpapi.NewHandler(orderSvc, catalogSvc, reports)
	router := httpapi.NewRouter(handler, config.JWTSecret())

	httpapi.StartServer(config.ListenAddr(":8081"), router)
}
