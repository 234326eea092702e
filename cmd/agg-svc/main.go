package main

import (
	"context"

	"loycal/config"
	"loycal/internal/reporting"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrdersTopic, "agg-svc-consumer")
	defer reader.Close()

	store := reporting.NewStore(db, rdb)
	consumer := reporting.NewConsumer(reader, store)
	consumer.Start(context.Background())
}
