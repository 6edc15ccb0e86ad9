//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type LocationReportEvent struct {
	EventID  uuid.UUID `json:"event_id"`
	DriverID int64     `json:"driver_id"`
	Lat      float64   `json:"lat"`
	Lon      float64   `json:"lon"`
	Status   string    `json:"status,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	driverID := flag.Int64("driver", 1, "Driver ID")
	lat := flag.Float64("lat", 41.4027042, "Latitude")
	lon := flag.Float64("lon", 2.1599563, "Longitude")
	status := flag.String("status", "MOVING", "Driver status")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := LocationReportEvent{
		EventID:  uuid.New(),
		DriverID: *driverID,
		Lat:      *lat,
		Lon:      *lon,
		Status:   *status,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:fleet:locations",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:fleet:locations\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.EventID)
	fmt.Printf("   Driver: %d (%s)\n", event.DriverID, event.Status)
	fmt.Printf("   Coordinates: %.6f, %.6f\n", event.Lat, event.Lon)
}
