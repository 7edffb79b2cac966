package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"edutrack-advisor-be/internal/config"
	"edutrack-advisor-be/pkg/events"
	pktNats "edutrack-advisor-be/pkg/nats"
)

// Tails the NATS event stream. Handy for checking that interaction events
// reach external consumers without standing up a full subscriber service.
func main() {
	cfg := config.Load()

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	err = sub.Subscribe("events.>", "events-tail", func(ctx context.Context, event events.Event) error {
		payload, _ := json.MarshalIndent(event.Payload(), "", "  ")
		log.Printf("[%s]\n%s", event.EventType(), payload)
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}

	log.Println("Tailing events.> (Ctrl+C to stop)")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
