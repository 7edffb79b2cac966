package service

import (
	"context"
	"encoding/json"
	"log"

	"edutrack-advisor-be/internal/dto"
	"edutrack-advisor-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// FlowDelivery pushes recorded interaction traces to live observers.
// Typically implemented by the WebSocket Hub.
type FlowDelivery interface {
	BroadcastFlow(payload []byte)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  FlowDelivery
	mailer    mailer.IEscalationMailer
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery FlowDelivery,
	escalationMailer mailer.IEscalationMailer,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
		mailer:    escalationMailer,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.InteractionRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal interaction message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing recorded interaction %s (intent=%s)", payload.Id, payload.Intent)

	if cs.delivery != nil {
		cs.delivery.BroadcastFlow(msg.Payload)
	}

	if payload.Escalated && cs.mailer != nil {
		if err := cs.mailer.SendWelfareEscalation(payload.Query, payload.Answer); err != nil {
			log.Printf("[ERROR] Failed to send welfare escalation for %s: %v", payload.Id, err)
			// Mail failure is not retriable from here; the flag stays on the log row.
		}
	}

	msg.Ack()
}
