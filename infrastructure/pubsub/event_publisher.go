package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cloud.google.com/go/pubsub"

	"yt-autopublish/domain/model"
	"yt-autopublish/domain/repository"
	"yt-autopublish/infrastructure/logger"
)

var _ repository.IPublishEvents = (*EventPublisher)(nil)

// EventPublisher announces published videos on a Pub/Sub topic
type EventPublisher struct {
	client    *pubsub.Client
	topicName string

	once  sync.Once
	topic *pubsub.Topic
	err   error
}

func NewEventPublisher(client *pubsub.Client, topicName string) *EventPublisher {
	return &EventPublisher{client: client, topicName: topicName}
}

// Published sends the event as JSON and returns the server message ID.
// The topic is created on first use if it does not exist yet.
func (p *EventPublisher) Published(ctx context.Context, event *model.PublishedEvent) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("pubsub client is not configured")
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshal published event: %w", err)
	}

	topic, err := p.ensureTopic(ctx)
	if err != nil {
		return "", err
	}

	msg := &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"runId":   event.RunID,
			"videoId": event.VideoID,
		},
	}
	serverID, err := topic.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("publish to %s: %w", p.topicName, err)
	}

	logger.GetLogger().WithField("server ID", serverID).WithField("videoId", event.VideoID).Info("Message published")
	return serverID, nil
}

func (p *EventPublisher) ensureTopic(ctx context.Context) (*pubsub.Topic, error) {
	p.once.Do(func() {
		topic := p.client.Topic(p.topicName)
		exists, err := topic.Exists(ctx)
		if err != nil {
			p.err = fmt.Errorf("check topic %s: %w", p.topicName, err)
			return
		}
		if !exists {
			logger.GetLogger().WithField("topic", p.topicName).Info("Topic doesn't exist - creating it")
			if topic, err = p.client.CreateTopic(ctx, p.topicName); err != nil {
				p.err = fmt.Errorf("create topic %s: %w", p.topicName, err)
				return
			}
		}
		p.topic = topic
	})
	return p.topic, p.err
}

// Stop flushes pending messages
func (p *EventPublisher) Stop() {
	if p.topic != nil {
		p.topic.Stop()
	}
}
