package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicProgressChanged carries in-process change notifications consumed by
// the stats watcher. One message per successful progress write or reset.
const TopicProgressChanged = "progress.changed"

type IBusService interface {
	Publish(ctx context.Context, payload []byte) error
}

type busService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewBusService(topicName string, pubSub *gochannel.GoChannel) IBusService {
	return &busService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (b *busService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return b.pubSub.Publish(b.topicName, msg)
}
