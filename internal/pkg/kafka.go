package pkg

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// ContentEvent 帖子/评论/官方回复的变更事件
type ContentEvent struct {
	Type      string `json:"type"` // post_created / post_deleted / comment_created ...
	EntityID  uint64 `json:"entity_id"`
	PostID    uint64 `json:"post_id,omitempty"`
	ActorID   uint64 `json:"actor_id"`
	EventTime string `json:"event_time"`
}

func NewKafkaProducer(cfg KafkaConfig) (*KafkaProducer, error) {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}, nil
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *KafkaProducer) Send(ctx context.Context, key string, value []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}
	return p.writer.WriteMessages(ctx, msg)
}

// PublishContentEvent 异步上报，生产者未配置或发送失败只记日志
func (p *KafkaProducer) PublishContentEvent(eventType string, entityID, postID, actorID uint64) {
	if p == nil || p.writer == nil {
		return
	}
	ev := ContentEvent{
		Type:      eventType,
		EntityID:  entityID,
		PostID:    postID,
		ActorID:   actorID,
		EventTime: time.Now().UTC().Format(time.RFC3339Nano),
	}
	payload, _ := json.Marshal(ev)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := p.Send(ctx, MakeKeyFromID(postID), payload); err != nil {
			Logger.Warningf("kafka publish %s failed: %v", eventType, err)
		}
	}()
}

func MakeKeyFromID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
