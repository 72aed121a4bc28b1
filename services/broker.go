package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// 事件主题
const (
	TopicPredictionCreated = "prediction.created"
	TopicMatchesLive       = "matches.live"
)

// BrokerMessage 定义了在 Broker 中传输的消息结构
type BrokerMessage struct {
	Topic string
	Key   string // 事件 ID
	Value []byte // JSON 编码的 Event
}

// MessageBroker 定义了消息队列的抽象接口
type MessageBroker interface {
	// Produce 发送消息到指定的 Topic
	Produce(msg BrokerMessage) error
	// Consume 订阅指定的 Topic，返回一个消息通道
	Consume(topic string) (<-chan BrokerMessage, error)
	// Close 关闭 Broker 连接
	Close() error
}

// Event 推送给订阅方的事件信封
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	FixtureID int             `json:"fixture_id,omitempty"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// GetTopicName 根据事件类型获取完整 Topic 名称
func GetTopicName(eventType string) string {
	return fmt.Sprintf("soccer-score.%s", eventType)
}

// NewEvent 构造事件
func NewEvent(eventType string, fixtureID int, data interface{}) (Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s event: %w", eventType, err)
	}
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		FixtureID: fixtureID,
		Timestamp: time.Now().UnixMilli(),
		Data:      raw,
	}, nil
}

// PublishEvent 编码事件并发送到对应 Topic
func PublishEvent(b MessageBroker, eventType string, fixtureID int, data interface{}) error {
	if b == nil {
		return nil
	}
	evt, err := NewEvent(eventType, fixtureID, data)
	if err != nil {
		return err
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode event envelope: %w", err)
	}
	return b.Produce(BrokerMessage{
		Topic: GetTopicName(eventType),
		Key:   evt.ID,
		Value: body,
	})
}

// DecodeEvent 解码消息体
func DecodeEvent(msg BrokerMessage) (Event, error) {
	var evt Event
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return Event{}, fmt.Errorf("decode event on %s: %w", msg.Topic, err)
	}
	return evt, nil
}
