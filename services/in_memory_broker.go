package services

import (
	"sync"

	"github.com/ashleypule/soccer-score/logger"
)

// InMemoryBroker 是 MessageBroker 接口的内存实现，单进程部署时使用
type InMemoryBroker struct {
	// 存储每个 Topic 对应的消费者通道列表
	consumers map[string][]chan BrokerMessage
	mu        sync.RWMutex
	closed    bool
}

// NewInMemoryBroker 创建 InMemoryBroker 实例
func NewInMemoryBroker() *InMemoryBroker {
	return &InMemoryBroker{
		consumers: make(map[string][]chan BrokerMessage),
	}
}

// Produce 实现 MessageBroker 接口, 消息广播给该 Topic 的全部消费者
func (b *InMemoryBroker) Produce(msg BrokerMessage) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	consumerChans := b.consumers[msg.Topic]
	if len(consumerChans) == 0 {
		logger.Debugf("[InMemoryBroker] Topic %s has no active consumers. Message dropped.", msg.Topic)
		return nil
	}

	for _, ch := range consumerChans {
		// 通道满了则丢弃, 不阻塞生产者
		select {
		case ch <- msg:
		default:
			logger.Warnf("[InMemoryBroker] Topic %s consumer channel full. Message dropped.", msg.Topic)
		}
	}

	return nil
}

// Consume 实现 MessageBroker 接口
func (b *InMemoryBroker) Consume(topic string) (<-chan BrokerMessage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	consumerChan := make(chan BrokerMessage, 256)
	if b.closed {
		close(consumerChan)
		return consumerChan, nil
	}

	b.consumers[topic] = append(b.consumers[topic], consumerChan)

	logger.Printf("[InMemoryBroker] Consumer subscribed to topic %s. Total consumers for topic: %d", topic, len(b.consumers[topic]))

	return consumerChan, nil
}

// Close 实现 MessageBroker 接口
func (b *InMemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	// 关闭所有消费者通道
	for _, chans := range b.consumers {
		for _, ch := range chans {
			close(ch)
		}
	}
	b.consumers = make(map[string][]chan BrokerMessage)

	logger.Println("[InMemoryBroker] Closed all channels.")
	return nil
}
