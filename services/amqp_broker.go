package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/ashleypule/soccer-score/logger"
	"github.com/streadway/amqp"
)

// AMQPBroker 基于 topic exchange 的 MessageBroker 实现, 多实例部署时共享事件
type AMQPBroker struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string

	mu     sync.Mutex // amqp.Channel 不支持并发发布
	closed bool
}

// NewAMQPBroker 连接 AMQP 并声明 exchange
func NewAMQPBroker(url, exchange string) (*AMQPBroker, error) {
	logger.Printf("Connecting to AMQP exchange %s...", exchange)

	conn, err := dialWithRetry(url, amqp.Config{
		Heartbeat: 30 * time.Second,
		Locale:    "en_US",
	}, DefaultReconnectConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.Println("Connected to AMQP server")

	return &AMQPBroker{conn: conn, channel: channel, exchange: exchange}, nil
}

// Produce 实现 MessageBroker 接口, Topic 作为 routing key
func (b *AMQPBroker) Produce(msg BrokerMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return fmt.Errorf("amqp broker closed")
	}

	err := b.channel.Publish(
		b.exchange,
		msg.Topic,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   msg.Key,
			Timestamp:   time.Now(),
			Body:        msg.Value,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", msg.Topic, err)
	}
	return nil
}

// Consume 实现 MessageBroker 接口, 每个消费者一个独占队列
func (b *AMQPBroker) Consume(topic string) (<-chan BrokerMessage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	queue, err := b.channel.QueueDeclare(
		"",    // name (empty for auto-generated)
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := b.channel.QueueBind(
		queue.Name,
		topic,
		b.exchange,
		false,
		nil,
	); err != nil {
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	deliveries, err := b.channel.Consume(
		queue.Name,
		"",    // consumer
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return nil, fmt.Errorf("failed to consume: %w", err)
	}

	logger.Printf("Queue %s bound to routing key: %s", queue.Name, topic)

	out := make(chan BrokerMessage, 256)
	go func() {
		defer close(out)
		for d := range deliveries {
			out <- BrokerMessage{
				Topic: d.RoutingKey,
				Key:   d.MessageId,
				Value: d.Body,
			}
		}
	}()

	return out, nil
}

// Close 关闭连接, 所有 Consume 通道随之关闭
func (b *AMQPBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	logger.Println("Stopping AMQP broker...")
	if err := b.channel.Close(); err != nil {
		logger.Warnf("close amqp channel: %v", err)
	}
	return b.conn.Close()
}
