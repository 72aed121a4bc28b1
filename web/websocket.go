package web

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ashleypule/soccer-score/logger"
	"github.com/ashleypule/soccer-score/services"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// WSMessage WebSocket消息结构
type WSMessage struct {
	Type      string      `json:"type"`
	Topic     string      `json:"topic,omitempty"`
	FixtureID int         `json:"fixture_id,omitempty"`
	Timestamp int64       `json:"timestamp,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// clientRequest 客户端发送的订阅消息
type clientRequest struct {
	Type       string   `json:"type"`
	Topics     []string `json:"topics"`
	FixtureIDs []int    `json:"fixture_ids"`
}

// Client WebSocket客户端
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu         sync.RWMutex
	topics     map[string]bool // 事件类型过滤器
	fixtureIDs map[int]bool    // 比赛ID过滤器
}

// Hub WebSocket Hub
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *WSMessage
	register   chan *Client
	unregister chan *Client
	reply      chan clientReply
	mu         sync.RWMutex
}

// clientReply 只发给单个客户端的消息
type clientReply struct {
	client  *Client
	message *WSMessage
}

// NewHub 创建新的Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *WSMessage, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		reply:      make(chan clientReply, 16),
	}
}

// Run 运行Hub, ctx 取消时关闭所有客户端
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			n := len(h.clients)
			h.mu.Unlock()
			logger.Printf("[Hub] Client registered. Total clients: %d", n)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			n := len(h.clients)
			h.mu.Unlock()
			logger.Printf("[Hub] Client unregistered. Total clients: %d", n)

		case r := <-h.reply:
			h.mu.Lock()
			if _, ok := h.clients[r.client]; ok {
				select {
				case r.client.send <- marshalMessage(r.message):
				default:
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data := marshalMessage(message)
			h.mu.Lock()
			for client := range h.clients {
				if !client.shouldReceive(message) {
					continue
				}

				select {
				case client.send <- data:
				default:
					// 慢客户端直接断开
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast 广播消息
func (h *Hub) Broadcast(message *WSMessage) {
	h.broadcast <- message
}

// ClientCount 当前连接数
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Pipe 同步订阅 broker 的 topic, 之后在后台把事件转发给 WebSocket 客户端直到 ctx 取消或通道关闭
func (h *Hub) Pipe(ctx context.Context, broker services.MessageBroker, eventTypes ...string) error {
	for _, eventType := range eventTypes {
		ch, err := broker.Consume(services.GetTopicName(eventType))
		if err != nil {
			return err
		}
		go h.forward(ctx, ch)
	}
	return nil
}

func (h *Hub) forward(ctx context.Context, ch <-chan services.BrokerMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			evt, err := services.DecodeEvent(msg)
			if err != nil {
				logger.Warnf("[Hub] %v", err)
				continue
			}
			select {
			case h.broadcast <- &WSMessage{
				Type:      "event",
				Topic:     evt.Type,
				FixtureID: evt.FixtureID,
				Timestamp: evt.Timestamp,
				Data:      evt.Data,
			}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// marshalMessage 序列化消息
func marshalMessage(message *WSMessage) []byte {
	data, err := json.Marshal(message)
	if err != nil {
		logger.Errorf("[Hub] Failed to marshal message: %v", err)
		return []byte("{}")
	}
	return data
}

// handleWebSocket WebSocket连接处理
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Errorf("[Hub] WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		hub:        s.wsHub,
		conn:       conn,
		send:       make(chan []byte, 256),
		topics:     make(map[string]bool),
		fixtureIDs: make(map[int]bool),
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// shouldReceive 检查客户端是否应该接收消息
func (c *Client) shouldReceive(message *WSMessage) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// 只对事件做过滤
	if message.Type != "event" {
		return true
	}

	if len(c.topics) > 0 && !c.topics[message.Topic] {
		return false
	}

	if len(c.fixtureIDs) > 0 && !c.fixtureIDs[message.FixtureID] {
		return false
	}

	return true
}

// readPump 读取客户端消息
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warnf("[Hub] WebSocket error: %v", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump 向客户端写入消息
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage 处理客户端发送的消息
func (c *Client) handleMessage(message []byte) {
	var req clientRequest
	if err := json.Unmarshal(message, &req); err != nil {
		logger.Debugf("[Hub] Failed to unmarshal client message: %v", err)
		return
	}

	c.mu.Lock()
	switch req.Type {
	case "subscribe":
		c.topics = make(map[string]bool)
		for _, t := range req.Topics {
			c.topics[t] = true
		}
		c.fixtureIDs = make(map[int]bool)
		for _, id := range req.FixtureIDs {
			c.fixtureIDs[id] = true
		}

	case "unsubscribe":
		c.topics = make(map[string]bool)
		c.fixtureIDs = make(map[int]bool)

	default:
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	// 确认订阅, 走 hub 保证 send 通道未关闭
	c.hub.reply <- clientReply{client: c, message: &WSMessage{
		Type:      req.Type + "d",
		Timestamp: time.Now().UnixMilli(),
		Data:      req,
	}}
}
