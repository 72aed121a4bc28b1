package web

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashleypule/soccer-score/config"
	"github.com/ashleypule/soccer-score/pkg/models"
	"github.com/ashleypule/soccer-score/services"
)

func readWS(t *testing.T, conn *websocket.Conn) WSMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg WSMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestWebSocketSubscriptionFilters(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	broker := services.NewInMemoryBroker()
	defer broker.Close()
	require.NoError(t, hub.Pipe(ctx, broker, services.TopicMatchesLive, services.TopicPredictionCreated))

	srv := NewServer(&config.Config{}, Services{}, hub)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"type":        "subscribe",
		"topics":      []string{services.TopicMatchesLive},
		"fixture_ids": []int{5},
	}))
	ack := readWS(t, conn)
	assert.Equal(t, "subscribed", ack.Type)

	assert.Equal(t, 1, hub.ClientCount())

	require.NoError(t, services.PublishEvent(broker, services.TopicPredictionCreated, 5, models.MatchPrediction{FixtureID: 5}))
	require.NoError(t, services.PublishEvent(broker, services.TopicMatchesLive, 6, models.Match{ID: 6}))
	require.NoError(t, services.PublishEvent(broker, services.TopicMatchesLive, 5, models.Match{ID: 5}))

	msg := readWS(t, conn)
	assert.Equal(t, "event", msg.Type)
	assert.Equal(t, services.TopicMatchesLive, msg.Topic)
	assert.Equal(t, 5, msg.FixtureID)
}
