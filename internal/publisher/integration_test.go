//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"dqx_news/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishDiscovered() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-discovered",
		RoutingKey: "test-routing-key-discovered",
		QueueName:  "test-queue-discovered",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	item := &domain.Item{
		ID:          "abc123",
		Title:       "大型アップデート情報",
		Category:    domain.CategoryUpdates,
		URL:         "https://hiroba.dqx.jp/sc/news/detail/abc123/",
		PublishedAt: now,
		FirstSeenAt: now,
		LastSeenAt:  now,
	}

	err = pub.Publish(s.ctx, item, true)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received ItemMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("discovered", received.Action)
	s.Equal("abc123", received.Item.ID)
	s.Equal("大型アップデート情報", received.Item.Title)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishRefreshed() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-refreshed",
		RoutingKey: "test-routing-key-refreshed",
		QueueName:  "test-queue-refreshed",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	item := &domain.Item{
		ID:          "def456",
		Title:       "メンテナンスのお知らせ",
		Category:    domain.CategoryMaintenance,
		URL:         "https://hiroba.dqx.jp/sc/news/detail/def456/",
		PublishedAt: now,
		FirstSeenAt: now,
		LastSeenAt:  now,
	}

	err = pub.Publish(s.ctx, item, false)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received ItemMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("refreshed", received.Action)
	s.Equal("def456", received.Item.ID)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
