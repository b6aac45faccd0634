package messagestream

import (
	"fmt"
	"time"

	"hotel-booking-service/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

const (
	DriverAmqp      = "amqp"
	DriverGoChannel = "gochannel"
)

// Broker hands out publishers and subscribers for the configured driver.
type Broker interface {
	NewPublisher() (message.Publisher, error)
	NewSubscriber() (message.Subscriber, error)
}

type amqpBroker struct {
	cfg    amqp.Config
	logger watermill.LoggerAdapter
}

type goChannelBroker struct {
	pubSub *gochannel.GoChannel
}

func NewBroker(cfg *config.MessageStreamConfig, logger *zap.Logger) Broker {
	wmLogger := NewZapLoggerAdapter(logger)
	if cfg.Driver == DriverGoChannel {
		return &goChannelBroker{
			pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, wmLogger),
		}
	}
	return NewAmpq(cfg, wmLogger)
}

func NewAmpq(cfg *config.MessageStreamConfig, logger watermill.LoggerAdapter) Broker {
	scheme := "amqp"
	if cfg.SslEnable {
		scheme = "amqps"
	}
	uri := fmt.Sprintf("%s://%s:%s@%s:%s/", scheme, cfg.Username, cfg.Password, cfg.Host, cfg.Port)

	return &amqpBroker{
		cfg:    NewAmqpConfig(uri, cfg.ExchangeName),
		logger: logger,
	}
}

// NewAmqpConfig builds durable queues named after their topic. With an
// exchange name, messages go through that topic exchange routed by topic;
// without one they use the default exchange.
func NewAmqpConfig(uri string, exchangeName string) amqp.Config {
	cfg := amqp.NewDurableQueueConfig(uri)
	if exchangeName == "" {
		return cfg
	}

	cfg.Exchange = amqp.ExchangeConfig{
		GenerateName: func(topic string) string {
			return exchangeName
		},
		Type:    "topic",
		Durable: true,
	}
	cfg.QueueBind = amqp.QueueBindConfig{
		GenerateRoutingKey: func(topic string) string {
			return topic
		},
	}
	cfg.Publish.GenerateRoutingKey = func(topic string) string {
		return topic
	}
	return cfg
}

func (b *amqpBroker) NewPublisher() (message.Publisher, error) {
	return amqp.NewPublisher(b.cfg, b.logger)
}

func (b *amqpBroker) NewSubscriber() (message.Subscriber, error) {
	return amqp.NewSubscriber(b.cfg, b.logger)
}

func (b *goChannelBroker) NewPublisher() (message.Publisher, error) {
	return b.pubSub, nil
}

func (b *goChannelBroker) NewSubscriber() (message.Subscriber, error) {
	return b.pubSub, nil
}

type RouterConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	Logger          watermill.LoggerAdapter
}

// NewRouter wires one consumer. Failed messages are retried, then moved to poisonTopic.
func NewRouter(publisher message.Publisher, poisonTopic string, handlerName string, topic string, subscriber message.Subscriber, handlerFunc message.NoPublishHandlerFunc, cfg RouterConfig) (*message.Router, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		poisonQueue,
		middleware.Retry{
			MaxRetries:      cfg.MaxRetries,
			InitialInterval: cfg.InitialInterval,
			Logger:          logger,
		}.Middleware,
		middleware.Recoverer,
	)

	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
