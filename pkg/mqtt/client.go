package mqtt

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

type Config struct {
	Broker               string
	ClientID             string
	Username             string
	Password             string
	CleanSession         bool
	KeepAlive            int
	ConnectTimeout       int
	AutoReconnect        bool
	MaxReconnectInterval time.Duration
}

// Client is a thin wrapper over the paho client with structured logging.
type Client struct {
	client mqtt.Client
	config *Config
}

type MessageHandler func(topic string, payload []byte)

func NewClient(config *Config) *Client {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(config.Broker)
	opts.SetClientID(config.ClientID)
	if config.Username != "" {
		opts.SetUsername(config.Username)
		opts.SetPassword(config.Password)
	}
	opts.SetCleanSession(config.CleanSession)
	if config.KeepAlive > 0 {
		opts.SetKeepAlive(time.Duration(config.KeepAlive) * time.Second)
	}
	if config.ConnectTimeout > 0 {
		opts.SetConnectTimeout(time.Duration(config.ConnectTimeout) * time.Second)
	}
	opts.SetAutoReconnect(config.AutoReconnect)
	if config.MaxReconnectInterval > 0 {
		opts.SetMaxReconnectInterval(config.MaxReconnectInterval)
	}

	opts.SetOnConnectHandler(func(client mqtt.Client) {
		zap.L().Info("mqtt client connected", zap.String("broker", config.Broker))
	})
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		zap.L().Warn("mqtt connection lost", zap.Error(err))
	})
	opts.SetReconnectingHandler(func(c mqtt.Client, opts *mqtt.ClientOptions) {
		zap.L().Info("reconnecting to mqtt broker")
	})

	return &Client{
		client: mqtt.NewClient(opts),
		config: config,
	}
}

// Connect establishes a connection to the broker.
func (c *Client) Connect() error {
	token := c.client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}
	return nil
}

// Publish sends a message to a topic.
func (c *Client) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := c.client.Publish(topic, qos, retained, payload)
	token.Wait()
	return token.Error()
}

// Subscribe registers a handler for a topic.
func (c *Client) Subscribe(topic string, qos byte, handler MessageHandler) error {
	token := c.client.Subscribe(topic, qos, func(client mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", topic, err)
	}
	return nil
}

// Disconnect closes the broker connection.
func (c *Client) Disconnect() {
	c.client.Disconnect(250)
}

// IsConnected reports connection status.
func (c *Client) IsConnected() bool {
	return c.client.IsConnected()
}
