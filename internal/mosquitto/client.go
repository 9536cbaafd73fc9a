package mosquitto

import (
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type Client struct {
	client mqtt.Client
	log    *slog.Logger
}

type Config struct {
	Broker   string
	ClientId string
	Username string
	Password string
	Topics   []string
}

// MsgHandler разбирает одно сообщение из топика
type MsgHandler interface {
	HandleMsg(msg []byte) error
}

const (
	broker_connection_limit = 60 // Максимальное время в секундах, которое сервис будет ожидать пока брокер поднимается
	subscribe_timeout       = 10 * time.Second
	disconnect_quiesce_ms   = 250
)

func NewClient(cfg Config, handler MsgHandler, log *slog.Logger) (*Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientId)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetAutoReconnect(true)
	opts.SetResumeSubs(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warn("broker connection lost", "err", err)
	})

	client := mqtt.NewClient(opts)

	token := client.Connect()
	isConnected := token.WaitTimeout(broker_connection_limit * time.Second)
	if !isConnected {
		return nil, fmt.Errorf("broker connection failed :(")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("broker connection failed: %w", err)
	}

	c := &Client{client: client, log: log}
	for _, topic := range cfg.Topics {
		if err := c.subscribe(topic, handler); err != nil {
			client.Disconnect(disconnect_quiesce_ms)
			return nil, err
		}
	}

	return c, nil
}

func (c *Client) subscribe(topic string, handler MsgHandler) error {
	token := c.client.Subscribe(topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		if err := handler.HandleMsg(msg.Payload()); err != nil {
			c.log.Debug("message dropped", "topic", msg.Topic(), "err", err)
		}
	})
	if !token.WaitTimeout(subscribe_timeout) {
		return fmt.Errorf("subscribe to %q timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe to %q: %w", topic, err)
	}

	c.log.Info("subscribed", "topic", topic)
	return nil
}

func (c *Client) Close() {
	c.client.Disconnect(disconnect_quiesce_ms)
}
