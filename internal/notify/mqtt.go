package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	qosAtLeastOnce = 1
	publishTimeout = 5 * time.Second
)

// publisher is the subset of mqtt.Client used by MQTT.
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// MQTT publishes invitation events as JSON to
// <prefix>/users/<inviteeID>/invites with QoS 1.
type MQTT struct {
	client publisher
	prefix string
}

var _ Notifier = (*MQTT)(nil)

// NewMQTT connects to brokerURL (e.g. "tcp://localhost:1883") and returns a
// notifier that reconnects automatically.
func NewMQTT(brokerURL, clientID, topicPrefix string) (*MQTT, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	tok := client.Connect()
	if !tok.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("notify.NewMQTT: connect to %s: timed out", brokerURL)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("notify.NewMQTT: connect to %s: %w", brokerURL, err)
	}
	return newMQTT(client, topicPrefix), nil
}

func newMQTT(client publisher, topicPrefix string) *MQTT {
	return &MQTT{client: client, prefix: topicPrefix}
}

// Topic returns the topic invitation events for ev are published on.
func (m *MQTT) Topic(ev InviteEvent) string {
	return fmt.Sprintf("%s/users/%s/invites", m.prefix, ev.InviteeID)
}

// Invited publishes ev and waits for the broker to acknowledge it, bounded by
// ctx and an internal timeout.
func (m *MQTT) Invited(ctx context.Context, ev InviteEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("notify.MQTT.Invited: encode: %w", err)
	}

	tok := m.client.Publish(m.Topic(ev), qosAtLeastOnce, false, payload)

	timeout := publishTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}
	if !tok.WaitTimeout(timeout) {
		return fmt.Errorf("notify.MQTT.Invited: publish timed out")
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("notify.MQTT.Invited: %w", err)
	}
	return nil
}

// Close disconnects from the broker, giving in-flight messages 250ms to drain.
func (m *MQTT) Close() {
	m.client.Disconnect(250)
}
