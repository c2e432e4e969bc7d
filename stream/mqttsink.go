package stream

import (
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
)

// MqttSink publishes frames as binary over MQTT to an ledrx device.
type MqttSink struct {
	client mqtt.Client
	topic  string
}

// NewMqttSink creates an MqttSink publishing on topic.
func NewMqttSink(client mqtt.Client, topic string) *MqttSink {
	return &MqttSink{client: client, topic: topic}
}

// Send publishes one frame and waits for delivery.
func (m *MqttSink) Send(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "could not encode frame")
	}

	token := m.client.Publish(m.topic, 2, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return errors.Wrapf(err, "could not publish to %s", m.topic)
	}
	return nil
}
