package stream

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher is the part of mqtt.Client a MqttSink needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MqttSink sends frames as binary over MQTT.
type MqttSink struct {
	client Publisher
	topic  string
	qos    byte
}

// NewMqttSink creates a sink publishing to topic.
func NewMqttSink(client Publisher, topic string, qos byte) *MqttSink {
	s := new(MqttSink)
	s.client = client
	s.topic = topic
	s.qos = qos
	return s
}

func (s *MqttSink) DrawFrame(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", s.topic, err)
	}
	return nil
}
