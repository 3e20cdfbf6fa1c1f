package kafka_test

import (
	"context"
	"deportur/config"
	"deportur/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	Action string `json:"action"`
	ID     int64  `json:"id"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{Key: "cliente:7", Value: event{Action: "create", ID: 7}}

	msg, err := message.ToKafkaMessage("deportur.admin.activity")

	require.NoError(t, err)
	assert.Equal(t, "deportur.admin.activity", msg.Topic)
	assert.Equal(t, []byte("cliente:7"), msg.Key)
	assert.JSONEq(t, `{"action":"create","id":7}`, string(msg.Value))
}

func TestMessage_ToKafkaMessageInvalidValue(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage("topic")

	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}

	client := kafka.New(cfg)

	assert.NoError(t, client.SendMessages(context.Background(), "topic", []kafka.Message{{Key: "k", Value: 1}}))
	assert.NoError(t, client.Close())
}
