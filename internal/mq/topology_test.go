package mq

import (
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type declareCall struct {
	name                                   string
	durable, autoDelete, exclusive, noWait bool
}

type fakeDeclarer struct {
	calls []declareCall
	err   error
}

func (d *fakeDeclarer) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, _ amqp.Table) (amqp.Queue, error) {
	d.calls = append(d.calls, declareCall{name, durable, autoDelete, exclusive, noWait})
	return amqp.Queue{Name: name}, d.err
}

func TestDeclareQueue_Durable(t *testing.T) {
	d := &fakeDeclarer{}

	require.NoError(t, DeclareQueue(d, "clima"))
	require.NoError(t, DeclareQueue(d, "clima"))

	require.Len(t, d.calls, 2)
	for _, c := range d.calls {
		assert.Equal(t, declareCall{name: "clima", durable: true}, c)
	}
}

func TestDeclareQueue_EmptyName(t *testing.T) {
	d := &fakeDeclarer{}

	assert.Error(t, DeclareQueue(d, ""))
	assert.Empty(t, d.calls)
}

func TestDeclareQueue_Error(t *testing.T) {
	cause := errors.New("PRECONDITION_FAILED")
	d := &fakeDeclarer{err: cause}

	err := DeclareQueue(d, "clima")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "clima")
}
