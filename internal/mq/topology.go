package mq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange — default exchange RabbitMQ.
// Сообщения маршрутизируются в очередь с именем, равным routing key.
const DefaultExchange = ""

// queueDeclarer — часть *amqp.Channel, нужная для объявления очереди.
type queueDeclarer interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
}

// DeclareQueue объявляет durable очередь.
// Повторное объявление с теми же параметрами идемпотентно.
func DeclareQueue(ch queueDeclarer, queue string) error {
	if queue == "" {
		return fmt.Errorf("declare queue: empty queue name")
	}

	_, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return nil
}
