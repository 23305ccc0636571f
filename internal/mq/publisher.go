package mq

import (
	"context"
	"errors"
	"fmt"
)

// Publish публикует payload в очередь соединения через default exchange.
//
// Возвращает ошибку, оборачивающую ErrConnectionClosed, если транспорт закрыт
// (в том числе до вызова), и *BrokerError для остальных ошибок.
func (c *Connection) Publish(ctx context.Context, payload []byte) error {
	if !c.IsAlive() {
		return ErrConnectionClosed
	}

	err := c.session.Publish(ctx, c.queue, payload)
	if err != nil {
		if errors.Is(err, ErrConnectionClosed) {
			return err
		}
		if !c.IsAlive() {
			return fmt.Errorf("%w: %v", ErrConnectionClosed, err)
		}
		return &BrokerError{Queue: c.queue, Err: err}
	}

	c.logger.Debug("published message",
		"exchange", DefaultExchange,
		"routing_key", c.queue,
		"bytes", len(payload),
	)

	return nil
}
