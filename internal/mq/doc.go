// Package mq предоставляет инфраструктуру для работы с RabbitMQ.
//
// Структура:
//   - connector.go  — установка соединения с бесконечным retry (фиксированная задержка)
//   - session.go    — Session поверх AMQP соединения и канала (DialAMQP)
//   - connection.go — Connection: владение Session, проверка liveness
//   - publisher.go  — публикация payload в очередь через default exchange
//   - topology.go   — объявление durable очереди
//   - retry.go      — RetryPolicy (количество попыток, фиксированная задержка)
//
// Ошибки публикации делятся на два класса:
//   - ErrConnectionClosed — транспорт закрыт, нужен немедленный reconnect
//   - BrokerError         — любая другая ошибка брокера
package mq
