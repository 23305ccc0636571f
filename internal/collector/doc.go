// Package collector периодически получает данные о погоде и публикует их в RabbitMQ.
//
// # Обзор
//
// Loop — единственный воркер коллектора. Он владеет соединением с брокером,
// вызывает Fetcher с фиксированным интервалом и передаёт полученный payload
// в очередь. Циклы выполняются строго последовательно: следующий fetch
// не начинается, пока не завершена публикация (или обработка её ошибки).
//
//	loop := collector.New(collector.Config{
//	    Broker:  connector,
//	    Fetcher: fetcher,
//	    Logger:  logger,
//	})
//
//	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
//	    log.Fatal(err)
//	}
//
// # Состояния
//
//	AWAIT_CONNECTION → FETCHING → PUBLISHING → SLEEPING → AWAIT_CONNECTION
//
//   - AWAIT_CONNECTION: если живого соединения нет — Broker.Connect (блокируется до успеха)
//   - FETCHING: ошибка fetch → лог, пауза RetryDelay (5s), AWAIT_CONNECTION
//   - PUBLISHING: успех → SLEEPING; ErrConnectionClosed → payload отбрасывается,
//     сразу AWAIT_CONNECTION; BrokerError → лог, пауза RetryDelay, AWAIT_CONNECTION
//   - SLEEPING: пауза Interval (30s), AWAIT_CONNECTION
//
// Интервал штатной работы (30s) и интервал восстановления (5s) разделены:
// во время сбоев API не нагружается чаще, чем нужно, а в штатном режиме
// нет лишней задержки.
//
// # Гарантии доставки
//
// At-most-once на цикл: payload, который не удалось опубликовать,
// не сохраняется и не публикуется повторно.
package collector
