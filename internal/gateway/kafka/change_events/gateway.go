package change_events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"service/internal/entities"
	"service/pkg/logger"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const queueSize = 1024

const (
	resultOK      = "ok"
	resultError   = "error"
	resultDropped = "dropped"
)

// Publisher отправляет события из очереди в отдельной горутине,
// запрос в HTTP обработчике не ждет Kafka и повторов.
type Publisher struct {
	log      gatewayLogger
	producer producer
	retrier  retrier
	topic    string

	mu     sync.RWMutex
	closed bool
	queue  chan entities.ChangeEvent
	done   chan struct{}
}

func New(log gatewayLogger, producer producer, topic string) *Publisher {
	return newPublisher(log, producer, topic, queueSize)
}

func newPublisher(log gatewayLogger, producer producer, topic string, size int) *Publisher {
	p := &Publisher{
		log: log.With(
			logger.NewField("topic", topic),
		),
		producer: producer,
		topic:    topic,
		queue:    make(chan entities.ChangeEvent, size),
		done:     make(chan struct{}),
	}
	p.retrier = backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetriable,
		OnRetry:         p.onRetry,
	})
	go p.loop()

	return p
}

// Notify ставит событие в очередь. При переполненной очереди или после Close событие отбрасывается.
func (p *Publisher) Notify(_ context.Context, event entities.ChangeEvent) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.closed {
		select {
		case p.queue <- event:
			return
		default:
		}
	}

	ChangeEventsPublishedTotal.WithLabelValues(event.Entity, event.Action.String(), resultDropped).Inc()
	p.log.With(
		logger.NewField("entity", event.Entity),
		logger.NewField("id", event.ID),
		logger.NewField("action", event.Action.String()),
	).Warn("change event dropped")
}

// Close перестает принимать события и ждет отправки уже поставленных в очередь.
func (p *Publisher) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	<-p.done
}

func (p *Publisher) loop() {
	defer close(p.done)

	for event := range p.queue {
		p.publish(context.Background(), event)
	}
}

// publish ошибка доставки логируется и не возвращается: запись в хранилище уже состоялась.
func (p *Publisher) publish(ctx context.Context, event entities.ChangeEvent) {
	eventLog := p.log.With(
		logger.NewField("entity", event.Entity),
		logger.NewField("id", event.ID),
		logger.NewField("action", event.Action.String()),
	)

	msg, err := toProducerMessage(p.topic, event)
	if err != nil {
		ChangeEventsPublishedTotal.WithLabelValues(event.Entity, event.Action.String(), resultError).Inc()
		eventLog.With(
			logger.NewField("error", err),
		).Error("build change event")
		return
	}

	start := time.Now()
	err = p.retrier.ExecuteWithContext(ctx, func(context.Context) error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	ChangeEventPublishDuration.WithLabelValues(event.Entity).Observe(time.Since(start).Seconds())

	if err != nil {
		ChangeEventsPublishedTotal.WithLabelValues(event.Entity, event.Action.String(), resultError).Inc()
		eventLog.With(
			logger.NewField("error", err),
		).Error("publish change event")
		return
	}

	ChangeEventsPublishedTotal.WithLabelValues(event.Entity, event.Action.String(), resultOK).Inc()
}

func (p *Publisher) onRetry(err error, next time.Duration) {
	ChangeEventPublishRetriesTotal.Inc()
	p.log.With(
		logger.NewField("error", err),
		logger.NewField("backoff", next),
	).Warn("retry publish change event")
}

// isRetriable повторяем только сбои связности с брокером.
func isRetriable(err error) bool {
	return errors.Is(err, sarama.ErrOutOfBrokers) ||
		errors.Is(err, sarama.ErrNotConnected) ||
		errors.Is(err, sarama.ErrNotLeaderForPartition) ||
		errors.Is(err, sarama.ErrLeaderNotAvailable) ||
		errors.Is(err, sarama.ErrRequestTimedOut)
}

// Noop используется, когда публикация событий выключена.
type Noop struct{}

func (Noop) Notify(context.Context, entities.ChangeEvent) {}
