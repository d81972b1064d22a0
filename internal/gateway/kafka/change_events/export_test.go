package change_events

func NewWithQueueSize(log gatewayLogger, producer producer, topic string, size int) *Publisher {
	return newPublisher(log, producer, topic, size)
}
