package rate_limiter

import "service/pkg/logger"

// Limiter решает, пропустить ли запрос. Реализация должна быть безопасной для конкурентного вызова.
type Limiter interface {
	Allow() bool
}

// handlerLogger поля запроса добавляются через With перед каждой записью.
type handlerLogger interface {
	With(fields ...logger.Field) logger.Logger
}
