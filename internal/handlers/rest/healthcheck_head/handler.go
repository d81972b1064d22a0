package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	isShuttingDown *atomic.Bool
	db             Pinger
}

// New db может быть nil, тогда хранилище не проверяется.
func New(isShuttingDown *atomic.Bool, db Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		db:             db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	if h.db != nil && h.db.Ping(r.Context()) != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
