package resource_get

import (
	"net/http"

	"service/internal/handlers/rest/resource"
	"service/internal/pkg/envelope"
	"service/pkg/logger"
)

type Handler[E any, ID comparable] struct {
	log      handlerLogger
	service  Service[E, ID]
	resource resource.Resource[E, ID]
}

func New[E any, ID comparable](log handlerLogger, service Service[E, ID], res resource.Resource[E, ID]) *Handler[E, ID] {
	handlerLog := log.With(
		logger.NewField("resource", res.Name),
	)

	return &Handler[E, ID]{
		log:      handlerLog,
		service:  service,
		resource: res,
	}
}

func (h *Handler[E, ID]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := h.resource.IDFromRequest(r)
	if err != nil {
		h.resource.Fail(w, h.log, "get", err)
		return
	}

	h.log.With(
		logger.NewField("id", id),
	).Info("request received to get by id")

	entity, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.resource.Fail(w, h.log, "get", err)
		return
	}

	err = envelope.Write(w, http.StatusOK, envelope.Success(h.resource.Messages.Found, h.resource.Encode(*entity)))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
