package resource_put

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

// ServeHTTP id из пути перекрывает id из тела запроса.
func (h *Handler[E, ID]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := h.resource.IDFromRequest(r)
	if err != nil {
		h.resource.Fail(w, h.log, "update", err)
		return
	}

	h.log.With(
		logger.NewField("id", id),
	).Info("request received to update")

	entity, err := h.resource.DecodeBody(r)
	if err != nil {
		h.resource.Fail(w, h.log, "update", err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, entity)
	if err != nil {
		h.resource.Fail(w, h.log, "update", err)
		return
	}

	message := h.resource.Messages.Updated(id)
	h.log.Info(message)

	err = envelope.Write(w, http.StatusOK, envelope.Envelope[string]{
		Status:  envelope.StatusSuccess,
		Message: message,
		Data:    h.resource.Echo(*updated, h.resource.EchoUpdated),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
