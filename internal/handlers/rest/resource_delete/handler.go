package resource_delete

import (
	"net/http"

	"service/internal/handlers/rest/resource"
	"service/internal/pkg/envelope"
	"service/pkg/logger"
)

type Handler[E any, ID comparable] struct {
	log      handlerLogger
	service  Service[ID]
	resource resource.Resource[E, ID]
}

func New[E any, ID comparable](log handlerLogger, service Service[ID], res resource.Resource[E, ID]) *Handler[E, ID] {
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
		h.resource.Fail(w, h.log, "delete", err)
		return
	}

	h.log.With(
		logger.NewField("id", id),
	).Info("request received to delete")

	err = h.service.Delete(r.Context(), id)
	if err != nil {
		h.resource.Fail(w, h.log, "delete", err)
		return
	}

	message := h.resource.Messages.Deleted(id)
	h.log.Info(message)

	err = envelope.Write(w, http.StatusOK, envelope.SuccessEmpty(message))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
