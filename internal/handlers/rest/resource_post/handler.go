package resource_post

import (
	"net/http"

	"service/internal/handlers/rest/resource"
	"service/internal/pkg/envelope"
	"service/pkg/logger"
)

type Handler[E any, ID comparable] struct {
	log      handlerLogger
	service  Service[E]
	resource resource.Resource[E, ID]
}

func New[E any, ID comparable](log handlerLogger, service Service[E], res resource.Resource[E, ID]) *Handler[E, ID] {
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
	h.log.Info("request received to create")

	entity, err := h.resource.DecodeBody(r)
	if err != nil {
		h.resource.Fail(w, h.log, "create", err)
		return
	}

	created, err := h.service.Create(r.Context(), entity)
	if err != nil {
		h.resource.Fail(w, h.log, "create", err)
		return
	}

	message := h.resource.Messages.Created(*created)
	h.log.Info(message)

	err = envelope.Write(w, http.StatusOK, envelope.Envelope[string]{
		Status:  envelope.StatusSuccess,
		Message: message,
		Data:    h.resource.Echo(*created, h.resource.EchoCreated),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
