package resources_get

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

// ServeHTTP пустой список это warn с data: null и кодом 200.
func (h *Handler[E, ID]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Info("request received to get all")

	list, err := h.service.List(r.Context())
	if err != nil {
		h.resource.Fail(w, h.log, "list", err)
		return
	}

	if len(list) == 0 {
		h.log.Warn(h.resource.Messages.Empty)
		err = envelope.Write(w, http.StatusOK, envelope.Warn[[]any](h.resource.Messages.Empty))
	} else {
		err = envelope.Write(w, http.StatusOK, envelope.Success(h.resource.Messages.Listed, h.resource.EncodeList(list)))
	}
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
