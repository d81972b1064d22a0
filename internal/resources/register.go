package resources

import (
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/handlers/rest/resource_delete"
	"service/internal/handlers/rest/resource_get"
	"service/internal/handlers/rest/resource_post"
	"service/internal/handlers/rest/resource_put"
	"service/internal/handlers/rest/resources_get"
	"service/pkg/logger"
)

type Service[E any, ID comparable] interface {
	resources_get.Service[E]
	resource_get.Service[E, ID]
	resource_post.Service[E]
	resource_put.Service[E, ID]
	resource_delete.Service[ID]
}

func Register[E any, ID comparable](router *mux.Router, log logger.Logger, service Service[E, ID], def Definition[E, ID]) {
	router.Handle(def.Routes.List, resources_get.New[E, ID](log, service, def.Resource)).Methods(http.MethodGet)
	router.Handle(def.Routes.Get, resource_get.New[E, ID](log, service, def.Resource)).Methods(http.MethodGet)
	router.Handle(def.Routes.Create, resource_post.New[E, ID](log, service, def.Resource)).Methods(http.MethodPost)
	router.Handle(def.Routes.Update, resource_put.New[E, ID](log, service, def.Resource)).Methods(http.MethodPut)
	router.Handle(def.Routes.Delete, resource_delete.New[E, ID](log, service, def.Resource)).Methods(http.MethodDelete)
}
