package resources

import (
	"fmt"

	"service/internal/entities"
	"service/internal/handlers/rest/resource"
	"service/internal/service/crud"
)

// Routes шаблоны путей gorilla/mux для пяти операций ресурса.
type Routes struct {
	List   string
	Get    string
	Create string
	Update string
	Delete string
}

func restRoutes(prefix, param string) Routes {
	item := prefix + "/{" + param + "}"
	return Routes{
		List:   prefix,
		Get:    item,
		Create: prefix,
		Update: item,
		Delete: item,
	}
}

type Definition[E any, ID comparable] struct {
	Resource resource.Resource[E, ID]
	Routes   Routes
	Service  crud.Config[ID]
}

var User = Definition[entities.User, string]{
	Resource: resource.Resource[entities.User, string]{
		Name:      "user",
		PathParam: "id",
		ParseID:   resource.StringID,
		Decode:    resource.DecodeDTO(userFromDTO),
		Encode:    resource.EncodeDTO(userToDTO),
		Messages: resource.Messages[entities.User, string]{
			Empty:  "No users found",
			Listed: "Users retrieved successfully",
			Found:  "User found",
			Created: func(u entities.User) string {
				return "New user created with ID: " + u.UserID
			},
			Updated: func(id string) string {
				return "User with ID: " + id + " updated successfully"
			},
			Deleted: func(id string) string {
				return "User with ID: " + id + " deleted successfully"
			},
		},
		NotFoundBody: resource.NotFoundPlainText,
		EchoCreated:  true,
		EchoUpdated:  true,
	},
	Routes: restRoutes("/users", "id"),
	Service: crud.Config[string]{
		Entity: "user",
		NotFoundMessage: func(id string) string {
			return fmt.Sprintf("User not found for ID: %s", id)
		},
	},
}

// DeliveryBoy единственный ресурс, отдающий 404 в конверте.
var DeliveryBoy = Definition[entities.DeliveryBoy, int64]{
	Resource: resource.Resource[entities.DeliveryBoy, int64]{
		Name:      "delivery boy",
		PathParam: "empId",
		ParseID:   resource.Int64ID,
		Decode:    resource.DecodeDTO(deliveryBoyFromDTO),
		Encode:    resource.EncodeDTO(deliveryBoyToDTO),
		Messages: resource.Messages[entities.DeliveryBoy, int64]{
			Empty:  "No delivery boys found",
			Listed: "Delivery boys retrieved successfully",
			Found:  "Delivery boy retrieved successfully",
			Created: func(d entities.DeliveryBoy) string {
				return fmt.Sprintf("New delivery boy created with ID: %d", d.EmpID)
			},
			Updated: func(id int64) string {
				return fmt.Sprintf("Delivery boy with ID: %d updated successfully", id)
			},
			Deleted: func(id int64) string {
				return fmt.Sprintf("Delivery boy with ID: %d deleted successfully", id)
			},
		},
		NotFoundBody: resource.NotFoundEnvelope,
	},
	Routes: restRoutes("/delivery-boys", "empId"),
	Service: crud.Config[int64]{
		Entity: "delivery boy",
		NotFoundMessage: func(id int64) string {
			return fmt.Sprintf("Delivery boy with ID: %d not found", id)
		},
	},
}

var Delivery = Definition[entities.Delivery, string]{
	Resource: resource.Resource[entities.Delivery, string]{
		Name:      "delivery",
		PathParam: "deliveryId",
		ParseID:   resource.StringID,
		Decode:    resource.DecodeDTO(deliveryFromDTO),
		Encode:    resource.EncodeDTO(deliveryToDTO),
		Messages: resource.Messages[entities.Delivery, string]{
			Empty:  "No deliveries found",
			Listed: "Deliveries retrieved successfully",
			Found:  "Delivery found",
			Created: func(d entities.Delivery) string {
				return "New delivery created successfully with ID: " + d.DeliveryID
			},
			Updated: func(id string) string {
				return "Delivery with ID: " + id + " updated successfully"
			},
			Deleted: func(id string) string {
				return "Delivery with ID: " + id + " deleted successfully"
			},
		},
		NotFoundBody: resource.NotFoundPlainText,
		EchoCreated:  true,
		EchoUpdated:  true,
	},
	Routes: restRoutes("/deliveries", "deliveryId"),
	Service: crud.Config[string]{
		Entity: "delivery",
		NotFoundMessage: func(id string) string {
			return fmt.Sprintf("Delivery not found for ID: %s", id)
		},
	},
}

var Order = Definition[entities.Order, string]{
	Resource: resource.Resource[entities.Order, string]{
		Name:      "order",
		PathParam: "orderId",
		ParseID:   resource.StringID,
		Decode:    resource.DecodeDTO(orderFromDTO),
		Encode:    resource.EncodeDTO(orderToDTO),
		Messages: resource.Messages[entities.Order, string]{
			Empty:  "No orders found",
			Listed: "Orders retrieved successfully",
			Found:  "Order found",
			Created: func(o entities.Order) string {
				return "New order created successfully with ID: " + o.OrderID
			},
			Updated: func(id string) string {
				return "Order with ID: " + id + " updated successfully"
			},
			Deleted: func(id string) string {
				return "Order with ID: " + id + " deleted successfully"
			},
		},
		NotFoundBody: resource.NotFoundPlainText,
		EchoCreated:  true,
		EchoUpdated:  true,
	},
	Routes: restRoutes("/orders", "orderId"),
	Service: crud.Config[string]{
		Entity: "order",
		NotFoundMessage: func(id string) string {
			return fmt.Sprintf("Order not found for ID: %s", id)
		},
	},
}

// Bill сохраняет исторические пути с глаголом: /bills/create, /bills/update/{id}, /bills/delete/{id}.
var Bill = Definition[entities.Bill, int64]{
	Resource: resource.Resource[entities.Bill, int64]{
		Name:      "bill",
		PathParam: "billId",
		ParseID:   resource.Int64ID,
		Decode:    resource.DecodeDTO(billFromDTO),
		Encode:    resource.EncodeDTO(billToDTO),
		Messages: resource.Messages[entities.Bill, int64]{
			Empty:  "No bills found",
			Listed: "Bills retrieved successfully",
			Found:  "Bill retrieved successfully",
			Created: func(entities.Bill) string {
				return "Bill created successfully"
			},
			Updated: func(int64) string {
				return "Bill updated successfully"
			},
			Deleted: func(int64) string {
				return "Bill deleted successfully"
			},
		},
		NotFoundBody: resource.NotFoundPlainText,
	},
	Routes: Routes{
		List:   "/bills",
		Get:    "/bills/{billId}",
		Create: "/bills/create",
		Update: "/bills/update/{billId}",
		Delete: "/bills/delete/{billId}",
	},
	Service: crud.Config[int64]{
		Entity: "bill",
		NotFoundMessage: func(id int64) string {
			return fmt.Sprintf("Bill not found with ID: %d", id)
		},
	},
}
