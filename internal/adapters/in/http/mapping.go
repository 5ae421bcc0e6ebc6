package http

import (
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/generated/servers"
)

// toCreateOrderCommand maps the request body. Absent fields become zero values.
// A body without items but with an item name is the single item payload.
func toCreateOrderCommand(body servers.NewOrder) (commands.CreateOrderCommand, error) {
	details := order.Details{
		CustomerName: deref(body.CustomerName),
		Address:      deref(body.Address),
		PaymentType:  deref(body.PaymentType),
		DeliveryType: kernel.DeliveryType(deref(body.DeliveryType)),
		Status:       deref(body.Status),
	}

	var items []commands.ItemSpec
	switch {
	case body.Items != nil:
		items = make([]commands.ItemSpec, 0, len(*body.Items))
		for _, item := range *body.Items {
			items = append(items, commands.ItemSpec{
				ID:       kernel.ID(deref(item.Id)),
				Name:     deref(item.ItemName),
				Quantity: deref(item.Quantity),
				Price:    deref(item.Price),
			})
		}
	case deref(body.ItemName) != "":
		items = []commands.ItemSpec{{
			Name:     deref(body.ItemName),
			Quantity: deref(body.Quantity),
			Price:    deref(body.Price),
		}}
	}

	return commands.NewCreateOrderCommand(kernel.ID(deref(body.Id)), details, items)
}

func toOrderResponse(o *order.Order) servers.Order {
	items := o.Items()
	response := servers.Order{
		Id:           o.ID().Int64(),
		CustomerName: o.CustomerName(),
		Address:      o.Address(),
		PaymentType:  o.PaymentType(),
		DeliveryType: o.DeliveryType().String(),
		Status:       o.Status(),
		Items:        make([]servers.Item, len(items)),
		DeliveryCost: o.DeliveryCost(),
		Total:        o.Total(),
	}

	for i, item := range items {
		response.Items[i] = servers.Item{
			Id:       item.ID().Int64(),
			OrderId:  item.OrderID().Int64(),
			ItemName: item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		}
	}

	return response
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
