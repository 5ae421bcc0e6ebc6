package kernel

const (
	// SpeedPost is the postal express option.
	SpeedPost DeliveryType = "Speed Post"

	// CourierService is the door-to-door courier option.
	CourierService DeliveryType = "Courier Service"
)

// Delivery costs of the known options.
const (
	SpeedPostCost      = 350.0
	CourierServiceCost = 550.0
)

// DeliveryType is the delivery option chosen for an order. Values are not
// validated: any string is accepted and unknown options simply cost nothing.
type DeliveryType string

// Cost is a step function of the delivery type: fixed amounts for the two
// known options, zero for everything else including the empty value.
func (d DeliveryType) Cost() float64 {
	switch d {
	case SpeedPost:
		return SpeedPostCost
	case CourierService:
		return CourierServiceCost
	default:
		return 0
	}
}

func (d DeliveryType) String() string {
	return string(d)
}
