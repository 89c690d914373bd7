package cost

import "errors"

// Sentinel errors for cost operations.
var (
	// ErrInvalidRate indicates a negative, NaN or infinite cost rate.
	ErrInvalidRate = errors.New("cost: rates must be finite and non-negative")
	// ErrNegativeQuantity indicates a negative order quantity or realized demand.
	ErrNegativeQuantity = errors.New("cost: order quantity and demand must be non-negative")
)

// Model is the immutable cost configuration of one planning run.
// The zero Model is valid: every rate is 0 and the starting inventory is empty.
type Model struct {
	initialInventory int
	holdingRate      float64
	shortageRate     float64
	orderRate        float64
}

// InitialInventory returns the stock on hand at the start of the horizon.
func (m Model) InitialInventory() int { return m.initialInventory }

// HoldingRate returns the cost per unit left over at period end.
func (m Model) HoldingRate() float64 { return m.holdingRate }

// ShortageRate returns the cost per backordered unit at period end.
func (m Model) ShortageRate() float64 { return m.shortageRate }

// OrderRate returns the cost per unit ordered.
func (m Model) OrderRate() float64 { return m.orderRate }
