// Package cost prices a single inventory period.
//
// What:
//
//   - Model holds the starting inventory and the three cost rates
//     (holding, shortage, ordering). It is immutable once built.
//   - PeriodCost charges one period given the stock on hand before demand,
//     the quantity ordered and the demand that actually arrived.
//
// Cost of a period:
//
//	ending   = before + order − demand          (negative ⇒ backorders)
//	holding  = max(0, ending)  × HoldingRate
//	shortage = max(0, −ending) × ShortageRate
//	ordering = order × OrderRate                (0 when order == 0)
//
// Errors:
//
//   - ErrInvalidRate: a rate is negative, NaN or infinite.
//   - ErrNegativeQuantity: a negative order quantity or demand was priced.
package cost
