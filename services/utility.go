package services

// UtilityCost bills the consumption between two readings. A current reading
// below the previous one yields a negative cost; it is not rejected.
func UtilityCost(current, previous, costPerUnit float64) float64 {
	return (current - previous) * costPerUnit
}
