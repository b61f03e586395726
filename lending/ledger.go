package lending

// Condition describes the physical state of an equipment item.
type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

// Valid reports whether c is a known condition.
func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// Category is the coarse grouping equipment is browsed by.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategorySports      Category = "Sports"
	CategoryLaboratory  Category = "Laboratory"
	CategoryMusical     Category = "Musical"
	CategoryAudioVisual Category = "AudioVisual"
	CategoryOther       Category = "Other"
)

// Valid reports whether cat is a known category.
func (cat Category) Valid() bool {
	switch cat {
	case CategoryElectronics, CategorySports, CategoryLaboratory,
		CategoryMusical, CategoryAudioVisual, CategoryOther:
		return true
	}
	return false
}

// ValidateCounts enforces the ledger invariant 0 <= available <= quantity
// with quantity >= 1. Callers patching an item must pass the resulting pair,
// not the patch alone.
func ValidateCounts(quantity, available int) error {
	if quantity < 1 {
		return Validationf("quantity must be at least 1, got %d", quantity)
	}
	if available < 0 {
		return Validationf("available must not be negative, got %d", available)
	}
	if available > quantity {
		return Validationf("available (%d) must not exceed quantity (%d)", available, quantity)
	}
	return nil
}

// CheckDecrease verifies that count units can be taken from available.
func CheckDecrease(available, count int) error {
	if count < 1 {
		return Validationf("decrease count must be at least 1, got %d", count)
	}
	if available < count {
		return &InsufficientAvailabilityError{Available: available, Requested: count}
	}
	return nil
}

// CheckIncrease verifies that returning count units keeps available within
// quantity.
func CheckIncrease(quantity, available, count int) error {
	if count < 1 {
		return Validationf("increase count must be at least 1, got %d", count)
	}
	if available+count > quantity {
		return &OverReturnError{Quantity: quantity, Available: available, Count: count}
	}
	return nil
}
