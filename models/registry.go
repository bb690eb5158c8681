package models

// All lists every model managed by AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Property{},
		&Room{},
		&Tenant{},
		&Payment{},
		&UtilityMeter{},
		&CanteenProduct{},
		&CanteenTransaction{},
		&Complaint{},
	}
}
