// Package model holds the GORM table definitions.
package model

// All lists every table model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&CustomerModel{},
		&AddressModel{},
		&AdminModel{},
		&ResetTokenModel{},
		&MenuItemModel{},
		&OrderModel{},
		&CateringRequestModel{},
		&FeedbackModel{},
		&CustomerDeviceModel{},
		&PushNotificationLogModel{},
	}
}
