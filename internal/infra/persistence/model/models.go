package model

// All lists every persistence model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&UserDeviceModel{},
		&CityModel{},
		&BusinessModel{},
		&OfferModel{},
		&FavoriteModel{},
		&ReviewModel{},
		&OfferNotificationModel{},
		&NotificationLogModel{},
	}
}
