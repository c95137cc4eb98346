package model

// CityModel mirrors the 'cities' table.
type CityModel struct {
	Name      string  `gorm:"type:varchar(100);primary_key"`
	State     string  `gorm:"type:varchar(100);not null"`
	Latitude  float64 `gorm:"type:decimal(10,8);not null"`
	Longitude float64 `gorm:"type:decimal(11,8);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}
