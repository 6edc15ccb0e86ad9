package dto

// RouteRequest - запрос маршрута. Координаты во внутреннем порядке
// lat/lon; профиль - произвольная строка, нормализуется фасадом.
type RouteRequest struct {
	StartLat float64 `json:"start_lat" validate:"required"`
	StartLng float64 `json:"start_lng" validate:"required"`
	EndLat   float64 `json:"end_lat" validate:"required"`
	EndLng   float64 `json:"end_lng" validate:"required"`
	Profile  string  `json:"profile,omitempty"`
	Steps    bool    `json:"steps,omitempty"`

	AvoidTolls    bool `json:"avoid_tolls,omitempty"`
	AvoidHighways bool `json:"avoid_highways,omitempty"`
	Traffic       bool `json:"traffic,omitempty"`
}
