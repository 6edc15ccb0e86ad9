package domain

// Landmark - фиксированная точка автопарка (заправка, терминал, ремзона),
// которую диспетчер ведёт вручную
type Landmark struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Type    string  `json:"type" db:"type"`
	Lat     float64 `json:"lat" db:"lat"`
	Lon     float64 `json:"lon" db:"lon"`
	IconURL string  `json:"icon_url,omitempty" db:"icon_url"`
}
