package domain

// Address - структурированный адрес из геокодера
type Address struct {
	Road         string `json:"road,omitempty"`
	HouseNumber  string `json:"house_number,omitempty"`
	Suburb       string `json:"suburb,omitempty"`
	City         string `json:"city,omitempty"`
	Town         string `json:"town,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	State        string `json:"state,omitempty"`
	Region       string `json:"region,omitempty"`
	Postcode     string `json:"postcode,omitempty"`
	Country      string `json:"country,omitempty"`
}

// GeocodeResult - один результат прямого геокодирования
type GeocodeResult struct {
	DisplayName string   `json:"display_name"`
	Name        string   `json:"name,omitempty"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Address     *Address `json:"address,omitempty"`
}

// Viewbox - область приоритета поиска (мин/макс по долготе и широте)
type Viewbox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}
