package domain

import "strings"

// TagFilter - один нативный предикат POI-провайдера (ключ=значение OSM-тега)
type TagFilter struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Канонические категории мест. Фронтенд оперирует ими, а не словарём
// провайдера.
const (
	PlaceCategoryCafe       = "cafe"
	PlaceCategoryRestaurant = "restaurant"
	PlaceCategoryPark       = "park"
	PlaceCategoryBank       = "bank"
	PlaceCategoryATM        = "atm"
	PlaceCategoryHotel      = "hotel"
	PlaceCategoryHospital   = "hospital"
	PlaceCategoryPharmacy   = "pharmacy"
	PlaceCategorySchool     = "school"
	PlaceCategoryMuseum     = "museum"
	PlaceCategoryFuel       = "fuel"
	PlaceCategoryPolice     = "police"
	PlaceCategoryFire       = "fire"
	PlaceCategoryGovernment = "government"
)

// PlaceCategoryFilters - таблица перевода канонической категории в один
// или несколько нативных предикатов провайдера
var PlaceCategoryFilters = map[string][]TagFilter{
	PlaceCategoryCafe:       {{Key: "amenity", Value: "cafe"}},
	PlaceCategoryRestaurant: {{Key: "amenity", Value: "restaurant"}, {Key: "amenity", Value: "fast_food"}},
	PlaceCategoryPark:       {{Key: "leisure", Value: "park"}},
	PlaceCategoryBank:       {{Key: "amenity", Value: "bank"}},
	PlaceCategoryATM:        {{Key: "amenity", Value: "atm"}},
	PlaceCategoryHotel:      {{Key: "tourism", Value: "hotel"}, {Key: "tourism", Value: "guest_house"}},
	PlaceCategoryHospital:   {{Key: "amenity", Value: "hospital"}, {Key: "amenity", Value: "clinic"}},
	PlaceCategoryPharmacy:   {{Key: "amenity", Value: "pharmacy"}},
	PlaceCategorySchool:     {{Key: "amenity", Value: "school"}},
	PlaceCategoryMuseum:     {{Key: "tourism", Value: "museum"}},
	PlaceCategoryFuel:       {{Key: "amenity", Value: "fuel"}},
	PlaceCategoryPolice:     {{Key: "amenity", Value: "police"}},
	PlaceCategoryFire:       {{Key: "amenity", Value: "fire_station"}},
	PlaceCategoryGovernment: {{Key: "office", Value: "government"}},
}

// DefaultPlaceCategories - набор "полезное рядом", когда клиент не выбрал
// ни одной категории
var DefaultPlaceCategories = []string{
	PlaceCategoryCafe,
	PlaceCategoryRestaurant,
	PlaceCategoryBank,
	PlaceCategoryATM,
	PlaceCategoryPark,
	PlaceCategoryHotel,
}

// ResolvePlaceCategory переводит категорию в нативные предикаты.
// Регистр не важен. Незнакомая категория не отбрасывается, а уходит
// провайдеру как generic-тег с литеральной строкой (fail-open).
func ResolvePlaceCategory(category string) []TagFilter {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" {
		return nil
	}
	if filters, ok := PlaceCategoryFilters[key]; ok {
		return filters
	}
	return []TagFilter{{Key: "amenity", Value: key}}
}

// PlaceQuery - составной запрос к POI-провайдеру: объединение предикатов,
// каждый в радиусе RadiusMeters вокруг Center
type PlaceQuery struct {
	Center       Coordinate  `json:"center"`
	RadiusMeters int         `json:"radius_meters"`
	Filters      []TagFilter `json:"filters"`
}

// PlaceElement - найденное место в форме, близкой к элементу Overpass
type PlaceElement struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags,omitempty"`
}

// Name выбирает человекочитаемое имя элемента
func (e PlaceElement) Name() string {
	if n, ok := e.Tags["name"]; ok && n != "" {
		return n
	}
	for _, key := range []string{"amenity", "tourism", "leisure"} {
		if v, ok := e.Tags[key]; ok && v != "" {
			return v
		}
	}
	return "Unnamed"
}
