package domain

import "strings"

// RouteProfile - канонический режим передвижения, не зависящий от словаря
// конкретного провайдера. Каждый адаптер переводит его в свой токен.
type RouteProfile string

const (
	ProfileDriving    RouteProfile = "driving"
	ProfileWalking    RouteProfile = "walking"
	ProfileCycling    RouteProfile = "cycling"
	ProfileMotorcycle RouteProfile = "motorcycle"
)

// ParseRouteProfile нормализует профиль из запроса. Незнакомые строки
// сводятся к driving - фронтенды исторически шлют произвольные значения,
// и падать на них нельзя.
func ParseRouteProfile(s string) RouteProfile {
	switch RouteProfile(strings.ToLower(strings.TrimSpace(s))) {
	case ProfileWalking:
		return ProfileWalking
	case ProfileCycling:
		return ProfileCycling
	case ProfileMotorcycle:
		return ProfileMotorcycle
	default:
		return ProfileDriving
	}
}

// RouteOptions - опции маршрута. Провайдер, который опцию не поддерживает,
// молча её отбрасывает.
type RouteOptions struct {
	AvoidTolls    bool
	AvoidHighways bool
	Traffic       bool
}

// Any сообщает, запрошена ли хотя бы одна опция
func (o RouteOptions) Any() bool {
	return o.AvoidTolls || o.AvoidHighways || o.Traffic
}

// Coordinate - точка lat/lon во внутреннем API. На проводе провайдеры
// ждут порядок lon,lat - сериализация живёт в адаптерах.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RouteQuery - нормализованный запрос маршрута к адаптеру провайдера
type RouteQuery struct {
	Start   Coordinate
	End     Coordinate
	Profile RouteProfile
	Options RouteOptions
	Steps   bool
}

// RouteStep - один манёвр маршрута
type RouteStep struct {
	Distance float64   `json:"distance"`
	Duration float64   `json:"duration"`
	Name     string    `json:"name,omitempty"`
	Maneuver *Maneuver `json:"maneuver,omitempty"`
}

// Maneuver - описание манёвра в стиле OSRM; location в порядке lon,lat
type Maneuver struct {
	Type     string    `json:"type"`
	Modifier string    `json:"modifier,omitempty"`
	Location []float64 `json:"location"`
}

// RouteLeg - отрезок маршрута между соседними точками
type RouteLeg struct {
	Distance float64     `json:"distance"`
	Duration float64     `json:"duration"`
	Steps    []RouteStep `json:"steps,omitempty"`
}

// Route - один вариант маршрута; Geometry - закодированная polyline
type Route struct {
	Geometry string     `json:"geometry"`
	Distance float64    `json:"distance"`
	Duration float64    `json:"duration"`
	Legs     []RouteLeg `json:"legs,omitempty"`
}

// Коды результата маршрутизации в стиле OSRM
const (
	RouteCodeOk                  = "Ok"
	RouteCodeProviderUnavailable = "ProviderUnavailable"
)

// RouteResult - нормализованный ответ фасада маршрутизации. При отказе
// всех провайдеров Routes пуст, а Code равен RouteCodeProviderUnavailable -
// форма ответа не меняется, фронтенд рендерится как при "маршрут не найден".
type RouteResult struct {
	Code     string  `json:"code"`
	Provider string  `json:"provider,omitempty"`
	Routes   []Route `json:"routes"`
}

// EmptyRouteResult - нейтральный ответ при недоступности провайдеров
func EmptyRouteResult() *RouteResult {
	return &RouteResult{
		Code:   RouteCodeProviderUnavailable,
		Routes: []Route{},
	}
}
