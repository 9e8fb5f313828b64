package dto

// DemandRequest - запрос тепловой карты спроса за час суток
type DemandRequest struct {
	Hour int `json:"hour" validate:"min=0,max=23"`
}

// ZoneRequest - запрос по зоне посадки
type ZoneRequest struct {
	ZoneID int `json:"zone_id" validate:"min=1"`
}

// PerformanceRequest - запрос агрегатов качества поездок зоны
type PerformanceRequest struct {
	ZoneID    int   `json:"zone_id" validate:"min=1"`
	Hour      *int  `json:"hour,omitempty" validate:"omitempty,min=0,max=23"`
	IsWeekend *bool `json:"is_weekend,omitempty"`
}

// RoutesRequest - запрос популярных направлений из зоны
type RoutesRequest struct {
	ZoneID int  `json:"zone_id" validate:"min=1"`
	Hour   *int `json:"hour,omitempty" validate:"omitempty,min=0,max=23"`
	Limit  int  `json:"limit" validate:"omitempty,min=1"`
}

// PaymentRequest - запрос разбивки оплат по зоне
type PaymentRequest struct {
	ZoneID int  `json:"zone_id" validate:"min=1"`
	Hour   *int `json:"hour,omitempty" validate:"omitempty,min=0,max=23"`
}
