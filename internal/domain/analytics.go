package domain

import (
	"fmt"
	"strings"
	"time"
)

const pickupTimeLayout = "2006-01-02T15:04:05"

// PickupTime хранит наивную метку времени посадки и сериализуется
// в ISO-8601 без часового пояса
type PickupTime struct {
	time.Time
}

func (t PickupTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(pickupTimeLayout) + `"`), nil
}

func (t *PickupTime) UnmarshalJSON(b []byte) error {
	parsed, err := time.Parse(pickupTimeLayout, strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t *PickupTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		t.Time = v
		return nil
	case nil:
		t.Time = time.Time{}
		return nil
	}
	return fmt.Errorf("unsupported pickup time value %T", value)
}

// DemandCell число поездок из зоны посадки за час суток
type DemandCell struct {
	PULocationID int   `json:"PULocationID" db:"PULocationID"`
	NTrips       int64 `json:"n_trips" db:"n_trips"`
}

// TipTrend средний процент чаевых по зоне посадки и способу оплаты
type TipTrend struct {
	PULocationID int     `json:"PULocationID" db:"PULocationID"`
	PaymentType  int64   `json:"payment_type" db:"payment_type"`
	AvgTipPct    float64 `json:"avg_tip_pct" db:"avg_tip_pct"`
	NTrips       int64   `json:"n_trips" db:"n_trips"`
}

// FareAnomaly поездка с аномальной стоимостью
type FareAnomaly struct {
	VendorID       int        `json:"VendorID" db:"VendorID"`
	PickupDatetime PickupTime `json:"pickup_datetime" db:"tpep_pickup_datetime"`
	PULocationID   int        `json:"PULocationID" db:"PULocationID"`
	DOLocationID   int        `json:"DOLocationID" db:"DOLocationID"`
	FareAmount     float64    `json:"fare_amount" db:"fare_amount"`
	TipAmount      float64    `json:"tip_amount" db:"tip_amount"`
	TripDistance   float64    `json:"trip_distance" db:"trip_distance"`
}

// TripPerformance агрегаты качества поездок из зоны
type TripPerformance struct {
	AvgDuration  float64 `json:"avg_duration" db:"avg_duration"`
	AvgSpeed     float64 `json:"avg_speed" db:"avg_speed"`
	AvgFare      float64 `json:"avg_fare" db:"avg_fare"`
	AvgDistance  float64 `json:"avg_distance" db:"avg_distance"`
	AvgTip       float64 `json:"avg_tip" db:"avg_tip"`
	TotalRevenue float64 `json:"total_revenue" db:"total_revenue"`
	NTrips       int64   `json:"n_trips" db:"n_trips"`
	IsWeekend    bool    `json:"is_weekend" db:"is_weekend"`
}

// PopularRoute направление из зоны с объёмом поездок
type PopularRoute struct {
	DOLocationID int     `json:"DOLocationID" db:"DOLocationID"`
	PickupHour   int     `json:"pickup_hour" db:"pickup_hour"`
	NTrips       int64   `json:"n_trips" db:"n_trips"`
	AvgDuration  float64 `json:"avg_duration" db:"avg_duration"`
	AvgFare      float64 `json:"avg_fare" db:"avg_fare"`
	AvgDistance  float64 `json:"avg_distance" db:"avg_distance"`
	AvgTip       float64 `json:"avg_tip" db:"avg_tip"`
}

// PaymentBreakdown разбивка оплат по зоне посадки
type PaymentBreakdown struct {
	PaymentMethod    string  `json:"payment_method" db:"payment_method"`
	NTrips           int64   `json:"n_trips" db:"n_trips"`
	AvgFare          float64 `json:"avg_fare" db:"avg_fare"`
	AvgTip           float64 `json:"avg_tip" db:"avg_tip"`
	AvgTipPercentage float64 `json:"avg_tip_percentage" db:"avg_tip_percentage"`
	TotalRevenue     float64 `json:"total_revenue" db:"total_revenue"`
}

// ZoneTipSummary невзвешенное среднее процента чаевых по зоне
type ZoneTipSummary struct {
	Average float64 `json:"average"`
}

// PerformanceFilter необязательные условия выборки по trip_performance
type PerformanceFilter struct {
	Hour      *int
	IsWeekend *bool
}

// RouteFilter условия выборки популярных направлений
type RouteFilter struct {
	Hour  *int
	Limit int
}

// PaymentFilter условия выборки разбивки оплат
type PaymentFilter struct {
	Hour *int
}
