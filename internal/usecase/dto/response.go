package dto

// ZoneFeature - свойства зоны из справочного GeoJSON-файла
type ZoneFeature struct {
	LocationID int64  `json:"LocationID"`
	Zone       string `json:"zone"`
	Borough    string `json:"borough"`
}

// LocationIDRange - диапазон идентификаторов зон в файле
type LocationIDRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// ZonesSampleResponse - выборка зон из справочного файла
type ZonesSampleResponse struct {
	TotalFeatures   int             `json:"total_features"`
	Sample          []ZoneFeature   `json:"sample"`
	LocationIDRange LocationIDRange `json:"location_id_range"`
}

// ZonesRawResponse - диагностика справочного файла зон
type ZonesRawResponse struct {
	FilePath    string `json:"file_path"`
	FileSize    int64  `json:"file_size"`
	Preview     string `json:"preview"`
	IsValidJSON bool   `json:"is_valid_json"`
	JSONPreview string `json:"json_preview"`
}
