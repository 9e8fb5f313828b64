package handler

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/geojson"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/taxi-analytics-microservice/internal/config"
	pkgerrors "github.com/taxi-analytics-microservice/internal/pkg/errors"
	"github.com/taxi-analytics-microservice/internal/pkg/utils"
	"github.com/taxi-analytics-microservice/internal/usecase/dto"
)

const (
	zonesSampleSize     = 10
	zonesPreviewBytes   = 500
	zonesJSONPreviewLen = 1000
)

// wellKnownZonePaths - пути, по которым фронтенд раскладывает справочник зон
var wellKnownZonePaths = []string{
	"frontend/public/taxi_zones.geojson",
	"/app/frontend/public/taxi_zones.geojson",
	"../frontend/public/taxi_zones.geojson",
}

// ZonesHandler - диагностика справочного GeoJSON-файла зон такси.
// В БД не ходит: файл лежит рядом с сервисом и читается напрямую
type ZonesHandler struct {
	cfg    *config.ZonesConfig
	logger *zap.Logger
}

// NewZonesHandler - создание нового ZonesHandler
func NewZonesHandler(cfg *config.ZonesConfig, logger *zap.Logger) *ZonesHandler {
	return &ZonesHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// Sample godoc
// @Summary Выборка зон из справочного файла
// @Description Разбирает GeoJSON зон такси и возвращает первые 10 зон с диапазоном идентификаторов
// @Tags Debug
// @Produce json
// @Success 200 {object} dto.ZonesSampleResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/debug/taxi-zones-sample [get]
func (h *ZonesHandler) Sample(c *fiber.Ctx) error {
	path, err := h.resolveFile()
	if err != nil {
		return utils.SendError(c, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return utils.SendError(c, pkgerrors.ErrZonesFileNotFound)
	}

	if _, err := geojson.Parse(string(data), &geojson.ParseOptions{RequireValid: true}); err != nil {
		h.logger.Error("Invalid taxi zones file", zap.String("path", path), zap.Error(err))
		return utils.SendError(c, pkgerrors.Internal(err))
	}

	features := gjson.GetBytes(data, "features").Array()

	resp := dto.ZonesSampleResponse{
		TotalFeatures: len(features),
		Sample:        make([]dto.ZoneFeature, 0, zonesSampleSize),
	}

	for i, feature := range features {
		id := feature.Get("properties.LocationID").Int()
		if i == 0 || id < resp.LocationIDRange.Min {
			resp.LocationIDRange.Min = id
		}
		if id > resp.LocationIDRange.Max {
			resp.LocationIDRange.Max = id
		}

		if i < zonesSampleSize {
			resp.Sample = append(resp.Sample, dto.ZoneFeature{
				LocationID: id,
				Zone:       feature.Get("properties.zone").String(),
				Borough:    feature.Get("properties.borough").String(),
			})
		}
	}

	return c.JSON(resp)
}

// Raw godoc
// @Summary Диагностика справочного файла зон
// @Description Возвращает путь, размер и фрагменты содержимого файла зон вместе с вердиктом разбора
// @Tags Debug
// @Produce json
// @Success 200 {object} dto.ZonesRawResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/debug/taxi-zones-raw [get]
func (h *ZonesHandler) Raw(c *fiber.Ctx) error {
	path, err := h.resolveFile()
	if err != nil {
		return utils.SendError(c, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return utils.SendError(c, pkgerrors.ErrZonesFileNotFound)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return utils.SendError(c, pkgerrors.Internal(err))
	}

	_, parseErr := geojson.Parse(string(data), &geojson.ParseOptions{RequireValid: true})

	return c.JSON(dto.ZonesRawResponse{
		FilePath:    path,
		FileSize:    info.Size(),
		Preview:     string(data[:minInt(len(data), zonesPreviewBytes)]),
		IsValidJSON: parseErr == nil,
		JSONPreview: string(data[:minInt(len(data), zonesJSONPreviewLen)]),
	})
}

// resolveFile возвращает путь к файлу зон: настроенный явно или первый
// существующий из известных
func (h *ZonesHandler) resolveFile() (string, error) {
	if h.cfg.File != "" {
		if _, err := os.Stat(h.cfg.File); err == nil {
			return h.cfg.File, nil
		}
		return "", pkgerrors.ZonesFileNotFound([]string{h.cfg.File})
	}

	for _, path := range wellKnownZonePaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", pkgerrors.ZonesFileNotFound(wellKnownZonePaths)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
