// Package docs регистрирует OpenAPI-спецификацию сервиса для маршрута /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/anomalies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Аномальные поездки",
                "description": "Возвращает до 100 поездок с наибольшей стоимостью по убыванию",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.FareAnomaly"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/demand": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Тепловая карта спроса за час суток",
                "description": "Возвращает число поездок по зонам посадки за указанный час (0-23)",
                "parameters": [
                    {"type": "integer", "name": "hour", "in": "query", "required": true, "description": "Час суток (0-23)"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.DemandCell"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Service"],
                "summary": "Проверка живости сервиса",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/api/payment-analysis/{zone_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Разбивка оплат по зоне",
                "description": "Возвращает агрегаты по способам оплаты для зоны посадки",
                "parameters": [
                    {"type": "integer", "name": "zone_id", "in": "path", "required": true, "description": "Идентификатор зоны посадки"},
                    {"type": "integer", "name": "hour", "in": "query", "description": "Час суток (0-23)"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.PaymentBreakdown"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/popular-routes/{zone_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Популярные направления из зоны",
                "description": "Возвращает направления из зоны по убыванию числа поездок",
                "parameters": [
                    {"type": "integer", "name": "zone_id", "in": "path", "required": true, "description": "Идентификатор зоны посадки"},
                    {"type": "integer", "name": "hour", "in": "query", "description": "Час суток (0-23)"},
                    {"type": "integer", "name": "limit", "in": "query", "default": 10, "description": "Максимальное число направлений"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.PopularRoute"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "Сводка датасета",
                "description": "Возвращает число строк каждой таблицы агрегатов; результат кешируется",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DatasetStats"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/tips": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Тренды чаевых по зонам",
                "description": "Возвращает средний процент чаевых по зонам посадки и способам оплаты",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.TipTrend"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/tips/{zone_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Средний процент чаевых по зоне",
                "description": "Возвращает невзвешенное среднее процента чаевых по способам оплаты для зоны",
                "parameters": [
                    {"type": "integer", "name": "zone_id", "in": "path", "required": true, "description": "Идентификатор зоны посадки"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ZoneTipSummary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/trip-performance/{zone_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Агрегаты качества поездок зоны",
                "description": "Возвращает агрегаты длительности, скорости и выручки поездок из зоны. Фильтры объединяются по И",
                "parameters": [
                    {"type": "integer", "name": "zone_id", "in": "path", "required": true, "description": "Идентификатор зоны посадки"},
                    {"type": "integer", "name": "hour", "in": "query", "description": "Час суток (0-23)"},
                    {"type": "boolean", "name": "is_weekend", "in": "query", "description": "Только выходные или только будни"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.TripPerformance"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/debug/locations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Debug"],
                "summary": "Покрытие зон посадки по таблицам",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/debug/schema": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Debug"],
                "summary": "Живая схема таблиц агрегатов",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/debug/taxi-zones-raw": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Debug"],
                "summary": "Диагностика справочного файла зон",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ZonesRawResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/debug/taxi-zones-sample": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Debug"],
                "summary": "Выборка зон из справочного файла",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ZonesSampleResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.DatasetStats": {
            "type": "object",
            "properties": {
                "generated_at": {"type": "string"},
                "tables": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "domain.DemandCell": {
            "type": "object",
            "properties": {
                "PULocationID": {"type": "integer"},
                "n_trips": {"type": "integer"}
            }
        },
        "domain.FareAnomaly": {
            "type": "object",
            "properties": {
                "VendorID": {"type": "integer"},
                "pickup_datetime": {"type": "string"},
                "PULocationID": {"type": "integer"},
                "DOLocationID": {"type": "integer"},
                "fare_amount": {"type": "number"},
                "tip_amount": {"type": "number"},
                "trip_distance": {"type": "number"}
            }
        },
        "domain.PaymentBreakdown": {
            "type": "object",
            "properties": {
                "payment_method": {"type": "string"},
                "n_trips": {"type": "integer"},
                "avg_fare": {"type": "number"},
                "avg_tip": {"type": "number"},
                "avg_tip_percentage": {"type": "number"},
                "total_revenue": {"type": "number"}
            }
        },
        "domain.PopularRoute": {
            "type": "object",
            "properties": {
                "DOLocationID": {"type": "integer"},
                "pickup_hour": {"type": "integer"},
                "n_trips": {"type": "integer"},
                "avg_duration": {"type": "number"},
                "avg_fare": {"type": "number"},
                "avg_distance": {"type": "number"},
                "avg_tip": {"type": "number"}
            }
        },
        "domain.TipTrend": {
            "type": "object",
            "properties": {
                "PULocationID": {"type": "integer"},
                "payment_type": {"type": "integer"},
                "avg_tip_pct": {"type": "number"},
                "n_trips": {"type": "integer"}
            }
        },
        "domain.TripPerformance": {
            "type": "object",
            "properties": {
                "avg_duration": {"type": "number"},
                "avg_speed": {"type": "number"},
                "avg_fare": {"type": "number"},
                "avg_distance": {"type": "number"},
                "avg_tip": {"type": "number"},
                "total_revenue": {"type": "number"},
                "n_trips": {"type": "integer"},
                "is_weekend": {"type": "boolean"}
            }
        },
        "domain.ZoneTipSummary": {
            "type": "object",
            "properties": {
                "average": {"type": "number"}
            }
        },
        "dto.ZonesRawResponse": {
            "type": "object",
            "properties": {
                "file_path": {"type": "string"},
                "file_size": {"type": "integer"},
                "preview": {"type": "string"},
                "is_valid_json": {"type": "boolean"},
                "json_preview": {"type": "string"}
            }
        },
        "dto.ZonesSampleResponse": {
            "type": "object",
            "properties": {
                "total_features": {"type": "integer"},
                "sample": {"type": "array", "items": {"type": "object"}},
                "location_id_range": {"type": "object"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo параметры спецификации, подставляемые в шаблон
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Taxi Analytics Microservice API",
	Description:      "Read-only аналитика по предрассчитанным агрегатам поездок NYC Yellow Taxi: спрос по зонам, тренды чаевых, аномальные поездки, качество поездок, популярные направления и разбивка оплат.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
