package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID - заголовок сквозного идентификатора запроса
const HeaderRequestID = "X-Request-ID"

// LocalsRequestID - ключ идентификатора запроса в locals
const LocalsRequestID = "request_id"

// RequestID - middleware сквозного идентификатора: входящий заголовок
// уважается, иначе генерируется новый; значение эхом уходит в ответ
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(LocalsRequestID, id)
		c.Set(HeaderRequestID, id)

		return c.Next()
	}
}
