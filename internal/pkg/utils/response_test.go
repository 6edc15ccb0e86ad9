package utils_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/fleet-backend/internal/pkg/errors"
	"github.com/fleet-backend/internal/pkg/utils"
	"github.com/fleet-backend/internal/pkg/validator"
)

type messageForm struct {
	DriverID int64  `validate:"required"`
	Body     string `validate:"required"`
}

func runHandler(t *testing.T, handler fiber.Handler) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestSendError(t *testing.T) {
	t.Run("app error keeps its status and code", func(t *testing.T) {
		status, body := runHandler(t, func(c *fiber.Ctx) error {
			return utils.SendError(c, apperrors.ErrDriverNotFound)
		})

		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, "DRIVER_NOT_FOUND")
	})

	t.Run("tag validation failure is a 400", func(t *testing.T) {
		// Пустое тело и нулевой driver_id режутся тегами до usecase -
		// клиент должен увидеть ошибку валидации, а не 500
		status, body := runHandler(t, func(c *fiber.Ctx) error {
			return utils.SendError(c, validator.Validate(&messageForm{}))
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, "INVALID_REQUEST")
		assert.Contains(t, body, "Body")
		assert.Contains(t, body, "required")
	})

	t.Run("unknown error is a 500", func(t *testing.T) {
		status, body := runHandler(t, func(c *fiber.Ctx) error {
			return utils.SendError(c, errors.New("boom"))
		})

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Contains(t, body, "INTERNAL_SERVER_ERROR")
	})
}
