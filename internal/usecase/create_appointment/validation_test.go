package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{
			ClientID:  1,
			StaffID:   2,
			ServiceID: 3,
			Date:      time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
			StartTime: "09:00",
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validateRequest(valid()))
	})

	t.Run("non-positive client", func(t *testing.T) {
		req := valid()
		req.ClientID = 0
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("non-positive staff", func(t *testing.T) {
		req := valid()
		req.StaffID = -1
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("non-positive service", func(t *testing.T) {
		req := valid()
		req.ServiceID = 0
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("zero date", func(t *testing.T) {
		req := valid()
		req.Date = time.Time{}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("empty start time", func(t *testing.T) {
		req := valid()
		req.StartTime = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("malformed start time", func(t *testing.T) {
		req := valid()
		req.StartTime = "9 o'clock"
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}
