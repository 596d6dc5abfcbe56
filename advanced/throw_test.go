package advanced

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestCheckFinite(t *testing.T) {
	assert.NotPanics(t, func() {
		checkFinite([]Point{{0, 0}, {1, 2}}, 0)
	})

	err := func() (err error) {
		defer func() {
			err = HandlePanicRecover(recover())
		}()
		checkFinite([]Point{{0, 0}, {math.NaN(), 2}}, 7)
		return nil
	}()
	assert.EqualError(t, err, "vertex 1 became non-finite on iteration 7")
}

func TestInvalidInputError(t *testing.T) {
	assert.NoError(t, validate([]Point{{0, 0}, {0, 1}, {-0, 0}}))

	err := validate([]Point{{0, 0}, {1, math.NaN()}})
	var invalid *InvalidInputError
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, 1, invalid.Index)
	assert.Contains(t, err.Error(), "index 1")
}
