package guard_test

import (
	"errors"
	"testing"

	"store/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("command not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how a guarded command detects
// zero-value instances that bypassed the constructor.
func TestConstructorGuardUsageExample(t *testing.T) {
	var errPromoCodeNotConstructed = errors.New("PromoCode must be created via newPromoCode")

	type PromoCode struct {
		code  string
		guard guard.ConstructorGuard
	}

	newPromoCode := func(code string) (PromoCode, error) {
		if code == "" {
			return PromoCode{}, errors.New("code is required")
		}
		return PromoCode{
			code:  code,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validatePromoCode := func(p PromoCode) error {
		return p.guard.Validate(errPromoCodeNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		promo, err := newPromoCode("12345678")

		require.NoError(t, err)
		require.NoError(t, validatePromoCode(promo))
		assert.Equal(t, "12345678", promo.code)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var promo PromoCode // zero value

		err := validatePromoCode(promo)

		require.Error(t, err)
		assert.Equal(t, errPromoCodeNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newPromoCode("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code is required")
	})
}

// TestConstructorGuardCopySemantics verifies the guard survives being passed
// by value, which is how commands travel through handlers.
func TestConstructorGuardCopySemantics(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
