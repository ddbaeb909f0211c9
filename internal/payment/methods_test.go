package payment

import (
	"strings"
	"testing"

	"craftviet-be/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMethod(t *testing.T) {
	for _, m := range Methods() {
		assert.True(t, IsValidMethod(m.ID), m.ID)
	}
	assert.False(t, IsValidMethod("CREDIT_CARD"))
	assert.False(t, IsValidMethod(""))
}

func TestGetInstructions(t *testing.T) {
	t.Run("ReturnsTemplateForKnownMethod", func(t *testing.T) {
		instructions := GetInstructions(MethodCOD)
		assert.NotEmpty(t, instructions)

		found := false
		for _, instr := range instructions {
			if strings.Contains(instr, "{{amount}}") {
				found = true
				break
			}
		}
		assert.True(t, found, "instructions should contain {{amount}} placeholder")
	})

	t.Run("ReturnsDefaultForUnknown", func(t *testing.T) {
		instructions := GetInstructions("UNKNOWN_METHOD")
		assert.Len(t, instructions, 1)
	})
}

func TestInjectVariables(t *testing.T) {
	t.Run("ReplacesPlaceholders", func(t *testing.T) {
		template := []string{"Chuyển khoản {{amount}} với nội dung {{order_number}}."}
		vars := InstructionVars{
			"amount":       utils.FormatVND(850000),
			"order_number": "ORD-20260828-120000-0001",
		}

		result := InjectVariables(template, vars)
		assert.Equal(t, []string{"Chuyển khoản 850.000₫ với nội dung ORD-20260828-120000-0001."}, result)
	})

	t.Run("LeavesUnknownPlaceholders", func(t *testing.T) {
		result := InjectVariables([]string{"Thanh toán {{amount}}"}, InstructionVars{})
		assert.Contains(t, result[0], "{{amount}}")
	})
}
