package journal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"tableflip.dev/diario/pkg/glyph"
)

// Validate checks operation inputs.
var Validate *validator.Validate

func init() {
	Validate = validator.New()

	if err := Validate.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validator: %v", err))
	}
	if err := Validate.RegisterValidation("symbol", validateSymbol); err != nil {
		panic(fmt.Sprintf("failed to register symbol validator: %v", err))
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateSymbol(fl validator.FieldLevel) bool {
	s := glyph.Symbol(fl.Field().String())
	for _, g := range glyph.DefaultGlyphs() {
		if g.Symbol == s {
			return true
		}
	}
	return false
}

// TaskInput is the payload of AddTask.
type TaskInput struct {
	Symbol  glyph.Symbol `json:"symbol" validate:"symbol"`
	Content string       `json:"content" validate:"notblank"`
	// Date is a day key or ISO date; empty means the selected date.
	Date string `json:"date"`
}

// EventInput is the payload of AddEvent.
type EventInput struct {
	Title     string `json:"title" validate:"notblank"`
	Date      string `json:"date" validate:"notblank"`
	StartTime string `json:"startTime" validate:"max=32"`
	EndTime   string `json:"endTime" validate:"max=32"`
}

// EmotionInput is the payload of AddEmotion.
type EmotionInput struct {
	Emotion   string `json:"emotion" validate:"notblank"`
	Note      string `json:"note"`
	Intensity int    `json:"intensity" validate:"min=0,max=5"`
}

// failedField returns the name of the first field that failed validation.
func failedField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return ""
}

