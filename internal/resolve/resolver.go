package resolve

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/opencode-lite/installer/internal/model"
)

// RawArguments holds the unvalidated provider flag values from a
// non-interactive invocation. Each value is tri-state: "yes", "no", or
// anything else (absent or invalid). Immutable once parsed.
type RawArguments struct {
	Antigravity string `validate:"required,oneof=yes no"`
	OpenAI      string `validate:"required,oneof=yes no"`
	Cerebras    string `validate:"required,oneof=yes no"`
}

var flagNames = map[string]string{
	"Antigravity": "--antigravity",
	"OpenAI":      "--openai",
	"Cerebras":    "--cerebras",
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Resolve validates RawArguments and maps the accepted literals onto a
// CanonicalConfig. All violations are collected, one message per offending
// field, so the caller can report every problem in a single pass. The
// returned config is only meaningful when the message list is empty.
func Resolve(raw RawArguments) (model.CanonicalConfig, []string) {
	if err := validatorInstance().Struct(raw); err != nil {
		return model.CanonicalConfig{}, violationMessages(err)
	}

	return model.CanonicalConfig{
		Antigravity: raw.Antigravity == "yes",
		OpenAI:      raw.OpenAI == "yes",
		Cerebras:    raw.Cerebras == "yes",
	}, nil
}

func violationMessages(err error) []string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		flag := flagNames[fe.Field()]
		if flag == "" {
			flag = fe.Field()
		}

		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required (yes|no)", flag))
		default:
			messages = append(messages, fmt.Sprintf("%s must be \"yes\" or \"no\" (got %q)", flag, fe.Value()))
		}
	}
	return messages
}
