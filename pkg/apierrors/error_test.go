package apierrors_test

import (
	"testing"

	"todoboard/pkg/apierrors"
	"todoboard/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English,
		&i18n.Message{ID: "titleRequired", Other: "Title is required"},
		&i18n.Message{ID: "invalidPriority", Other: "Priority must be one of: low, medium, high"},
	)
	if err != nil {
		return
	}
	m.Run()
}

func TestValidationError_Error(t *testing.T) {
	err := apierrors.NewValidationError(apierrors.MsgTitleRequired, apierrors.MsgInvalidPriority)
	assert.Equal(t, "titleRequired, invalidPriority", err.Error())
}

func TestValidationError_Localize(t *testing.T) {
	err := apierrors.NewValidationError(apierrors.MsgTitleRequired, apierrors.MsgInvalidPriority)
	assert.Equal(t, "Title is required, Priority must be one of: low, medium, high", err.Localize("en"))
}

func TestValidationError_Localize_SingleKey(t *testing.T) {
	err := apierrors.NewValidationError(apierrors.MsgTitleRequired)
	assert.Equal(t, "Title is required", err.Localize("en"))
}

func TestGetTransErrorMsg_ReturnsTranslation(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("titleRequired", "en")
	assert.Equal(t, "Title is required", msg)
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	msg := apierrors.GetTransErrorMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}
