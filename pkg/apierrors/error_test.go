package apierrors_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/alt-7/task-management/pkg/apierrors"
	"github.com/alt-7/task-management/pkg/translator"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	// Add a test message
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	})
	if err != nil {
		return
	}
	m.Run()
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "en")
	assert.Equal(t, 400, err.ErrDetails.Code)
	assert.Equal(t, "Test message", err.ErrDetails.Message)
	assert.Nil(t, err.ErrDetails.Details)
}

func TestNewError_KeepsMessageVerbatim(t *testing.T) {
	details := map[string]string{"title": "Title is required"}
	err := apierrors.NewError(400, "Validation failed", details)
	assert.Equal(t, 400, err.ErrDetails.Code)
	assert.Equal(t, "Validation failed", err.ErrDetails.Message)
	assert.Equal(t, details, err.ErrDetails.Details)
}

func TestNewError_EmptyDetailsOmitted(t *testing.T) {
	err := apierrors.NewError(400, "Invalid status filter", map[string]string{})
	assert.Nil(t, err.ErrDetails.Details)
}

func TestGetTransErrorMsg_ReturnsTranslation(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("test_key", "en")
	assert.Equal(t, "Test message", msg)
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	msg := apierrors.GetTransErrorMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "en")
	assert.Equal(t, "Code: 500, Message: Test message", err.Error())
}
