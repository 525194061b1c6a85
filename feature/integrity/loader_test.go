package integrity

import (
	"testing"

	"path-mapper/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	mockClient := new(mocks.Client)
	feature := NewFeature(mockClient, "test-bucket", "game", nil, nil, zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}

func TestLoaderDisabled(t *testing.T) {
	feature := NewFeature(nil, "", "", nil, nil, zap.NewNop())
	assert.False(t, feature.IsEnabled())
}
