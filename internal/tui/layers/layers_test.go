package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCenteredLayer(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		screenWidth  int
		screenHeight int
		wantX, wantY int
	}{
		{"normal screen", "0123456789", 120, 40, 55, 19},
		{"content wider than screen", "0123456789", 4, 1, 0, 0},
		{"multi line", "ab\ncd\nef", 10, 9, 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := CreateCenteredLayer(tt.content, tt.screenWidth, tt.screenHeight)
			require.NotNil(t, layer)
			assert.Equal(t, tt.wantX, layer.GetX())
			assert.Equal(t, tt.wantY, layer.GetY())
			assert.Equal(t, ZModal, layer.GetZ())
		})
	}
}

func TestCreateCenteredLayerEmpty(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))
}

func TestCreateCursorLayer(t *testing.T) {
	layer := CreateCursorLayer("card", 10, 5, 80, 24)
	require.NotNil(t, layer)
	assert.Equal(t, 11, layer.GetX())
	assert.Equal(t, 6, layer.GetY())

	edge := CreateCursorLayer("card", 79, 23, 80, 24)
	require.NotNil(t, edge)
	assert.Equal(t, 76, edge.GetX())
	assert.Equal(t, 23, edge.GetY())

	assert.Nil(t, CreateCursorLayer("", 1, 1, 80, 24))
}

func TestModalWidth(t *testing.T) {
	assert.Equal(t, 60, ModalWidth(120, 40, 70))
	assert.Equal(t, 40, ModalWidth(60, 40, 70))
	assert.Equal(t, 70, ModalWidth(200, 40, 70))
	assert.Equal(t, 26, ModalWidth(30, 40, 70))
}
