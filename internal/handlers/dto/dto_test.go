package dto_test

import (
	"encoding/json"
	"testing"

	"projectTracker/internal/board"
	"projectTracker/internal/handlers/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable(t *testing.T) {
	var req dto.UpdateProjectRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","description":null}`), &req))

	assert.True(t, req.Name.Set)
	assert.False(t, req.Name.Null)
	assert.Equal(t, "A", req.Name.Value)

	assert.True(t, req.Description.Set)
	assert.True(t, req.Description.Null)

	assert.False(t, req.URL.Set)

	patch := req.Patch()
	require.NotNil(t, patch.Name)
	require.NotNil(t, patch.Description)
	assert.Equal(t, "", *patch.Description)
	assert.Nil(t, patch.URL)
	assert.Nil(t, patch.GroupID)
}

func TestDropRequest(t *testing.T) {
	t.Run("nothing under cursor", func(t *testing.T) {
		drop, err := dto.DropRequest{ActiveID: "t1"}.Drop()
		require.NoError(t, err)
		assert.Nil(t, drop.Over)
	})

	t.Run("ungrouped zone", func(t *testing.T) {
		drop, err := dto.DropRequest{ActiveID: "p1", Over: &dto.ZoneRequest{Kind: "ungrouped"}}.Drop()
		require.NoError(t, err)
		require.NotNil(t, drop.Over)
		assert.Equal(t, board.UngroupedZone(), *drop.Over)
	})

	t.Run("bad droppable kind", func(t *testing.T) {
		_, err := dto.DropRequest{
			ActiveID:   "t1",
			Active:     &dto.RectRequest{Width: 10, Height: 10},
			Droppables: []dto.DroppableRequest{{Zone: dto.ZoneRequest{Kind: "?"}}},
		}.Drop()
		assert.Error(t, err)
	})
}
