package handler

import (
	"context"
	"testing"

	"github.com/EpicMandM/booking-admin-panel/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebPlatform_ConfirmWithAnswer(t *testing.T) {
	p := NewWebPlatform()

	assert.True(t, p.Confirm(WithConfirmAnswer(context.Background(), true), "Delete?"))
	assert.False(t, p.Confirm(WithConfirmAnswer(context.Background(), false), "Delete?"))
	assert.Nil(t, p.Modal())
}

func TestWebPlatform_ConfirmOpensModal(t *testing.T) {
	p := NewWebPlatform()
	ctx := WithResubmitPath(context.Background(), "/admin/bookings/7/delete")

	assert.False(t, p.Confirm(ctx, "Delete this booking permanently?"))

	m := p.Modal()
	require.NotNil(t, m)
	assert.Equal(t, view.ModalConfirm, m.Kind)
	assert.Equal(t, "Delete this booking permanently?", m.Text)
	assert.Equal(t, "/admin/bookings/7/delete", m.Action)
}

func TestWebPlatform_ConfirmWithoutPathDeclines(t *testing.T) {
	p := NewWebPlatform()
	assert.False(t, p.Confirm(context.Background(), "Hide?"))
	assert.Nil(t, p.Modal())
}

func TestWebPlatform_AlertAndClose(t *testing.T) {
	p := NewWebPlatform()
	p.Alert(context.Background(), "Editing is not implemented yet.")

	m := p.Modal()
	require.NotNil(t, m)
	assert.Equal(t, view.ModalNotice, m.Kind)
	assert.False(t, m.IsConfirm())

	m.Text = "changed"
	assert.Equal(t, "Editing is not implemented yet.", p.Modal().Text, "Modal returns a copy")

	p.CloseModal()
	assert.Nil(t, p.Modal())
}
