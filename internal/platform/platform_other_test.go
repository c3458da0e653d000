//go:build !windows

package platform

import (
	"testing"

	"github.com/fgeck/monoff/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNew_Unsupported(t *testing.T) {
	p := New()

	assert.False(t, p.Supported())
	assert.False(t, p.AttachConsole())
	assert.ErrorIs(t, p.PostPowerOff(), ErrUnsupported)
	assert.ErrorIs(t, p.ShowMessage(models.AppName, "hello", models.SeverityInfo), ErrUnsupported)
}
