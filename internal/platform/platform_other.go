//go:build !windows

package platform

import "github.com/fgeck/monoff/internal/models"

type unsupportedPlatform struct{}

func newPlatform() Platform {
	return &unsupportedPlatform{}
}

func (p *unsupportedPlatform) Supported() bool     { return false }
func (p *unsupportedPlatform) AttachConsole() bool { return false }
func (p *unsupportedPlatform) PostPowerOff() error { return ErrUnsupported }

func (p *unsupportedPlatform) ShowMessage(string, string, models.Severity) error {
	return ErrUnsupported
}
