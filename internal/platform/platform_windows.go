//go:build windows

package platform

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"syscall"
	"unsafe"

	"github.com/fgeck/monoff/internal/models"
	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassExW   = user32.NewProc("RegisterClassExW")
	procCreateWindowExW    = user32.NewProc("CreateWindowExW")
	procDefWindowProcW     = user32.NewProc("DefWindowProcW")
	procSendNotifyMessageW = user32.NewProc("SendNotifyMessageW")
	procAttachConsole      = kernel32.NewProc("AttachConsole")
)

// See https://learn.microsoft.com/en-us/windows/win32/menurc/wm-syscommand
const (
	wmSysCommand    = 0x0112
	scMonitorPower  = 0xF170
	monitorPowerOff = 2

	wsOverlapped = 0x00000000
	cwUseDefault = 0x80000000

	mbOK              = 0x00000000
	mbIconError       = 0x00000010
	mbIconInformation = 0x00000040
	mbApplModal       = 0x00000000

	attachParentProcess = ^uint32(0)
)

const errClassAlreadyExists = syscall.Errno(1410)

// wndClassEx mirrors WNDCLASSEXW.
type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

var (
	wndProcOnce     sync.Once
	wndProcCallback uintptr
)

// windowProc hands every message to the default window procedure. Only
// DefWindowProcW knows how to act on SC_MONITORPOWER.
func windowProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	ret, _, _ := procDefWindowProcW.Call(hwnd, msg, wParam, lParam)
	return ret
}

type windowsPlatform struct{}

func newPlatform() Platform {
	return &windowsPlatform{}
}

func (p *windowsPlatform) Supported() bool {
	return user32.Load() == nil && kernel32.Load() == nil
}

func (p *windowsPlatform) AttachConsole() bool {
	if err := procAttachConsole.Find(); err != nil {
		return false
	}
	r, _, err := procAttachConsole.Call(uintptr(attachParentProcess))
	if r == 0 {
		// ERROR_ACCESS_DENIED: the process already has a console, e.g. when
		// built without -H windowsgui.
		return errors.Is(err, windows.ERROR_ACCESS_DENIED)
	}
	rebindStdStreams()
	return true
}

// rebindStdStreams points stdout and stderr at the attached console unless
// the parent already handed us usable handles (e.g. a redirect to a file).
// It reports whether the console handle is in use.
func rebindStdStreams() bool {
	name, err := windows.UTF16PtrFromString("CONOUT$")
	if err != nil {
		return false
	}
	h, err := windows.CreateFile(
		name,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return false
	}

	inUse := false
	if !usable(os.Stdout) {
		_ = windows.SetStdHandle(windows.STD_OUTPUT_HANDLE, h)
		os.Stdout = os.NewFile(uintptr(h), "/dev/stdout")
		inUse = true
	}
	if !usable(os.Stderr) {
		_ = windows.SetStdHandle(windows.STD_ERROR_HANDLE, h)
		os.Stderr = os.NewFile(uintptr(h), "/dev/stderr")
		inUse = true
	}

	if !inUse {
		_ = windows.CloseHandle(h)
	}
	return inUse
}

func usable(f *os.File) bool {
	if f == nil {
		return false
	}
	h := windows.Handle(f.Fd())
	if h == 0 || h == windows.InvalidHandle {
		return false
	}
	t, err := windows.GetFileType(h)
	return err == nil && t != windows.FILE_TYPE_UNKNOWN
}

func (p *windowsPlatform) PostPowerOff() error {
	return lockedThread(p.postPowerOff)
}

// postPowerOff must run on a single OS thread: the window belongs to the
// thread that created it, and SendNotifyMessageW only dispatches
// synchronously when called from that thread. Otherwise the message is
// queued to a thread that never pumps it.
func (p *windowsPlatform) postPowerOff() error {
	var instance windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &instance); err != nil {
		return &models.OSError{Op: "get module handle", Err: err}
	}

	className, err := windows.UTF16PtrFromString(models.AppName)
	if err != nil {
		return &models.OSError{Op: "encode window class name", Err: err}
	}

	if err := registerClass(instance, className); err != nil {
		return err
	}

	hwnd, _, err := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		0,
		wsOverlapped,
		cwUseDefault,
		cwUseDefault,
		cwUseDefault,
		cwUseDefault,
		0,
		0,
		uintptr(instance),
		0,
	)
	if hwnd == 0 {
		return &models.OSError{Op: "create window", Err: err}
	}

	ok, _, err := procSendNotifyMessageW.Call(hwnd, wmSysCommand, scMonitorPower, monitorPowerOff)
	if ok == 0 {
		return &models.OSError{Op: "post power-off notification", Err: err}
	}

	return nil
}

// registerClass registers the message-only window class. Registering it a
// second time in the same process is not an error.
func registerClass(instance windows.Handle, className *uint16) error {
	wndProcOnce.Do(func() {
		wndProcCallback = windows.NewCallback(windowProc)
	})

	wc := wndClassEx{
		WndProc:   wndProcCallback,
		Instance:  instance,
		ClassName: className,
	}
	wc.Size = uint32(unsafe.Sizeof(wc))

	atom, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 && !errors.Is(err, errClassAlreadyExists) {
		return &models.OSError{Op: "register window class", Err: err}
	}
	return nil
}

func (p *windowsPlatform) ShowMessage(title, text string, severity models.Severity) error {
	style := uint32(mbOK | mbApplModal | mbIconInformation)
	if severity == models.SeverityError {
		style = mbOK | mbApplModal | mbIconError
	}

	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("encode title: %w", err)
	}
	m, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	if _, err := windows.MessageBox(0, m, t, style); err != nil {
		return fmt.Errorf("show message box: %w", err)
	}
	return nil
}
