//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	appName = "mcsounds"

	busName   = "org.freedesktop.Notifications"
	busPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	busMethod = busName + ".Notify"
	busClose  = busName + ".CloseNotification"
)

type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without a session bus it returns a
// notifier that drops everything.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nopNotifier{}, nil //nolint:nilerr // notifications are optional
	}
	return &dbusNotifier{obj: conn.Object(busName, busPath)}, nil
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	icon := notif.Icon
	if icon == "" {
		icon = DefaultIcon
	}
	call := n.obj.Call(busMethod, 0,
		appName,
		notif.ReplacesID,
		icon,
		notif.Title,
		notif.Body,
		[]string{},
		hints(notif),
		notif.Timeout,
	)
	if call.Err != nil {
		return 0, fmt.Errorf("notify: %w", call.Err)
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("notify: %w", err)
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(busClose, 0, id).Err
}

// hints builds the freedesktop hint map. The notification must stay silent:
// the sound it announces is already playing.
func hints(notif Notification) map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"urgency":        dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry":  dbus.MakeVariant(appName),
		"category":       dbus.MakeVariant("x-" + appName + ".nowplaying"),
		"suppress-sound": dbus.MakeVariant(true),
		"transient":      dbus.MakeVariant(true),
	}
}
