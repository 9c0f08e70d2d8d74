package main

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"pomod"
)

// Notifier announces the state a transition entered. Delivery is
// best-effort; the timer never waits on or retries it.
type Notifier interface {
	Notify(next pomod.TimerState) error
}

type dbusNotifier struct {
	conn *dbus.Conn
}

// NewDBusNotifier connects to the desktop notification daemon on the
// session bus.
func NewDBusNotifier() (*dbusNotifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &dbusNotifier{conn: conn}, nil
}

func (n *dbusNotifier) Notify(next pomod.TimerState) error {
	obj := n.conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		"pomod",
		uint32(0), // fresh notification, nothing to replace
		"",
		"pomod: time is up",
		"next up: "+next.String(),
		[]string{},
		map[string]dbus.Variant{},
		int32(-1), // server-chosen expiry
	)
	if call.Err != nil {
		return fmt.Errorf("failed to deliver notification: %w", call.Err)
	}
	return nil
}

func (n *dbusNotifier) Close() error {
	return n.conn.Close()
}
