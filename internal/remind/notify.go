package remind

import (
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"

	"github.com/jmylchreest/vow/internal/model"
)

const (
	notifyInterface = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyMethod    = notifyInterface + ".Notify"

	appName = "vow"
)

// Notifier delivers reminders as desktop notifications over the
// session bus.
type Notifier struct {
	conn *dbus.Conn
}

// NewNotifier connects to the session bus.
func NewNotifier() (*Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &Notifier{conn: conn}, nil
}

// Notify sends one notification for a due commitment. The summary
// carries the category, the body the pledge text.
func (n *Notifier) Notify(c model.Commitment) error {
	obj := n.conn.Object(notifyInterface, dbus.ObjectPath(notifyPath))

	summary := fmt.Sprintf("Pledge reminder: %s", c.Category)
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(1)),
	}

	call := obj.Call(notifyMethod, 0,
		appName,
		uint32(0),
		"",
		summary,
		c.Text,
		[]string{},
		hints,
		int32(-1),
	)
	if call.Err != nil {
		return fmt.Errorf("notify call failed: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("failed to read notification id: %w", err)
	}

	slog.Debug("sent notification", "id", id, "category", c.Category)
	return nil
}

// Close releases the bus connection.
func (n *Notifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}
