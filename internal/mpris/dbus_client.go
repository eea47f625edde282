package mpris

import (
	"github.com/godbus/dbus/v5"
)

// playerObjectPath is the object path every MPRIS player exports.
const playerObjectPath = "/org/mpris/MediaPlayer2"

// playerInterface is the playback-control interface on that object.
const playerInterface = "org.mpris.MediaPlayer2.Player"

// DBusClient defines the interface for D-Bus operations.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/sunplex07/ndfr/internal/mpris DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// ListNames returns all names on the bus
	ListNames() ([]string, error)

	// GetProperty retrieves a property from a D-Bus object
	// service: The bus name (e.g., "org.mpris.MediaPlayer2.spotify")
	// path: The object path (e.g., "/org/mpris/MediaPlayer2")
	// prop: The property name (e.g., "org.mpris.MediaPlayer2.Player.PlaybackStatus")
	GetProperty(service, path, prop string) (dbus.Variant, error)

	// GetAllProperties reads every property of one interface on a
	// D-Bus object in a single round trip
	GetAllProperties(service, path, iface string) (map[string]dbus.Variant, error)

	// Call invokes a method on a D-Bus object and waits for the reply
	Call(service, path, method string, args ...interface{}) error
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient creates a real D-Bus client connected to the session bus
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// ListNames returns all names on the bus
func (c *StdDBusClient) ListNames() ([]string, error) {
	var names []string
	err := c.conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names)
	return names, err
}

// GetProperty retrieves a property from a D-Bus object
func (c *StdDBusClient) GetProperty(service, path, prop string) (dbus.Variant, error) {
	obj := c.conn.Object(service, dbus.ObjectPath(path))
	return obj.GetProperty(prop)
}

// GetAllProperties reads every property of one interface on a D-Bus object
func (c *StdDBusClient) GetAllProperties(service, path, iface string) (map[string]dbus.Variant, error) {
	obj := c.conn.Object(service, dbus.ObjectPath(path))
	var props map[string]dbus.Variant
	err := obj.Call("org.freedesktop.DBus.Properties.GetAll", 0, iface).Store(&props)
	return props, err
}

// Call invokes a method on a D-Bus object and waits for the reply
func (c *StdDBusClient) Call(service, path, method string, args ...interface{}) error {
	obj := c.conn.Object(service, dbus.ObjectPath(path))
	return obj.Call(method, 0, args...).Err
}
