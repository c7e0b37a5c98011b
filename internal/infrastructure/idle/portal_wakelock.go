// Package idle provides the wake lock via XDG Desktop Portal idle
// inhibition. Works on Wayland with any compositor (GNOME, KDE, sway,
// hyprland, etc.).
package idle

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/theater-ui/theater/internal/application/port"
	"github.com/theater-ui/theater/internal/logging"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	inhibitReason = "video playback"

	// Inhibit flags from portal spec
	flagLogout     = 1
	flagUserSwitch = 2
	flagSuspend    = 4
	flagIdle       = 8
)

// Compile-time interface check.
var _ port.WakeLock = (*PortalWakeLock)(nil)

// PortalWakeLock implements the wake lock over the portal Inhibit API.
// Set is idempotent: enabling while enabled and disabling while disabled
// are no-ops, which is exactly the contract the coordinator's
// disable-then-enable reset sequence relies on.
type PortalWakeLock struct {
	conn            *dbus.Conn
	requestPath     dbus.ObjectPath // Active inhibit request handle
	enabled         bool
	supported       bool
	requestComplete bool // True if the portal sent a Response signal (request no longer exists)
	mu              sync.Mutex
}

// NewPortalWakeLock creates a portal-backed wake lock. Returns a
// functional no-op lock when D-Bus or the portal is unavailable
// (graceful degradation).
func NewPortalWakeLock(ctx context.Context) *PortalWakeLock {
	log := logging.FromContext(ctx)

	lock := &PortalWakeLock{
		supported: false,
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("wake lock: cannot connect to D-Bus session bus")
		return lock
	}
	lock.conn = conn

	// Check if portal is available
	obj := conn.Object(portalDest, portalPath)
	var version uint32
	err = obj.Call("org.freedesktop.DBus.Properties.Get", 0,
		portalInterface, "version").Store(&version)
	if err != nil {
		log.Debug().Err(err).Msg("wake lock: portal not available")
		return lock
	}

	lock.supported = true
	log.Debug().Uint32("version", version).Msg("wake lock: portal available")

	return lock
}

// Set enables or disables the wake lock. Idempotent.
func (p *PortalWakeLock) Set(ctx context.Context, enabled bool) error {
	if enabled {
		return p.acquire(ctx)
	}
	return p.release(ctx)
}

func (p *PortalWakeLock) acquire(ctx context.Context) error {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}

	if !p.supported || p.conn == nil {
		log.Debug().Msg("wake lock: not supported, skipping")
		p.enabled = true
		return nil
	}

	// Inhibit(window: s, flags: u, options: a{sv}) -> handle: o
	obj := p.conn.Object(portalDest, portalPath)

	options := map[string]dbus.Variant{
		"reason": dbus.MakeVariant(inhibitReason),
	}

	var handlePath dbus.ObjectPath
	err := obj.Call(portalInterface+".Inhibit", 0,
		"",                           // window identifier (empty for non-sandboxed)
		uint32(flagIdle|flagSuspend), // inhibit idle and suspend
		options,
	).Store(&handlePath)

	if err != nil {
		log.Warn().Err(err).Msg("wake lock: failed to inhibit")
		return fmt.Errorf("portal inhibit: %w", err)
	}

	p.enabled = true
	p.requestPath = handlePath
	p.requestComplete = false

	// Some portals complete the request immediately with a Response
	// signal, removing the Request object; track that so release does
	// not Close a non-existent object.
	go p.watchForResponse(ctx, handlePath)

	log.Info().
		Str("handle", string(handlePath)).
		Msg("wake lock: acquired")

	return nil
}

// watchForResponse monitors for the Response signal on the request
// object.
func (p *PortalWakeLock) watchForResponse(ctx context.Context, handlePath dbus.ObjectPath) {
	log := logging.FromContext(ctx)

	if p.conn == nil {
		return
	}

	matchRule := fmt.Sprintf(
		"type='signal',interface='%s',member='Response',path='%s'",
		requestIface, handlePath,
	)

	if err := p.conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		log.Debug().Err(err).Msg("wake lock: failed to add signal match")
		return
	}

	signals := make(chan *dbus.Signal, 1)
	p.conn.Signal(signals)

	defer func() {
		p.conn.RemoveSignal(signals)
		_ = p.conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, matchRule).Err
	}()

	for {
		select {
		case sig := <-signals:
			if sig == nil {
				return
			}
			if sig.Path == handlePath && sig.Name == requestIface+".Response" {
				p.mu.Lock()
				p.requestComplete = true
				p.mu.Unlock()
				log.Debug().
					Str("handle", string(handlePath)).
					Msg("wake lock: request completed by portal")
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (p *PortalWakeLock) release(ctx context.Context) error {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return nil
	}
	p.enabled = false

	if !p.supported || p.conn == nil || p.requestPath == "" {
		return nil
	}

	// If the portal already completed the request with a Response
	// signal, the Request object no longer exists - don't try to close it
	if p.requestComplete {
		log.Info().Msg("wake lock: released (completed by portal)")
		p.requestPath = ""
		return nil
	}

	obj := p.conn.Object(portalDest, p.requestPath)
	_ = obj.Call(requestIface+".Close", 0).Err

	log.Info().Msg("wake lock: released")
	p.requestPath = ""
	return nil
}

// Enabled reports whether the lock is currently held.
func (p *PortalWakeLock) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Close releases D-Bus resources and any active inhibition.
func (p *PortalWakeLock) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil && p.requestPath != "" && !p.requestComplete {
		obj := p.conn.Object(portalDest, p.requestPath)
		_ = obj.Call(requestIface+".Close", 0).Err
	}
	p.requestPath = ""
	p.requestComplete = false
	p.enabled = false

	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}

	return nil
}
