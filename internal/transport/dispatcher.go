package transport

import (
	"fmt"
	"net"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/chabad360/liteosc/osc"
)

// Method is an interface for OSC Methods.
type Method interface {
	HandleMessage(msg *osc.Message)
}

// MethodFunc implements the Method interface. Type definition for an OSC Method function.
type MethodFunc func(msg *osc.Message)

// HandleMessage calls itself with the given OSC Message. Implements the Method interface.
func (f MethodFunc) HandleMessage(msg *osc.Message) {
	f(msg)
}

// Dispatcher routes messages to Methods by literal address. Methods are
// registered relative to the dispatcher; a container added with Route
// receives the rest of every address that starts with its prefix.
//
// A Dispatcher must be fully set up before it is used by a Server.
type Dispatcher struct {
	methods  map[string]Method
	routes   map[string]*Dispatcher
	prefixes []string
	msgOpts  []osc.Option
	Log      zerolog.Logger
}

// NewDispatcher returns an empty Dispatcher. opts configure the copies made
// of messages scheduled for later delivery.
func NewDispatcher(opts ...osc.Option) *Dispatcher {
	return &Dispatcher{
		methods: make(map[string]Method),
		routes:  make(map[string]*Dispatcher),
		msgOpts: opts,
		Log:     zerolog.Nop(),
	}
}

func checkPart(op, addr string) error {
	if !strings.HasPrefix(addr, "/") {
		return fmt.Errorf("%s: OSC address %q must start with '/'", op, addr)
	}
	if strings.ContainsAny(addr, "*?,[]{}# \x00") {
		return fmt.Errorf("%s: OSC address may not contain any characters in \"*?,[]{}# \"", op)
	}
	return nil
}

// AddMethod adds a new OSC Method for the given OSC Address.
func (d *Dispatcher) AddMethod(addr string, method Method) error {
	if err := checkPart("AddMethod", addr); err != nil {
		return err
	}
	if _, ok := d.methods[addr]; ok {
		return fmt.Errorf("AddMethod: OSC Method %s exists already", addr)
	}

	d.methods[addr] = method
	return nil
}

// AddMethodFunc allows you to just pass a MethodFunc.
func (d *Dispatcher) AddMethodFunc(addr string, method MethodFunc) error {
	return d.AddMethod(addr, method)
}

// Route returns the Dispatcher for the container prefix, creating it on
// first use. prefix must not end with '/'.
func (d *Dispatcher) Route(prefix string) (*Dispatcher, error) {
	if err := checkPart("Route", prefix); err != nil {
		return nil, err
	}
	if strings.HasSuffix(prefix, "/") {
		return nil, fmt.Errorf("Route: container %q ends with '/'", prefix)
	}
	if sub, ok := d.routes[prefix]; ok {
		return sub, nil
	}

	sub := NewDispatcher(d.msgOpts...)
	sub.Log = d.Log
	d.routes[prefix] = sub
	d.prefixes = append(d.prefixes, prefix)
	sort.Strings(d.prefixes)
	return sub, nil
}

// Dispatch calls every Method whose address matches m and returns how many
// were called.
func (d *Dispatcher) Dispatch(m *osc.Message) int {
	return d.dispatch(m, 0)
}

func (d *Dispatcher) dispatch(m *osc.Message, offset int) int {
	end := m.Address().Len()
	if end == 0 {
		return 0
	}

	n := 0
	if method, ok := d.methods[string(m.Address()[offset:])]; ok {
		method.HandleMessage(m)
		n++
	}
	for _, prefix := range d.prefixes {
		// Match also stops at a '/' inside a longer prefix, so only a
		// fully consumed prefix selects the container.
		next := m.Match(offset, prefix)
		if next-offset == len(prefix) && next < end {
			n += d.routes[prefix].dispatch(m, next)
		}
	}
	return n
}

// ServeOSC implements Handler. Messages from bundles with a time tag in the
// future are copied and dispatched when the time tag expires.
func (d *Dispatcher) ServeOSC(t osc.Timetag, m *osc.Message, from net.Addr) {
	wait := t.ExpiresIn()
	if wait <= 0 {
		d.deliver(m, from)
		return
	}

	data, err := m.MarshalBinary()
	if err != nil {
		d.Log.Warn().Err(err).Msg("cannot schedule osc message")
		return
	}
	time.AfterFunc(wait, func() {
		later := osc.NewMessage(d.msgOpts...)
		if err := later.Parse(data); err != nil {
			d.Log.Warn().Err(err).Msg("scheduled osc message no longer parses")
			return
		}
		d.deliver(later, from)
	})
}

func (d *Dispatcher) deliver(m *osc.Message, from net.Addr) {
	if d.Dispatch(m) == 0 {
		d.Log.Debug().Str("from", from.String()).Stringer("address", m.Address()).Msg("no osc method")
	}
}
