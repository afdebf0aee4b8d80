// Package transport carries OSC packets over UDP for the liteosc programs.
package transport

import (
	"context"
	"errors"
	"net"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/chabad360/liteosc/osc"
)

// MaxPacketSize is the largest UDP payload the server reads.
const MaxPacketSize = 65507

// Handler receives every message of a packet. The message and its views are
// reused for the next message, so a Handler must copy what it keeps.
type Handler interface {
	ServeOSC(t osc.Timetag, m *osc.Message, from net.Addr)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(t osc.Timetag, m *osc.Message, from net.Addr)

func (f HandlerFunc) ServeOSC(t osc.Timetag, m *osc.Message, from net.Addr) {
	f(t, m, from)
}

// Server reads OSC packets from Addr and passes their messages to Handler.
// Packets are handled one at a time on the reading goroutine with a single
// reused Message, so serving does not allocate per packet.
type Server struct {
	Addr    string
	Handler Handler
	// ReadTimeout bounds each read so that cancellation is noticed even
	// when no packets arrive. Zero means one second.
	ReadTimeout time.Duration
	// MessageOptions configure the Message packets are parsed into.
	MessageOptions []osc.Option
	Log            zerolog.Logger
}

// ListenAndServe listens on s.Addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.ListenPacket("udp", s.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	s.Log.Info().Str("addr", ln.LocalAddr().String()).Msg("osc server listening")
	return s.Serve(ctx, ln)
}

// Serve reads packets from c until ctx is done or reading fails. It returns
// nil after cancellation.
func (s *Server) Serve(ctx context.Context, c net.PacketConn) error {
	if s.Handler == nil {
		return errors.New("transport: server has no handler")
	}
	timeout := s.ReadTimeout
	if timeout <= 0 {
		timeout = time.Second
	}

	buf := make([]byte, MaxPacketSize)
	m := osc.NewMessage(s.MessageOptions...)
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := c.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return err
		}

		n, addr, err := c.ReadFrom(buf)
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		s.serve(buf[:n], m, addr)
	}
}

func (s *Server) serve(data []byte, m *osc.Message, a net.Addr) {
	defer func() {
		if err := recover(); err != nil {
			stack := make([]byte, 4096)
			stack = stack[:runtime.Stack(stack, false)]
			s.Log.Error().
				Str("from", a.String()).
				Interface("panic", err).
				Bytes("stack", stack).
				Msg("osc handler panicked")
		}
	}()

	err := osc.ParsePacket(data, m, func(t osc.Timetag, m *osc.Message) error {
		s.Handler.ServeOSC(t, m, a)
		return nil
	})
	if err != nil {
		s.Log.Warn().Err(err).Str("from", a.String()).Int("size", len(data)).Msg("dropping osc packet")
	}
}
