package transport

import (
	"net"

	"github.com/chabad360/liteosc/osc"
)

// Client sends OSC packets to a single UDP peer.
type Client struct {
	conn *net.UDPConn
}

// Dial creates a new Client connected to the server at addr.
func Dial(addr string) (*Client, error) {
	a, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}

	conn, err := net.DialUDP("udp", nil, a)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Send writes the encoded packet in one datagram without copying it.
func (c *Client) Send(p osc.Packet) error {
	data := p.Bytes()
	if len(data) == 0 {
		return osc.ErrNotInitialized
	}
	_, err := c.conn.Write(data)
	return err
}

// LocalAddr returns the local address of the connection.
func (c *Client) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// Close closes the connection to the server.
func (c *Client) Close() error {
	return c.conn.Close()
}
