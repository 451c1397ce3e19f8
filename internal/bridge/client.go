package bridge

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
)

// Client talks to a running daemon over its control socket.
type Client struct {
	sockPath string
}

// NewClient creates a Client for the default socket path.
func NewClient() *Client {
	return &Client{sockPath: SocketPath()}
}

// NewClientAt creates a Client for an explicit socket path.
func NewClientAt(sockPath string) *Client {
	return &Client{sockPath: sockPath}
}

// Ping checks whether a daemon is listening on the socket.
func (c *Client) Ping() error {
	resp, err := c.send(Request{Type: "Ping"})
	if err != nil {
		return err
	}
	if resp.Type != "Pong" {
		return fmt.Errorf("unexpected response type %q", resp.Type)
	}
	return nil
}

// Status fetches a snapshot of the running daemon.
func (c *Client) Status() (*DaemonStatus, error) {
	resp, err := c.send(Request{Type: "Status"})
	if err != nil {
		return nil, err
	}
	if resp.Type == "Error" {
		return nil, fmt.Errorf("daemon error (code %d): %s", resp.Code, resp.Message)
	}
	if resp.Status == nil {
		return nil, fmt.Errorf("daemon returned no status")
	}
	return resp.Status, nil
}

// Reload asks the daemon to re-read its alarm set.
func (c *Client) Reload() error {
	resp, err := c.send(Request{Type: "Reload"})
	if err != nil {
		return err
	}
	if resp.Type == "Error" {
		return fmt.Errorf("daemon error (code %d): %s", resp.Code, resp.Message)
	}
	return nil
}

// StopDaemon asks the daemon to shut down.
func (c *Client) StopDaemon() error {
	resp, err := c.send(Request{Type: "Stop"})
	if err != nil {
		return err
	}
	if resp.Type == "Error" {
		return fmt.Errorf("daemon error (code %d): %s", resp.Code, resp.Message)
	}
	return nil
}

// send opens a connection, writes the request, reads one response, and
// closes. One connection per request keeps the protocol stateless.
func (c *Client) send(req Request) (*Response, error) {
	conn, err := net.Dial("unix", c.sockPath)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to chime daemon at %s: %w (is `chime daemon` running?)", c.sockPath, err)
	}
	defer conn.Close()

	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	data = append(data, '\n')

	if _, err := conn.Write(data); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read failed: %w", err)
		}
		return nil, fmt.Errorf("daemon closed connection")
	}

	var resp Response
	if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("parse response failed: %w", err)
	}
	return &resp, nil
}
