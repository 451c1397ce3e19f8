package bridge

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"sync"
)

// Server listens on a Unix socket and routes control requests to a Handler.
type Server struct {
	handler  Handler
	listener net.Listener
	sockPath string
	wg       sync.WaitGroup
}

// NewServer creates a Server bound to the default socket path.
func NewServer(handler Handler) (*Server, error) {
	return NewServerAt(SocketPath(), handler)
}

// NewServerAt creates a Server bound to an explicit socket path.
func NewServerAt(sockPath string, handler Handler) (*Server, error) {
	// Remove stale socket file from a previous run.
	_ = os.Remove(sockPath)

	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		return nil, err
	}

	return &Server{
		handler:  handler,
		listener: listener,
		sockPath: sockPath,
	}, nil
}

// Serve accepts connections and handles them. Blocks until the listener is
// closed.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// Listener was closed.
			return err
		}
		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

// Close shuts down the server: closes the listener, waits for in-flight
// connections, removes the socket.
func (s *Server) Close() {
	_ = s.listener.Close()
	s.wg.Wait()
	_ = os.Remove(s.sockPath)
}

func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	scanner := bufio.NewScanner(conn)

	for scanner.Scan() {
		line := scanner.Text()
		resp := s.handleRequest(line)

		data, err := json.Marshal(resp)
		if err != nil {
			data, _ = json.Marshal(Response{
				Type:    "Error",
				Code:    -1,
				Message: err.Error(),
			})
		}
		data = append(data, '\n')

		if _, err := conn.Write(data); err != nil {
			return
		}
	}
}

func (s *Server) handleRequest(line string) Response {
	var req Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return Response{
			Type:    "Error",
			Code:    -32700,
			Message: "parse error: " + err.Error(),
		}
	}

	switch req.Type {
	case "Ping":
		return Response{Type: "Pong"}

	case "Status":
		status := s.handler.Status()
		return Response{
			Type:   "Status",
			Status: &status,
		}

	case "Reload":
		if err := s.handler.Reload(); err != nil {
			return Response{
				Type:    "Error",
				Code:    -32603,
				Message: err.Error(),
			}
		}
		return Response{Type: "OK"}

	case "Stop":
		// Stop is acknowledged before the daemon begins shutdown.
		s.handler.Stop()
		return Response{Type: "OK"}

	default:
		return Response{
			Type:    "Error",
			Code:    -32601,
			Message: "unknown request type: " + req.Type,
		}
	}
}
