package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/netkv/netkv/engine"
	"github.com/netkv/netkv/pkg/metrics"
	"github.com/netkv/netkv/protocol"
	"go.uber.org/zap"
)

// maxMessageSize bounds a single newline-framed command.
const maxMessageSize = 1 << 20

// Server accepts TCP connections and runs one handler goroutine per
// connection, all dispatching into the same engine.DB.
type Server struct {
	db       *engine.DB
	logger   *zap.Logger
	listener net.Listener

	mu     sync.Mutex
	closed bool
	conns  map[net.Conn]struct{}

	// counts the accept loop and every live handler
	running sync.WaitGroup
}

// New constructs the TCP server.
func New(db *engine.DB, logger *zap.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		conns:  make(map[net.Conn]struct{}),
	}
}

// Start binds addr and begins accepting connections in the background.
// A bind failure is returned to the caller and is fatal at startup.
func (s *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	s.listener = listener
	s.running.Add(1)
	go s.acceptLoop()
	return nil
}

// Stop closes the listener and every open connection, then waits until the
// accept loop and all handler goroutines have exited. No handler touches
// the engine or the logger after Stop returns.
func (s *Server) Stop() error {
	s.mu.Lock()
	s.closed = true
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	s.running.Wait()
	return err
}

// Addr returns the bound address, useful when listening on port 0.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// track registers a connection for teardown in Stop. It refuses new
// connections once Stop has begun.
func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Server) acceptLoop() {
	defer s.running.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.isClosed() || errors.Is(err, net.ErrClosed) {
				return
			}
			// accept errors do not stop the listener
			s.logger.Error("Failed to accept connection", zap.Error(err))
			continue
		}
		if !s.track(conn) {
			conn.Close()
			continue
		}
		s.logger.Info("Client connected", zap.String("remote", conn.RemoteAddr().String()))
		s.running.Add(1)
		go func() {
			defer s.running.Done()
			s.handleConn(conn)
		}()
	}
}

// handleConn runs the per-connection loop: one newline-framed JSON command
// in, one response out. A decode failure answers with an Error response and
// keeps the connection; a transport failure ends only this connection.
func (s *Server) handleConn(conn net.Conn) {
	defer func() {
		conn.Close()
		s.untrack(conn)
	}()
	metrics.ActiveConnections.Inc()
	defer metrics.ActiveConnections.Dec()

	remote := conn.RemoteAddr().String()
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
	enc := json.NewEncoder(conn)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var cmd protocol.Command
		if err := json.Unmarshal(line, &cmd); err != nil {
			s.logger.Warn("Failed to parse command",
				zap.String("remote", remote), zap.Error(err))
			if werr := enc.Encode(protocol.Errorf("invalid command: %v", err)); werr != nil {
				s.logger.Error("Failed to write response",
					zap.String("remote", remote), zap.Error(werr))
				return
			}
			continue
		}

		resp := s.db.Execute(cmd)
		if err := enc.Encode(resp); err != nil {
			s.logger.Error("Failed to write response",
				zap.String("remote", remote), zap.Error(err))
			return
		}
	}

	switch err := scanner.Err(); {
	case err == nil:
		s.logger.Info("Client disconnected", zap.String("remote", remote))
	case errors.Is(err, net.ErrClosed):
		// the connection was torn down by Stop
		s.logger.Info("Connection closed", zap.String("remote", remote))
	case errors.Is(err, bufio.ErrTooLong):
		// tell the peer why before dropping the connection: the framing
		// is unrecoverable once a line overruns the cap
		s.logger.Warn("Command exceeds message size limit",
			zap.String("remote", remote))
		_ = enc.Encode(protocol.Errorf("invalid command: %v", err))
	default:
		s.logger.Error("Connection read failed",
			zap.String("remote", remote), zap.Error(err))
	}
}
