// Package client provides a Go client for the netkv TCP protocol.
//
// It offers typed helpers for every command (Get, Set, Delete, Exists,
// Keys, Len, Clear, Ping) on top of a generic Do, handling framing, JSON
// encoding and error mapping. Error responses surface as *ServerError.
package client

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/netkv/netkv/protocol"
)

// DialTimeout bounds the initial TCP connect.
const DialTimeout = 10 * time.Second

// ServerError is an Error response returned by the server.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %s", e.Message)
}

// Client is a connection to a netkv server. Not safe for concurrent use;
// the protocol is strictly request/response per connection.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
	enc    *json.Encoder
}

// New dials the server at addr.
func New(addr string) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, DialTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		reader: bufio.NewReader(conn),
		enc:    json.NewEncoder(conn),
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Do sends one command and reads its response. Messages are newline-framed
// JSON in both directions.
func (c *Client) Do(cmd protocol.Command) (protocol.Response, error) {
	if err := c.enc.Encode(cmd); err != nil {
		return protocol.Response{}, fmt.Errorf("failed to send command: %w", err)
	}

	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		return protocol.Response{}, fmt.Errorf("failed to read response: %w", err)
	}

	var resp protocol.Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return protocol.Response{}, fmt.Errorf("invalid response: %w", err)
	}
	return resp, nil
}

// do runs cmd and maps Error responses to *ServerError.
func (c *Client) do(cmd protocol.Command) (protocol.Response, error) {
	resp, err := c.Do(cmd)
	if err != nil {
		return protocol.Response{}, err
	}
	if resp.Kind == protocol.KindError {
		return protocol.Response{}, &ServerError{Message: resp.Message}
	}
	return resp, nil
}

// okValue unwraps an Ok response into (value, present).
func okValue(resp protocol.Response) (string, bool, error) {
	if resp.Kind != protocol.KindOk {
		return "", false, fmt.Errorf("unexpected response %q", string(resp.Kind))
	}
	if resp.Value == nil {
		return "", false, nil
	}
	return *resp.Value, true, nil
}

// Get returns the value for key and whether it was present.
func (c *Client) Get(key string) (string, bool, error) {
	resp, err := c.do(protocol.Command{Op: protocol.OpGet, Key: key})
	if err != nil {
		return "", false, err
	}
	return okValue(resp)
}

// Set stores value under key and returns the previous value, if any.
func (c *Client) Set(key, value string) (string, bool, error) {
	resp, err := c.do(protocol.Command{Op: protocol.OpSet, Key: key, Value: value})
	if err != nil {
		return "", false, err
	}
	return okValue(resp)
}

// Delete removes key and returns the value it held, if any.
func (c *Client) Delete(key string) (string, bool, error) {
	resp, err := c.do(protocol.Command{Op: protocol.OpDelete, Key: key})
	if err != nil {
		return "", false, err
	}
	return okValue(resp)
}

// Exists reports whether key is present.
func (c *Client) Exists(key string) (bool, error) {
	resp, err := c.do(protocol.Command{Op: protocol.OpExists, Key: key})
	if err != nil {
		return false, err
	}
	value, present, err := okValue(resp)
	if err != nil {
		return false, err
	}
	if !present {
		return false, nil
	}
	exists, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean in response: %w", err)
	}
	return exists, nil
}

// Keys returns all current keys, order unspecified.
func (c *Client) Keys() ([]string, error) {
	resp, err := c.do(protocol.Command{Op: protocol.OpKeys})
	if err != nil {
		return nil, err
	}
	if resp.Kind != protocol.KindKeyList {
		return nil, fmt.Errorf("unexpected response %q", string(resp.Kind))
	}
	return resp.Keys, nil
}

// Len returns the number of entries.
func (c *Client) Len() (int, error) {
	resp, err := c.do(protocol.Command{Op: protocol.OpLen})
	if err != nil {
		return 0, err
	}
	if resp.Kind != protocol.KindCount {
		return 0, fmt.Errorf("unexpected response %q", string(resp.Kind))
	}
	return resp.Count, nil
}

// Clear removes all entries.
func (c *Client) Clear() error {
	resp, err := c.do(protocol.Command{Op: protocol.OpClear})
	if err != nil {
		return err
	}
	if resp.Kind != protocol.KindOk {
		return fmt.Errorf("unexpected response %q", string(resp.Kind))
	}
	return nil
}

// Ping health-checks the server.
func (c *Client) Ping() error {
	resp, err := c.do(protocol.Command{Op: protocol.OpPing})
	if err != nil {
		return err
	}
	if resp.Kind != protocol.KindPong {
		return fmt.Errorf("unexpected response %q", string(resp.Kind))
	}
	return nil
}
