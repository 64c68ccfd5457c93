// Package protocol defines the wire types exchanged between client and
// server: one JSON value per message, newline-delimited. Each variant is
// externally tagged — field-less variants encode as a bare string
// ("Ping"), variants with fields as a single-key object
// ({"Get":{"key":"a"}}).
package protocol

import (
	"encoding/json"
	"fmt"
)

// Op identifies a command variant. The string value is the wire tag.
type Op string

const (
	OpGet    Op = "Get"
	OpSet    Op = "Set"
	OpDelete Op = "Delete"
	OpExists Op = "Exists"
	OpKeys   Op = "Keys"
	OpLen    Op = "Len"
	OpClear  Op = "Clear"
	OpPing   Op = "Ping"
)

// Command is a single client request. Key is used by Get, Set, Delete and
// Exists; Value only by Set.
type Command struct {
	Op    Op
	Key   string
	Value string
}

type keyArgs struct {
	Key string `json:"key"`
}

type keyValueArgs struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// MarshalJSON encodes the command in its externally tagged form.
func (c Command) MarshalJSON() ([]byte, error) {
	switch c.Op {
	case OpKeys, OpLen, OpClear, OpPing:
		return json.Marshal(string(c.Op))
	case OpGet, OpDelete, OpExists:
		return json.Marshal(map[string]keyArgs{string(c.Op): {Key: c.Key}})
	case OpSet:
		return json.Marshal(map[string]keyValueArgs{string(c.Op): {Key: c.Key, Value: c.Value}})
	default:
		return nil, fmt.Errorf("unknown command op %q", string(c.Op))
	}
}

// UnmarshalJSON decodes either a bare-string variant or a single-key
// tagged object. Anything else is a decode error.
func (c *Command) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		switch Op(tag) {
		case OpKeys, OpLen, OpClear, OpPing:
			*c = Command{Op: Op(tag)}
			return nil
		default:
			return fmt.Errorf("unknown command %q", tag)
		}
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("malformed command: %w", err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("expected a single command variant, got %d", len(tagged))
	}

	for tag, raw := range tagged {
		switch Op(tag) {
		case OpGet, OpDelete, OpExists:
			var args keyArgs
			if err := json.Unmarshal(raw, &args); err != nil {
				return fmt.Errorf("malformed %s command: %w", tag, err)
			}
			*c = Command{Op: Op(tag), Key: args.Key}
		case OpSet:
			var args keyValueArgs
			if err := json.Unmarshal(raw, &args); err != nil {
				return fmt.Errorf("malformed %s command: %w", tag, err)
			}
			*c = Command{Op: OpSet, Key: args.Key, Value: args.Value}
		default:
			return fmt.Errorf("unknown command %q", tag)
		}
	}
	return nil
}

// Kind identifies a response variant.
type Kind string

const (
	KindOk      Kind = "Ok"
	KindError   Kind = "Error"
	KindKeyList Kind = "Keys"
	KindCount   Kind = "Len"
	KindPong    Kind = "Pong"
)

// Response is a single server reply. Value is nil for an absent value,
// which encodes as JSON null.
type Response struct {
	Kind    Kind
	Value   *string
	Message string
	Keys    []string
	Count   int
}

// OkValue builds an Ok response carrying a value.
func OkValue(value string) Response {
	return Response{Kind: KindOk, Value: &value}
}

// OkEmpty builds an Ok response with no value.
func OkEmpty() Response {
	return Response{Kind: KindOk}
}

// Errorf builds an Error response with a formatted message.
func Errorf(format string, args ...any) Response {
	return Response{Kind: KindError, Message: fmt.Sprintf(format, args...)}
}

// KeyList builds a response carrying all current keys.
func KeyList(keys []string) Response {
	if keys == nil {
		keys = []string{}
	}
	return Response{Kind: KindKeyList, Keys: keys}
}

// Count builds a response carrying the entry count.
func Count(count int) Response {
	return Response{Kind: KindCount, Count: count}
}

// Pong builds the health-check reply.
func Pong() Response {
	return Response{Kind: KindPong}
}

type okPayload struct {
	Value *string `json:"value"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type keysPayload struct {
	Keys []string `json:"keys"`
}

type countPayload struct {
	Count int `json:"count"`
}

// MarshalJSON encodes the response in its externally tagged form.
func (r Response) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindOk:
		return json.Marshal(map[string]okPayload{string(KindOk): {Value: r.Value}})
	case KindError:
		return json.Marshal(map[string]errorPayload{string(KindError): {Message: r.Message}})
	case KindKeyList:
		keys := r.Keys
		if keys == nil {
			keys = []string{}
		}
		return json.Marshal(map[string]keysPayload{string(KindKeyList): {Keys: keys}})
	case KindCount:
		return json.Marshal(map[string]countPayload{string(KindCount): {Count: r.Count}})
	case KindPong:
		return json.Marshal(string(KindPong))
	default:
		return nil, fmt.Errorf("unknown response kind %q", string(r.Kind))
	}
}

// UnmarshalJSON decodes a response from its externally tagged form.
func (r *Response) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if Kind(tag) != KindPong {
			return fmt.Errorf("unknown response %q", tag)
		}
		*r = Response{Kind: KindPong}
		return nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("expected a single response variant, got %d", len(tagged))
	}

	for tag, raw := range tagged {
		switch Kind(tag) {
		case KindOk:
			var payload okPayload
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("malformed Ok response: %w", err)
			}
			*r = Response{Kind: KindOk, Value: payload.Value}
		case KindError:
			var payload errorPayload
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("malformed Error response: %w", err)
			}
			*r = Response{Kind: KindError, Message: payload.Message}
		case KindKeyList:
			var payload keysPayload
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("malformed Keys response: %w", err)
			}
			*r = Response{Kind: KindKeyList, Keys: payload.Keys}
		case KindCount:
			var payload countPayload
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("malformed Len response: %w", err)
			}
			*r = Response{Kind: KindCount, Count: payload.Count}
		default:
			return fmt.Errorf("unknown response %q", tag)
		}
	}
	return nil
}
