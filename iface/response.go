package iface

import "github.com/gomodule/redigo/redis"

// Response wraps a single reply from the remote Redis server. The
// shape of the underlying value belongs to the wire codec; this type
// only distinguishes absence from presence and offers typed views
// over the raw reply. A nil *Response is the absent reply, which is
// a valid outcome distinct from an error.
type Response struct {
	value interface{}
}

// NewResponse wraps a raw reply value. A nil reply yields a nil
// Response.
func NewResponse(value interface{}) *Response {
	if value == nil {
		return nil
	}

	return &Response{value: value}
}

// IsNull reports whether the reply was absent.
func (r *Response) IsNull() bool {
	return r == nil
}

// Value returns the raw reply value as produced by the codec, or
// nil for an absent reply.
func (r *Response) Value() interface{} {
	if r == nil {
		return nil
	}

	return r.value
}

// String converts the reply to a string.
func (r *Response) String() (string, error) {
	return redis.String(r.Value(), nil)
}

// Bytes converts the reply to a byte slice.
func (r *Response) Bytes() ([]byte, error) {
	return redis.Bytes(r.Value(), nil)
}

// Int converts the reply to an int.
func (r *Response) Int() (int, error) {
	return redis.Int(r.Value(), nil)
}

// Int64 converts the reply to an int64.
func (r *Response) Int64() (int64, error) {
	return redis.Int64(r.Value(), nil)
}

// Bool converts the reply to a bool.
func (r *Response) Bool() (bool, error) {
	return redis.Bool(r.Value(), nil)
}

// Values converts an aggregate reply to a slice of raw values.
func (r *Response) Values() ([]interface{}, error) {
	return redis.Values(r.Value(), nil)
}

// Strings converts an aggregate reply to a slice of strings.
func (r *Response) Strings() ([]string, error) {
	return redis.Strings(r.Value(), nil)
}
