package redloan

import "github.com/redloan/redloan/iface"

// Response wraps a single reply from the remote Redis server. A nil
// *Response is the absent reply.
type Response = iface.Response

// NewResponse wraps a raw reply value. A nil reply yields a nil
// Response. Custom Conn implementations use this to produce replies.
func NewResponse(value interface{}) *Response {
	return iface.NewResponse(value)
}
