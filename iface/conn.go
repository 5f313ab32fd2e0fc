package iface

// Conn abstracts a single, feature-minimal connection to Redis.
type Conn interface {
	// Close releases the connection back to its source (a pool) or
	// terminates it. Closing a connection more than once is a no-op.
	Close() error

	// Send dispatches a single command to the remote Redis server
	// and returns its reply. A nil Response indicates the server
	// replied with no value, which is distinct from an error.
	Send(command Command) (*Response, error)

	// Batch dispatches the given commands in a single write so that
	// no other caller's traffic can interleave between them on this
	// connection. Replies are returned in command order, one per
	// command.
	Batch(commands []Command) ([]*Response, error)
}
