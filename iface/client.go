package iface

// Client is a goroutine-safe, minimal, and pooled Redis client. The
// one-shot methods borrow a connection for the duration of a single
// call and release it on every path; the client itself holds no
// persistent connection.
type Client interface {
	// Close shuts down the client's connection source. Closing the
	// client more than once is a no-op.
	Close()

	// Connect acquires a dedicated connection for stateful command
	// sequences such as publish/subscribe, which the one-shot paths
	// reject. The caller owns the connection until it calls Close
	// on it.
	Connect() (Conn, error)

	// Do builds a command from the given name and arguments, runs it
	// on the remote Redis server, and returns its raw reply value.
	Do(command string, args ...interface{}) (interface{}, error)

	// Send runs the command on the remote Redis server and returns
	// its reply. Publish/subscribe commands are rejected before any
	// connection is acquired.
	Send(command Command) (*Response, error)

	// Batch runs the commands on the remote Redis server as a single
	// uninterrupted unit on one connection and returns one reply per
	// command, in command order. A batch containing any
	// publish/subscribe command is rejected before any connection is
	// acquired; a batch is never partially dispatched.
	Batch(commands ...Command) ([]*Response, error)

	// Pipeline returns a builder object to which commands can be
	// attached. All commands in the pipeline are sent to the remote
	// server as a single batch when Run is invoked.
	Pipeline() Pipeline
}
