package iface

// Pipeline wraps an ordered sequence of commands to be processed
// with a single request/response exchange. This reduces bandwidth
// and latency around communication with the remote server.
type Pipeline interface {
	// Add will attach a command to this pipeline. This command is
	// not sent to the remote server until Run is invoked.
	Add(command string, args ...interface{})

	// Run will send all commands attached to this pipeline as one
	// batch and return the replies of each command in order.
	Run() ([]*Response, error)
}
