package redloan

import "github.com/redloan/redloan/iface"

type (
	// Pipeline wraps an ordered sequence of commands to be processed
	// with a single request/response exchange. This reduces bandwidth
	// and latency around communication with the remote server.
	Pipeline = iface.Pipeline

	pipeline struct {
		client   *client
		commands []Command
	}
)

func newPipeline(client *client) Pipeline {
	return &pipeline{
		client:   client,
		commands: []Command{},
	}
}

// Add will attach a command to this pipeline. This command is
// not sent to the remote server until Run is invoked.
func (p *pipeline) Add(command string, args ...interface{}) {
	p.commands = append(p.commands, NewCommand(command, args...))
}

// Run will send all commands attached to this pipeline as one
// batch and return the replies of each command in order.
func (p *pipeline) Run() ([]*Response, error) {
	return p.client.Batch(p.commands...)
}
