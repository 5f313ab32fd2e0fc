package redloan

import "github.com/redloan/redloan/iface"

// Command bundles a command name and its ordered arguments together
// for dispatch to the remote Redis server.
type Command = iface.Command

// NewCommand creates a Command instance. The argument slice is copied
// so that a command already handed to the client cannot be changed
// behind its back.
func NewCommand(name string, args ...interface{}) Command {
	copied := make([]interface{}, len(args))
	copy(copied, args)

	return Command{
		Name: name,
		Args: copied,
	}
}
