package redloan

import (
	"github.com/aphistic/sweet"
	. "github.com/onsi/gomega"
)

type CommandSuite struct{}

func (s *CommandSuite) TestIsPubSub(t sweet.T) {
	for _, name := range []string{
		"SUBSCRIBE",
		"UNSUBSCRIBE",
		"PSUBSCRIBE",
		"PUNSUBSCRIBE",
		"SSUBSCRIBE",
		"SUNSUBSCRIBE",
		"subscribe",
		"pSubscribe",
	} {
		Expect(NewCommand(name, "channel").IsPubSub()).To(BeTrue())
	}
}

func (s *CommandSuite) TestIsPubSubOneShotCommands(t sweet.T) {
	for _, name := range []string{
		"GET",
		"SET",
		"DEL",
		"PUBLISH",
		"spublish",
		"PING",
	} {
		Expect(NewCommand(name).IsPubSub()).To(BeFalse())
	}
}

func (s *CommandSuite) TestNewCommandCopiesArgs(t sweet.T) {
	args := []interface{}{"a", "1"}
	command := NewCommand("SET", args...)

	args[1] = "2"
	Expect(command.Args).To(Equal([]interface{}{"a", "1"}))
}
