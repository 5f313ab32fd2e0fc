package redloan

import (
	"errors"

	"github.com/aphistic/sweet"
	"github.com/gomodule/redigo/redis"
	. "github.com/onsi/gomega"
)

type SentinelSuite struct{}

func (s *SentinelSuite) TestResolveMaster(t sweet.T) {
	var (
		stub     = newStubRedisConn()
		closed   = 0
		resolver = &sentinelResolver{
			master:    "mymaster",
			sentinels: []string{"s1:26379"},
			dialSentinel: func(addr string) (redis.Conn, error) {
				Expect(addr).To(Equal("s1:26379"))
				return stub, nil
			},
		}
	)

	stub.doFunc = func(command string, args ...interface{}) (interface{}, error) {
		Expect(command).To(Equal("SENTINEL"))
		Expect(args).To(Equal([]interface{}{"get-master-addr-by-name", "mymaster"}))
		return []interface{}{[]byte("10.0.0.1"), []byte("6379")}, nil
	}

	stub.closeFunc = func() error {
		closed++
		return nil
	}

	addr, err := resolver.resolveMaster()
	Expect(err).To(BeNil())
	Expect(addr).To(Equal("10.0.0.1:6379"))
	Expect(closed).To(Equal(1))
}

func (s *SentinelSuite) TestResolveMasterDialError(t sweet.T) {
	resolver := &sentinelResolver{
		master:    "mymaster",
		sentinels: []string{"s1:26379"},
		dialSentinel: func(addr string) (redis.Conn, error) {
			return nil, errors.New("no route to host")
		},
	}

	_, err := resolver.resolveMaster()
	Expect(err).To(MatchError("no route to host"))
}

func (s *SentinelSuite) TestResolveMasterMalformedReply(t sweet.T) {
	stub := newStubRedisConn()
	stub.doFunc = func(command string, args ...interface{}) (interface{}, error) {
		return []interface{}{[]byte("10.0.0.1")}, nil
	}

	resolver := &sentinelResolver{
		master:    "mymaster",
		sentinels: []string{"s1:26379"},
		dialSentinel: func(addr string) (redis.Conn, error) {
			return stub, nil
		},
	}

	_, err := resolver.resolveMaster()
	Expect(err).To(Equal(errBadMasterAddr))
}

func (s *SentinelSuite) TestConfigureSentinelClient(t sweet.T) {
	client := NewSentinelClient(
		"mymaster",
		[]string{"s1:26379", "s2:26379"},
		WithLogger(testLogger),
		WithDialerFactory(func(addrs []string) DialFunc {
			return func() (Conn, error) {
				c := NewMockConn()
				c.SendFunc = func(command Command) (*Response, error) {
					return NewResponse(addrs), nil
				}

				return c, nil
			}
		}),
	)

	response, err := client.Send(NewCommand("PING"))
	Expect(err).To(BeNil())
	Expect(response.Value()).To(Equal([]string{"s1:26379", "s2:26379"}))
}
