package redloan

import (
	"errors"
	"net"

	"github.com/gomodule/redigo/redis"
)

// sentinelResolver discovers the current master address for a named
// replica set by asking one of the configured sentinels. Quorum and
// failover election are the sentinels' business; the resolver only
// reads their current answer.
type sentinelResolver struct {
	master       string
	sentinels    []string
	config       *clientConfig
	dialSentinel func(addr string) (redis.Conn, error)
}

var errBadMasterAddr = errors.New("malformed master address from sentinel")

// NewSentinelClient creates a Client whose connections are dialed to
// the master currently advertised by the given sentinels. Each new
// connection re-resolves the master, so a failover is picked up the
// next time the pool dials.
func NewSentinelClient(master string, sentinels []string, configs ...ConfigFunc) Client {
	config := newConfig(configs)

	var dialer DialFunc
	if config.dialerFactory != nil {
		dialer = config.dialerFactory(sentinels)
	} else {
		resolver := newSentinelResolver(master, sentinels, config)
		dialer = resolver.dial
	}

	return newClient(newPoolConnector(dialer, config), config.logger)
}

func newSentinelResolver(master string, sentinels []string, config *clientConfig) *sentinelResolver {
	return &sentinelResolver{
		master:    master,
		sentinels: sentinels,
		config:    config,
		dialSentinel: func(addr string) (redis.Conn, error) {
			// Sentinels speak the plain protocol with no auth or
			// database selection.
			return redis.Dial(
				"tcp",
				addr,
				redis.DialConnectTimeout(config.connectTimeout),
				redis.DialReadTimeout(config.readTimeout),
				redis.DialWriteTimeout(config.writeTimeout),
			)
		},
	}
}

// dial resolves the current master address and dials it with the
// client's connection options.
func (r *sentinelResolver) dial() (Conn, error) {
	addr, err := r.resolveMaster()
	if err != nil {
		return nil, err
	}

	return makeDialer(addr, r.config)()
}

func (r *sentinelResolver) resolveMaster() (string, error) {
	conn, err := r.dialSentinel(chooseRandom(r.sentinels))
	if err != nil {
		return "", err
	}
	defer conn.Close()

	parts, err := redis.Strings(conn.Do("SENTINEL", "get-master-addr-by-name", r.master))
	if err != nil {
		return "", err
	}

	if len(parts) != 2 {
		return "", errBadMasterAddr
	}

	return net.JoinHostPort(parts[0], parts[1]), nil
}
