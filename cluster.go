package redloan

import (
	"github.com/gomodule/redigo/redis"
	"github.com/mna/redisc"
)

type (
	// clusterPool is the slice of redisc.Cluster the connector needs.
	// Slot routing and redirection handling stay inside redisc.
	clusterPool interface {
		Get() redis.Conn
		Refresh() error
		Close() error
	}

	clusterConnector struct {
		cluster clusterPool
		logger  Logger
	}
)

// NewClusterClient creates a Client backed by a Redis cluster. The
// given addresses are the startup nodes used to discover the slot
// layout; connections are routed per-command by the cluster layer.
func NewClusterClient(addrs []string, configs ...ConfigFunc) Client {
	config := newConfig(configs)

	cluster := &redisc.Cluster{
		StartupNodes: addrs,
		DialOptions:  dialOptions(config),
		CreatePool:   makeClusterPool(config),
	}

	connector := &clusterConnector{
		cluster: cluster,
		logger:  config.logger,
	}

	if err := cluster.Refresh(); err != nil {
		// Routing still works without the mapping; the first MOVED
		// replies will populate it.
		config.logger.Printf("Could not refresh cluster slot mapping (%s)", err.Error())
	}

	return newClient(connector, config.logger)
}

func makeClusterPool(config *clientConfig) func(addr string, options ...redis.DialOption) (*redis.Pool, error) {
	return func(addr string, options ...redis.DialOption) (*redis.Pool, error) {
		return &redis.Pool{
			MaxIdle: config.poolCapacity,
			Dial: func() (redis.Conn, error) {
				return redis.Dial("tcp", addr, options...)
			},
		}, nil
	}
}

func (c *clusterConnector) Connect() (Conn, error) {
	conn := c.cluster.Get()
	if err := conn.Err(); err != nil {
		conn.Close()
		return nil, err
	}

	// Closing the shim hands the underlying connection back to the
	// node pool it came from.
	return &redigoShim{conn: conn}, nil
}

func (c *clusterConnector) Close() {
	if err := c.cluster.Close(); err != nil {
		c.logger.Printf("Could not close cluster (%s)", err.Error())
	}
}
