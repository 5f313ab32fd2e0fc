package redloan

import (
	"time"

	"github.com/bradhe/stopwatch"

	"github.com/redloan/redloan/iface"
)

type (
	// Connector supplies connections to a client. Implementations
	// decide how an address is resolved (standalone, sentinel-fronted
	// master, or cluster) and how connections are pooled.
	Connector = iface.Connector

	// poolConnector hands out leases over a fixed-size pool. It backs
	// both the standalone and the sentinel clients; the two differ
	// only in the dial function given to the pool.
	poolConnector struct {
		pool          Pool
		borrowTimeout *time.Duration
		logger        Logger
	}
)

func newPoolConnector(dialer DialFunc, config *clientConfig) Connector {
	return &poolConnector{
		pool: NewPool(
			dialer,
			config.poolCapacity,
			config.logger,
			config.breakerFunc,
			config.dialBackoff,
			config.clock,
		),
		borrowTimeout: config.borrowTimeout,
		logger:        config.logger,
	}
}

func (c *poolConnector) Connect() (Conn, error) {
	conn, ok := c.timedBorrow()
	if !ok {
		return nil, ErrNoConnection
	}

	return newLease(conn, c.pool), nil
}

func (c *poolConnector) Close() {
	c.pool.Close()
}

// Borrows and logs the time it took to return from blocking on the
// pool's borrow method.
func (c *poolConnector) timedBorrow() (Conn, bool) {
	start := stopwatch.Start()
	conn, ok := c.borrow()
	elapsed := start.Stop().Milliseconds()

	if ok {
		c.logger.Printf("Received connection after %vms", elapsed)
	} else {
		c.logger.Printf("Could not borrow connection after %vms", elapsed)
	}

	return conn, ok
}

// Borrows from the pool using the correct method (depending on if
// a borrow timeout was configured on this client).
func (c *poolConnector) borrow() (Conn, bool) {
	if c.borrowTimeout == nil {
		return c.pool.Borrow()
	}

	return c.pool.BorrowTimeout(*c.borrowTimeout)
}
