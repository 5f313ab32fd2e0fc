package redloan

import (
	"errors"
	"sync"
	"time"

	"github.com/efritz/backoff"
	"github.com/efritz/glock"
	"github.com/efritz/overcurrent"

	"github.com/redloan/redloan/iface"
)

type (
	// Client is a goroutine-safe, minimal, and pooled Redis client.
	Client = iface.Client

	client struct {
		connector Connector
		logger    Logger
		once      sync.Once
	}

	clientConfig struct {
		password       string
		database       int
		connectTimeout time.Duration
		readTimeout    time.Duration
		writeTimeout   time.Duration
		useTLS         bool
		poolCapacity   int
		breakerFunc    BreakerFunc
		dialBackoff    backoff.Backoff
		clock          glock.Clock
		borrowTimeout  *time.Duration
		dialerFactory  DialerFactory
		logger         Logger
	}

	// ConfigFunc is a function used to initialize a new client.
	ConfigFunc func(*clientConfig)
)

var (
	// ErrNoConnection is returned when the borrow timeout elapses.
	ErrNoConnection = errors.New("no connection available in pool")

	// ErrPubSubOneShot is returned when a publish/subscribe command is
	// given to one of the one-shot dispatch methods. Such commands put
	// a connection into a stateful subscription mode and may only be
	// issued on a dedicated connection obtained from Connect.
	ErrPubSubOneShot = errors.New("publish/subscribe command not allowed outside a dedicated connection")

	// ErrEmptyBatch is returned when a batch contains no commands.
	ErrEmptyBatch = errors.New("batch contains no commands")
)

// NewClient creates a Client connected to a single Redis server.
func NewClient(addr string, configs ...ConfigFunc) Client {
	config := newConfig(configs)

	return newClient(
		newPoolConnector(config.dialer([]string{addr}), config),
		config.logger,
	)
}

func newClient(connector Connector, logger Logger) *client {
	return &client{
		connector: connector,
		logger:    logger,
	}
}

func newConfig(configs []ConfigFunc) *clientConfig {
	config := &clientConfig{
		password:       "",
		database:       0,
		connectTimeout: time.Second * 5,
		writeTimeout:   time.Second * 5,
		readTimeout:    time.Second * 5,
		poolCapacity:   10,
		breakerFunc:    noopBreakerFunc,
		dialBackoff:    defaultBackoff(),
		clock:          glock.NewRealClock(),
		borrowTimeout:  nil,
		logger:         &defaultLogger{},
	}

	for _, f := range configs {
		f(config)
	}

	return config
}

// Backoff values are stateful, so each client config gets its own.
func defaultBackoff() backoff.Backoff {
	return backoff.NewExponentialBackoff(time.Millisecond*50, time.Second*3)
}

// dialer builds the dial function for the given candidate addresses,
// honoring a dialer factory installed by configuration.
func (c *clientConfig) dialer(addrs []string) DialFunc {
	if c.dialerFactory != nil {
		return c.dialerFactory(addrs)
	}

	return makeDialer(chooseRandom(addrs), c)
}

// WithPassword sets the password (default is "").
func WithPassword(password string) ConfigFunc {
	return func(c *clientConfig) { c.password = password }
}

// WithDatabase sets the database index (default is 0).
func WithDatabase(database int) ConfigFunc {
	return func(c *clientConfig) { c.database = database }
}

// WithConnectTimeout sets the connect timeout for new connections
// (default is 5 seconds).
func WithConnectTimeout(timeout time.Duration) ConfigFunc {
	return func(c *clientConfig) { c.connectTimeout = timeout }
}

// WithReadTimeout sets the read timeout for all connections in the
// pool (default is 5 seconds).
func WithReadTimeout(timeout time.Duration) ConfigFunc {
	return func(c *clientConfig) { c.readTimeout = timeout }
}

// WithWriteTimeout sets the write timeout for all connections in the
// pool (default is 5 seconds).
func WithWriteTimeout(timeout time.Duration) ConfigFunc {
	return func(c *clientConfig) { c.writeTimeout = timeout }
}

// WithTLS dials connections over TLS (default is off).
func WithTLS() ConfigFunc {
	return func(c *clientConfig) { c.useTLS = true }
}

// WithPoolCapacity sets the maximum number of concurrent connections
// that can be in use at once (default is 10).
func WithPoolCapacity(capacity int) ConfigFunc {
	return func(c *clientConfig) { c.poolCapacity = capacity }
}

// WithBreaker sets the circuit breaker instance to use around new
// connections. The default uses a no-op circuit breaker.
func WithBreaker(breaker overcurrent.CircuitBreaker) ConfigFunc {
	return func(c *clientConfig) { c.breakerFunc = breaker.Call }
}

// WithBreakerRegistry sets the overcurrent registry to use and the
// name of the circuit breaker config to use around new connections.
// The default uses a no-op circuit breaker.
func WithBreakerRegistry(registry overcurrent.Registry, name string) ConfigFunc {
	return func(c *clientConfig) {
		c.breakerFunc = func(f overcurrent.BreakerFunc) error {
			return registry.Call(name, f, nil)
		}
	}
}

// WithDialBackoff sets the backoff schedule used between dial attempts
// when establishing a new connection fails.
func WithDialBackoff(b backoff.Backoff) ConfigFunc {
	return func(c *clientConfig) { c.dialBackoff = b }
}

// WithBorrowTimeout sets the maximum time a dispatch will wait for a
// connection to become available in the pool.
func WithBorrowTimeout(timeout time.Duration) ConfigFunc {
	return func(c *clientConfig) { c.borrowTimeout = &timeout }
}

// WithDialerFactory sets the factory used to build the dial function
// for a set of addresses.
func WithDialerFactory(factory DialerFactory) ConfigFunc {
	return func(c *clientConfig) { c.dialerFactory = factory }
}

// WithLogger sets the logger instance (the default will use Go's
// builtin logging library).
func WithLogger(logger Logger) ConfigFunc {
	return func(c *clientConfig) { c.logger = logger }
}

func withClock(clock glock.Clock) ConfigFunc {
	return func(c *clientConfig) { c.clock = clock }
}

//
// Client Implementation

func (c *client) Close() {
	c.once.Do(c.connector.Close)
}

func (c *client) Connect() (Conn, error) {
	return c.connector.Connect()
}

func (c *client) Do(command string, args ...interface{}) (interface{}, error) {
	response, err := c.Send(NewCommand(command, args...))
	if err != nil {
		return nil, err
	}

	return response.Value(), nil
}

func (c *client) Send(command Command) (*Response, error) {
	if command.IsPubSub() {
		// Mixing pubsub into a one-shot operation would leave a pooled
		// connection in subscription mode. Reject before any connection
		// is acquired.
		return nil, ErrPubSubOneShot
	}

	conn, err := c.Connect()
	if err != nil {
		return nil, err
	}

	// Regardless of the result, return the connection to the pool.
	defer c.release(conn)

	return conn.Send(command)
}

func (c *client) Batch(commands ...Command) ([]*Response, error) {
	if len(commands) == 0 {
		return nil, ErrEmptyBatch
	}

	for _, command := range commands {
		if command.IsPubSub() {
			return nil, ErrPubSubOneShot
		}
	}

	conn, err := c.Connect()
	if err != nil {
		return nil, err
	}

	// Regardless of the result, return the connection to the pool.
	defer c.release(conn)

	return conn.Batch(commands)
}

func (c *client) Pipeline() Pipeline {
	return newPipeline(c)
}

//
// Client Helper Functions

// Release the connection back to its source. A failure to release
// never replaces a dispatch result; it is only logged.
func (c *client) release(conn Conn) {
	if err := conn.Close(); err != nil {
		c.logger.Printf("Could not release connection (%s)", err.Error())
	}
}
