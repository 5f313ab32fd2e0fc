package redloan

import (
	"github.com/gomodule/redigo/redis"

	"github.com/redloan/redloan/iface"
)

type (
	// Conn abstracts a single, feature-minimal connection to Redis.
	Conn = iface.Conn

	redigoShim struct {
		conn   redis.Conn
		closed bool
	}

	connErr struct{ error }

	// DialFunc creates a connection to Redis or returns an error.
	DialFunc func() (Conn, error)

	// DialerFactory builds the dial function used for a set of
	// candidate addresses. It exists primarily as a test seam.
	DialerFactory func(addrs []string) DialFunc
)

func makeDialer(addr string, config *clientConfig) DialFunc {
	return func() (Conn, error) {
		conn, err := redis.Dial("tcp", addr, dialOptions(config)...)
		if err != nil {
			return nil, err
		}

		return &redigoShim{conn: conn}, nil
	}
}

func dialOptions(config *clientConfig) []redis.DialOption {
	return []redis.DialOption{
		redis.DialPassword(config.password),
		redis.DialDatabase(config.database),
		redis.DialConnectTimeout(config.connectTimeout),
		redis.DialReadTimeout(config.readTimeout),
		redis.DialWriteTimeout(config.writeTimeout),
		redis.DialUseTLS(config.useTLS),
	}
}

func (s *redigoShim) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true
	return s.conn.Close()
}

func (s *redigoShim) Send(command Command) (*Response, error) {
	reply, err := s.conn.Do(command.Name, command.Args...)
	if err != nil {
		return nil, s.wrapError(err)
	}

	return NewResponse(reply), nil
}

func (s *redigoShim) Batch(commands []Command) ([]*Response, error) {
	for _, command := range commands {
		if err := s.conn.Send(command.Name, command.Args...); err != nil {
			return nil, s.wrapError(err)
		}
	}

	// A single flush puts every command on the wire back-to-back so
	// that no other user of the transport can interleave traffic
	// between them.

	if err := s.conn.Flush(); err != nil {
		return nil, s.wrapError(err)
	}

	responses := make([]*Response, 0, len(commands))

	var firstErr error
	for i := 0; i < len(commands); i++ {
		reply, err := s.conn.Receive()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}

			if s.conn.Err() != nil {
				// The connection itself is dead; no further
				// replies will arrive.
				break
			}

			// An error reply from the server. Keep reading so the
			// connection stays aligned with the reply stream.
			continue
		}

		responses = append(responses, NewResponse(reply))
	}

	if firstErr != nil {
		return nil, s.wrapError(firstErr)
	}

	return responses, nil
}

func (s *redigoShim) wrapError(err error) error {
	// If there's an error on the connection, wrap it and return that
	// so the layers above know the connection itself is unusable and
	// must not go back into a pool.

	if s.conn.Err() != nil {
		return connErr{s.conn.Err()}
	}

	return err
}
