package redloan

import "sync"

// lease is the connection handed out by a pool-backed connector. It
// scopes exclusive ownership of the underlying connection to a single
// caller and returns it to the pool on Close.
type lease struct {
	conn     Conn
	pool     Pool
	mutex    sync.Mutex
	broken   bool
	released bool
}

func newLease(conn Conn, pool Pool) Conn {
	return &lease{
		conn: conn,
		pool: pool,
	}
}

func (l *lease) Send(command Command) (*Response, error) {
	response, err := l.conn.Send(command)
	if err != nil || command.IsPubSub() {
		// A connection that saw an error, or that entered
		// subscription mode, cannot serve another caller.
		l.mark()
	}

	return response, err
}

func (l *lease) Batch(commands []Command) ([]*Response, error) {
	responses, err := l.conn.Batch(commands)
	if err != nil || containsPubSub(commands) {
		l.mark()
	}

	return responses, err
}

// Close returns the connection to the pool. Closing a lease more
// than once is a no-op. Bad connections never go back to the pool;
// they are closed and a nil value is released in their place so the
// capacity of the pool does not permanently decrease.
func (l *lease) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.released {
		return nil
	}

	l.released = true

	if l.broken {
		err := l.conn.Close()
		l.pool.Release(nil)
		return err
	}

	l.pool.Release(l.conn)
	return nil
}

func (l *lease) mark() {
	l.mutex.Lock()
	l.broken = true
	l.mutex.Unlock()
}

func containsPubSub(commands []Command) bool {
	for _, command := range commands {
		if command.IsPubSub() {
			return true
		}
	}

	return false
}
