package iface

// Connector supplies connections to a client. Implementations decide
// how an address is resolved (standalone, sentinel-fronted master, or
// cluster) and how connections are pooled; the client dispatch logic
// is identical across all of them.
type Connector interface {
	// Connect acquires a connection. The caller must call Close on
	// the returned connection exactly once, on every path.
	Connect() (Conn, error)

	// Close shuts the connection source down, closing any live
	// connections it holds. This method blocks.
	Close()
}
