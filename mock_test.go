// DO NOT EDIT
// Code generated automatically by github.com/efritz/go-mockgen
// $ go-mockgen github.com/redloan/redloan -o mock_test.go -i Conn -i Connector -i Pool

package redloan

import time "time"

type MockConn struct {
	SendFunc            func(Command) (*Response, error)
	SendFuncCallCount   int
	SendFuncCallParams  []ConnSendParamSet
	BatchFunc           func([]Command) ([]*Response, error)
	BatchFuncCallCount  int
	BatchFuncCallParams []ConnBatchParamSet
	CloseFunc           func() error
	CloseFuncCallCount  int
	CloseFuncCallParams []ConnCloseParamSet
}
type ConnCloseParamSet struct{}
type ConnSendParamSet struct {
	Arg0 Command
}
type ConnBatchParamSet struct {
	Arg0 []Command
}

var _ Conn = NewMockConn()

func NewMockConn() *MockConn {
	m := &MockConn{}
	m.CloseFunc = m.defaultCloseFunc
	m.SendFunc = m.defaultSendFunc
	m.BatchFunc = m.defaultBatchFunc
	return m
}
func (m *MockConn) Close() error {
	m.CloseFuncCallCount++
	m.CloseFuncCallParams = append(m.CloseFuncCallParams, ConnCloseParamSet{})
	return m.CloseFunc()
}
func (m *MockConn) Send(v0 Command) (*Response, error) {
	m.SendFuncCallCount++
	m.SendFuncCallParams = append(m.SendFuncCallParams, ConnSendParamSet{v0})
	return m.SendFunc(v0)
}
func (m *MockConn) Batch(v0 []Command) ([]*Response, error) {
	m.BatchFuncCallCount++
	m.BatchFuncCallParams = append(m.BatchFuncCallParams, ConnBatchParamSet{v0})
	return m.BatchFunc(v0)
}
func (m *MockConn) defaultCloseFunc() error {
	return nil
}
func (m *MockConn) defaultSendFunc(v0 Command) (*Response, error) {
	return nil, nil
}
func (m *MockConn) defaultBatchFunc(v0 []Command) ([]*Response, error) {
	return nil, nil
}

type MockConnector struct {
	ConnectFunc           func() (Conn, error)
	ConnectFuncCallCount  int
	ConnectFuncCallParams []ConnectorConnectParamSet
	CloseFunc             func()
	CloseFuncCallCount    int
	CloseFuncCallParams   []ConnectorCloseParamSet
}
type ConnectorCloseParamSet struct{}
type ConnectorConnectParamSet struct{}

var _ Connector = NewMockConnector()

func NewMockConnector() *MockConnector {
	m := &MockConnector{}
	m.ConnectFunc = m.defaultConnectFunc
	m.CloseFunc = m.defaultCloseFunc
	return m
}
func (m *MockConnector) Connect() (Conn, error) {
	m.ConnectFuncCallCount++
	m.ConnectFuncCallParams = append(m.ConnectFuncCallParams, ConnectorConnectParamSet{})
	return m.ConnectFunc()
}
func (m *MockConnector) Close() {
	m.CloseFuncCallCount++
	m.CloseFuncCallParams = append(m.CloseFuncCallParams, ConnectorCloseParamSet{})
	m.CloseFunc()
}
func (m *MockConnector) defaultConnectFunc() (Conn, error) {
	return nil, nil
}
func (m *MockConnector) defaultCloseFunc() {
	return
}

type MockPool struct {
	BorrowTimeoutFunc           func(time.Duration) (Conn, bool)
	BorrowTimeoutFuncCallCount  int
	BorrowTimeoutFuncCallParams []PoolBorrowTimeoutParamSet
	CloseFunc                   func()
	CloseFuncCallCount          int
	CloseFuncCallParams         []PoolCloseParamSet
	ReleaseFunc                 func(Conn)
	ReleaseFuncCallCount        int
	ReleaseFuncCallParams       []PoolReleaseParamSet
	BorrowFunc                  func() (Conn, bool)
	BorrowFuncCallCount         int
	BorrowFuncCallParams        []PoolBorrowParamSet
}
type PoolBorrowParamSet struct{}
type PoolBorrowTimeoutParamSet struct {
	Arg0 time.Duration
}
type PoolCloseParamSet struct{}
type PoolReleaseParamSet struct {
	Arg0 Conn
}

var _ Pool = NewMockPool()

func NewMockPool() *MockPool {
	m := &MockPool{}
	m.ReleaseFunc = m.defaultReleaseFunc
	m.BorrowFunc = m.defaultBorrowFunc
	m.BorrowTimeoutFunc = m.defaultBorrowTimeoutFunc
	m.CloseFunc = m.defaultCloseFunc
	return m
}
func (m *MockPool) Borrow() (Conn, bool) {
	m.BorrowFuncCallCount++
	m.BorrowFuncCallParams = append(m.BorrowFuncCallParams, PoolBorrowParamSet{})
	return m.BorrowFunc()
}
func (m *MockPool) BorrowTimeout(v0 time.Duration) (Conn, bool) {
	m.BorrowTimeoutFuncCallCount++
	m.BorrowTimeoutFuncCallParams = append(m.BorrowTimeoutFuncCallParams, PoolBorrowTimeoutParamSet{v0})
	return m.BorrowTimeoutFunc(v0)
}
func (m *MockPool) Close() {
	m.CloseFuncCallCount++
	m.CloseFuncCallParams = append(m.CloseFuncCallParams, PoolCloseParamSet{})
	m.CloseFunc()
}
func (m *MockPool) Release(v0 Conn) {
	m.ReleaseFuncCallCount++
	m.ReleaseFuncCallParams = append(m.ReleaseFuncCallParams, PoolReleaseParamSet{v0})
	m.ReleaseFunc(v0)
}
func (m *MockPool) defaultBorrowFunc() (Conn, bool) {
	return nil, false
}
func (m *MockPool) defaultBorrowTimeoutFunc(v0 time.Duration) (Conn, bool) {
	return nil, false
}
func (m *MockPool) defaultCloseFunc() {
	return
}
func (m *MockPool) defaultReleaseFunc(v0 Conn) {
	return
}
