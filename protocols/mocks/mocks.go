// Package mocks holds testify mocks of the handler interfaces.
package mocks

import (
	"net"

	"github.com/stretchr/testify/mock"
)

type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, fields ...any) { m.Called(msg) }
func (m *MockLogger) Info(msg string, fields ...any)  { m.Called(msg) }
func (m *MockLogger) Warn(msg string, fields ...any)  { m.Called(msg) }
func (m *MockLogger) Error(msg string, fields ...any) { m.Called(msg) }

type MockConsole struct {
	mock.Mock
}

func (m *MockConsole) Listening(protocol, endpoint string) {
	m.Called(protocol, endpoint)
}

func (m *MockConsole) Accepted(ip net.IP, port int, protocol string) {
	m.Called(ip.String(), port, protocol)
}

func (m *MockConsole) Error(component string, err error) {
	m.Called(component, err)
}
