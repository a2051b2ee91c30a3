package cmdtest

import (
	"github.com/stretchr/testify/mock"

	"github.com/puppetlabs/dateto/munge"
)

// MockConverter mocks a cmdutil.Converter
type MockConverter struct {
	mock.Mock
}

// Convert mocks Converter#Convert
func (c *MockConverter) Convert(v munge.Value, target munge.Target) (munge.Value, error) {
	args := c.Called(v, target)
	return args.Get(0).(munge.Value), args.Error(1)
}
