package cmdutil

import (
	"github.com/puppetlabs/dateto/munge"
)

// Converter converts date values. munge.Converter implements it.
type Converter interface {
	Convert(v munge.Value, target munge.Target) (munge.Value, error)
}

// NewConverter returns the Converter used by the subcommands.
// Tests can set NewConverter to a stub that returns a mock converter.
var NewConverter = func() (Converter, error) {
	p, err := munge.NewParser(munge.DefaultParserSettings)
	if err != nil {
		return nil, err
	}
	return munge.NewConverter(p), nil
}
