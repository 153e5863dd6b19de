package bitvec

import (
	"encoding"
	"encoding/json"

	"github.com/spf13/pflag"
)

// SignMode selects how the bits of a Binary are interpreted.
type SignMode uint8

// The following are necessary for Cobra and Viper, respectively, to unmarshal sign mode
// CLI/config parameters properly.
var (
	_ pflag.Value              = (*SignMode)(nil)
	_ encoding.TextUnmarshaler = (*SignMode)(nil)
)

const (
	Unsigned SignMode = iota
	Signed
)

func (m SignMode) String() string {
	switch m {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	default:
		// Should not happen.
		panic(ErrInvalidSignMode)
	}
}

// ParseSignMode validates a textual sign mode.
func ParseSignMode(s string) (SignMode, error) {
	var m SignMode
	if err := m.Set(s); err != nil {
		return Unsigned, err
	}
	return m, nil
}

func (m *SignMode) Set(s string) error {
	switch s {
	case "UNSIGNED", "unsigned", "u":
		*m = Unsigned
	case "SIGNED", "signed", "s", "i":
		*m = Signed
	default:
		return ErrInvalidSignMode
	}
	return nil
}

func (m *SignMode) Type() string {
	return "SignMode"
}

func (m SignMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

func (m *SignMode) MarshalJSON() ([]byte, error) {
	return json.RawMessage(`"` + m.String() + `"`), nil
}

func (m *SignMode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}
