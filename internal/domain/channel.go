package domain

import (
	"fmt"
	"strings"
)

// Channel identifies one of the fixed conversion routes.
type Channel string

const (
	// ChannelNumberToWords converts an integer into English words.
	ChannelNumberToWords Channel = "number-to-words"

	// ChannelNumberToDollars converts a decimal amount into a dollars-and-cents phrase.
	ChannelNumberToDollars Channel = "number-to-dollars"
)

// Channels lists every supported channel in a stable order.
func Channels() []Channel {
	return []Channel{ChannelNumberToWords, ChannelNumberToDollars}
}

// Valid reports whether c is one of the supported channels.
func (c Channel) Valid() bool {
	return c == ChannelNumberToWords || c == ChannelNumberToDollars
}

func (c Channel) String() string {
	return string(c)
}

// ParseChannel resolves a channel from its full name or its short alias
// ("words", "dollars").
func ParseChannel(name string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "words", string(ChannelNumberToWords):
		return ChannelNumberToWords, nil
	case "dollars", string(ChannelNumberToDollars):
		return ChannelNumberToDollars, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
}
