package monitorid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func utf16Padded(s string, n int) []uint16 {
	buf := make([]uint16, n)
	for i, c := range s {
		buf[i] = uint16(c)
	}
	return buf
}

func TestDecodeString(t *testing.T) {
	require.Equal(t, "DEL", decodeString(utf16Padded("DEL", 16)))
	require.Equal(t, "DELL U2720Q", decodeString(utf16Padded("DELL U2720Q ", 13)))
	require.Equal(t, "", decodeString(nil))
	require.Equal(t, "AB", decodeString([]uint16{'A', 'B', 0, 'C'}))
}

func TestIdentityString(t *testing.T) {
	id := Identity{
		InstanceName: `DISPLAY\DELA0F4\5&1a2b3c&0&UID4353_0`,
		Manufacturer: "DEL",
		ProductCode:  "A0F4",
		Serial:       "ABC123",
		FriendlyName: "DELL U2720Q",
		Active:       true,
	}
	require.Equal(t, `DELL U2720Q, serial ABC123 (active) [DISPLAY\DELA0F4\5&1a2b3c&0&UID4353_0]`, id.String())

	id.FriendlyName = ""
	id.Serial = ""
	id.Active = false
	require.Equal(t, `DEL A0F4 (inactive) [DISPLAY\DELA0F4\5&1a2b3c&0&UID4353_0]`, id.String())
}
