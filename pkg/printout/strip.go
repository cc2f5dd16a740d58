// SPDX-License-Identifier: MPL-2.0

package printout

import "github.com/charmbracelet/x/ansi"

// StripANSI removes every escape sequence from s, leaving the text a reader
// would see. It is meant for asserting on rendered output.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
