// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes operating system names and the host shell
// used to run commands natively.
package platform
