// Package cli provides the interactive registration/login menu.
//
// It wires configuration, the hasher, the user store and the message
// catalog into an App whose Run method loops over the three-item menu:
//
//	1) Register
//	2) Login
//	3) Exit
//
// Errors from a menu action are shown, localized, at the top of the next
// render; they never end the loop. The loop ends on Exit, on end of input
// or when the context is cancelled, and the store is written back to its
// backing file in every case.
package cli
