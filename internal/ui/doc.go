// Package ui provides the user interface components for the Enigma TUI.
//
// # Overview
//
// The ui package implements the visual components using the Bubble Tea
// framework and the Lipgloss styling library. Components hold only display
// state; the app package feeds them from a session.Session after every event.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line): title, rotor order, plug count     │
//	├─────────────────────────────────────────────────────┤
//	│          ┌──────┐  ┌──────┐  ┌──────┐               │
//	│          │ Left │  │Middle│  │Right │  Rotor dials  │
//	│          └──────┘  └──────┘  └──────┘               │
//	│                  Lampboard (26 lamps)               │
//	│                  Plug strip (1 line)                │
//	├──────────────────────────┬──────────────────────────┤
//	│   Plaintext tape         │   Ciphertext tape        │
//	├──────────────────────────┴──────────────────────────┤
//	│ Footer (1 line): bindings or flash message          │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// Header: Title plus the rotor order and plug count over a gradient
// background that fades from the theme's primary color.
//
// RotorPanel: One dial per rotor showing its type, its neighbors and the
// current letter, with markers for locked rotors and rotors at their notch.
//
// Lampboard: Lights the last cipher letter for a short time after a key.
//
// PlugStrip: The connected pairs in their assigned colors and "n/10".
//
// Tape: Scrollable, hard-wrapped plaintext or ciphertext.
//
// Footer: Context-aware key bindings, replaced by a flash message while one
// is active.
//
// Modal: Hosts a modals.ModalState (rotor settings, plugboard, help).
//
// # Styles
//
// Styles live in styles.go and are regenerated from the active Theme by
// SetTheme, which also pushes the palette into the modals package.
package ui
