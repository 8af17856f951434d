// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// RotorDialHeight is the number of content lines in a single rotor dial
	RotorDialHeight = 5

	// RotorDialWidth is the inner width of a single rotor dial
	RotorDialWidth = 9

	// LampboardColumns is the number of lamps per row
	LampboardColumns = 7

	// PlugStripHeight is the height of the plugboard summary line
	PlugStripHeight = 1

	// MinTapeHeight is the smallest usable height of a tape panel's viewport
	MinTapeHeight = 2

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is the width used by the rotor settings and plugboard modals
	ModalWidthWide = 90

	// HelpModalMaxVisible is the number of rows the help list shows at once
	HelpModalMaxVisible = 16
)
