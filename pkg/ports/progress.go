package ports

// Progress is a live indicator of packet processing. Tick is called
// once per packet visited, including packets from unselected streams.
type Progress interface {
	// Tick advances the indicator by one packet.
	Tick()

	// Finish replaces the indicator with a completion message.
	Finish()
}
