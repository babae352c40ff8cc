package chip8

// Pixel is the new value of one display cell.
type Pixel struct {
	X, Y  uint8
	Value uint8 // 0 or 1
}

// DefaultDisplayDepth is the number of batches buffered for the consumer.
const DefaultDisplayDepth = 64

// Display carries batches of changed pixels from the engine to a consumer.
// Sends never block: when the consumer falls behind, batches are merged into
// a backlog that is delivered as soon as the channel has room.
type Display struct {
	updates chan []Pixel
	backlog []Pixel
}

func NewDisplay(depth int) *Display {
	if depth < 1 {
		depth = DefaultDisplayDepth
	}
	return &Display{
		updates: make(chan []Pixel, depth),
	}
}

// Updates returns the channel consumers read batches from. Pixels of a
// later batch supersede those of an earlier one.
func (d *Display) Updates() <-chan []Pixel {
	return d.updates
}

// Pending returns the number of pixels waiting for room in the channel.
func (d *Display) Pending() int {
	return len(d.backlog)
}

func (d *Display) send(batch []Pixel) {
	if len(batch) == 0 {
		return
	}
	if len(d.backlog) > 0 {
		d.backlog = append(d.backlog, batch...)
		d.Flush()
		return
	}
	select {
	case d.updates <- batch:
	default:
		d.backlog = append(d.backlog, batch...)
	}
}

// Flush retries delivery of the backlog. Only the engine goroutine calls it.
func (d *Display) Flush() {
	if len(d.backlog) == 0 {
		return
	}
	select {
	case d.updates <- d.backlog:
		d.backlog = nil
	default:
	}
}
