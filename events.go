package touchline

// EventKind identifies a kind of engine event.
type EventKind uint8

const (
	EventPickup        EventKind = iota // a list press activated into a drag
	EventReorder                        // a list drop committed
	EventDragCancel                     // an active list drag was abandoned
	EventItemTap                        // a list press ended before activating
	EventPlaceStart                     // a chip was picked up on the board
	EventPlaceEnd                       // a chip placement committed
	EventPlaceCancel                    // a chip placement reverted
	EventChipDoubleTap                  // a chip was tapped twice in quick succession
)

// String returns a short name for the event kind, for logs and replays.
func (k EventKind) String() string {
	switch k {
	case EventPickup:
		return "pickup"
	case EventReorder:
		return "reorder"
	case EventDragCancel:
		return "drag-cancel"
	case EventItemTap:
		return "item-tap"
	case EventPlaceStart:
		return "place-start"
	case EventPlaceEnd:
		return "place-end"
	case EventPlaceCancel:
		return "place-cancel"
	case EventChipDoubleTap:
		return "chip-double-tap"
	default:
		return "unknown"
	}
}

// EventSink receives every notable engine transition. Install one with
// SetEventSink to feed replays, analytics, or an ECS world.
type EventSink interface {
	Record(event Event)
}

// Event carries the data of one engine transition. Fields beyond Kind,
// ItemID, and Pointer are populated only where they apply.
type Event struct {
	Kind    EventKind
	ItemID  string
	Pointer int
	X       float64 // screen position of the triggering pointer event
	Y       float64
	// List fields (valid for EventPickup and EventReorder)
	FromIndex int
	ToIndex   int
	// Board fields (valid for the EventPlace* kinds and EventChipDoubleTap)
	BoardX float64 // board-percent position
	BoardY float64
	// Cancel fields (valid for EventDragCancel and EventPlaceCancel)
	Reason CancelReason
}
