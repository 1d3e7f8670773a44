// Package zone implements the ordered card containers described in
// spec.md §3: every CardID in play is in exactly one zone at any
// observable point between moves.
package zone

import (
	"fmt"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/card"
)

// ID identifies a zone. It is a plain string, matching one of the forms
// named in spec.md §3: Draw, Discard, Hand_{seat}, Equip_{seat},
// Judge_{seat}, or ephemeral Temp_{purpose}_{seat}.
type ID string

// Well-known zone IDs.
const (
	Draw    ID = "Draw"
	Discard ID = "Discard"
)

// Hand returns the hand zone ID for a seat.
func Hand(seat int) ID { return ID(fmt.Sprintf("Hand_%d", seat)) }

// Equip returns the equipment zone ID for a seat.
func Equip(seat int) ID { return ID(fmt.Sprintf("Equip_%d", seat)) }

// Judge returns the judgement zone ID for a seat.
func Judge(seat int) ID { return ID(fmt.Sprintf("Judge_%d", seat)) }

// Temp returns an ephemeral zone ID, scoped to a purpose and a seat.
func Temp(purpose string, seat int) ID { return ID(fmt.Sprintf("Temp_%s_%d", purpose, seat)) }

// Ordering controls where a moved card lands in the target zone.
type Ordering int

// Orderings.
const (
	ToTop Ordering = iota
	ToBottom
)

// Zone is an ordered sequence of card IDs. Index 0 is always "next to
// draw" / "on top".
type Zone struct {
	id        ID
	ownerSeat int
	hasOwner  bool
	isPublic  bool
	cards     []card.ID
}

// New creates an empty zone.
func New(id ID, isPublic bool) *Zone {
	return &Zone{id: id, isPublic: isPublic}
}

// NewOwned creates an empty zone bound to a seat.
func NewOwned(id ID, ownerSeat int, isPublic bool) *Zone {
	return &Zone{id: id, ownerSeat: ownerSeat, hasOwner: true, isPublic: isPublic}
}

// ID returns the zone's identifier.
func (z *Zone) ID() ID { return z.id }

// OwnerSeat returns the owning seat and whether the zone has one.
func (z *Zone) OwnerSeat() (int, bool) { return z.ownerSeat, z.hasOwner }

// IsPublic reports whether the zone's contents are visible to all players.
func (z *Zone) IsPublic() bool { return z.isPublic }

// Len returns the number of cards currently in the zone.
func (z *Zone) Len() int { return len(z.cards) }

// Cards returns a copy of the zone's card IDs, top to bottom.
func (z *Zone) Cards() []card.ID {
	out := make([]card.ID, len(z.cards))
	copy(out, z.cards)
	return out
}

// Top returns the card nearest the draw position, if any.
func (z *Zone) Top() (card.ID, bool) {
	if len(z.cards) == 0 {
		return 0, false
	}
	return z.cards[0], true
}

// Contains reports whether id is currently in the zone.
func (z *Zone) Contains(id card.ID) bool {
	for _, c := range z.cards {
		if c == id {
			return true
		}
	}
	return false
}

// Remove deletes the given card IDs from the zone in the listed order,
// failing the whole operation if any is missing. It is the caller's
// responsibility (the card movement service) to make this atomic with the
// corresponding insert into the target zone.
func (z *Zone) Remove(ids []card.ID) (removed []card.ID, missing []card.ID) {
	remaining := make([]card.ID, len(z.cards))
	copy(remaining, z.cards)

	for _, id := range ids {
		idx := -1
		for i, c := range remaining {
			if c == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			missing = append(missing, id)
			continue
		}
		removed = append(removed, id)
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	if len(missing) > 0 {
		return nil, missing
	}
	z.cards = remaining
	return removed, nil
}

// Insert adds cards to the zone respecting the given ordering. ToTop
// inserts at index 0, preserving the input order; ToBottom appends at the
// end, preserving the input order.
func (z *Zone) Insert(ids []card.ID, ordering Ordering) {
	switch ordering {
	case ToTop:
		z.cards = append(append([]card.ID{}, ids...), z.cards...)
	case ToBottom:
		z.cards = append(z.cards, ids...)
	}
}

// Clear empties the zone and returns the cards that were in it.
func (z *Zone) Clear() []card.ID {
	out := z.cards
	z.cards = nil
	return out
}
