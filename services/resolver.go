package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// Resolver turns one chat utterance plus conversation memory into a query
// against the hotel store and a natural-language reply. Each parameter goes
// through the same ordered pipeline: structured entity, then keyword
// lexicon, then stored slot; whatever is still missing stays unresolved.
//
// The city intent redirects once to the capacity intent when no city can be
// resolved but the utterance carries capacity hints; the capacity intent
// never redirects back. Party size is informational only: it picks a
// suggested room-type label and is echoed, it does not filter rooms.
type Resolver struct {
	hotels HotelSearcher
	slots  SlotStore
}

func NewResolver(hotels HotelSearcher, slots SlotStore) *Resolver {
	return &Resolver{hotels: hotels, slots: slots}
}

// paramSource records which pipeline layer produced a value; the intent
// choice depends on whether a value came from the current utterance or only
// from memory.
type paramSource int

const (
	sourceNone paramSource = iota
	sourceEntity
	sourceKeyword
	sourceSlot
)

type turnParams struct {
	city        string
	citySource  paramSource
	price       *float64
	priceSource paramSource
	partySize   int
	partySrc    paramSource
}

// resolveParams runs the entity → keyword → slot pipeline for every
// parameter of the turn.
func resolveParams(entities []Entity, text string, slots Slots) turnParams {
	var p turnParams

	type strategy struct {
		source paramSource
		apply  func(p *turnParams) bool
	}

	cityStrategies := []strategy{
		{sourceEntity, func(p *turnParams) bool {
			for _, e := range entities {
				if e.Kind == EntityCity && strings.TrimSpace(e.Value) != "" {
					p.city = capitalize(strings.ToLower(strings.TrimSpace(e.Value)))
					return true
				}
			}
			return false
		}},
		{sourceKeyword, func(p *turnParams) bool {
			city, ok := cityFromText(text)
			p.city = city
			return ok
		}},
		{sourceSlot, func(p *turnParams) bool {
			p.city = slots.City
			return slots.City != ""
		}},
	}

	priceStrategies := []strategy{
		{sourceEntity, func(p *turnParams) bool {
			for _, e := range entities {
				if e.Kind == EntityPrice {
					if v, err := strconv.ParseFloat(strings.TrimSpace(e.Value), 64); err == nil {
						p.price = &v
						return true
					}
				}
			}
			return false
		}},
		{sourceKeyword, func(p *turnParams) bool {
			if v, ok := priceFromText(text); ok {
				p.price = &v
				return true
			}
			return false
		}},
		{sourceSlot, func(p *turnParams) bool {
			p.price = slots.MaxPrice
			return slots.MaxPrice != nil
		}},
	}

	partyStrategies := []strategy{
		{sourceEntity, func(p *turnParams) bool {
			for _, e := range entities {
				if e.Kind == EntityPartySize {
					if n, err := strconv.Atoi(strings.TrimSpace(e.Value)); err == nil && n > 0 {
						p.partySize = n
						return true
					}
				}
			}
			return false
		}},
		{sourceKeyword, func(p *turnParams) bool {
			if n, ok := partySizeFromText(text); ok {
				p.partySize = n
				return true
			}
			return false
		}},
		{sourceSlot, func(p *turnParams) bool {
			p.partySize = slots.PartySize
			return slots.PartySize > 0
		}},
	}

	for _, s := range cityStrategies {
		if s.apply(&p) {
			p.citySource = s.source
			break
		}
	}
	for _, s := range priceStrategies {
		if s.apply(&p) {
			p.priceSource = s.source
			break
		}
	}
	for _, s := range partyStrategies {
		if s.apply(&p) {
			p.partySrc = s.source
			break
		}
	}

	return p
}

// HandleTurn produces the single reply for one utterance. A store failure
// comes back as a generic apology in the reply plus the underlying error for
// the caller to log; the user never sees a raw error.
func (r *Resolver) HandleTurn(senderID, message string, entities []Entity) (string, error) {
	slots, err := r.slots.Get(senderID)
	if err != nil {
		return replyStoreFailure, fmt.Errorf("slot load for %q: %w", senderID, err)
	}

	text := strings.ToLower(message)
	p := resolveParams(entities, text, slots)

	switch {
	case p.city != "":
		return r.citySearch(senderID, p)

	case p.price != nil && p.priceSource != sourceSlot:
		// Price mentioned in this utterance but no city: price-only search.
		return r.priceSearch(senderID, p)

	case p.partySize > 0 || hasCapacitySignal(text):
		// One-shot redirect: the capacity handler has no path back here.
		return r.capacityIntent(senderID, p)

	default:
		// Remember anything that did resolve before asking for the city.
		slots.MaxPrice = p.price
		if p.partySize > 0 {
			slots.PartySize = p.partySize
		}
		if err := r.slots.Put(senderID, slots); err != nil {
			log.Printf("resolver: keeping slots for %q failed: %v", senderID, err)
		}
		return replyAskCity, nil
	}
}

func (r *Resolver) citySearch(senderID string, p turnParams) (string, error) {
	hotels, err := r.hotels.Search(p.city, p.price, false)
	if err != nil {
		return replyStoreFailure, fmt.Errorf("city search: %w", err)
	}

	reply := formatHotelList(hotels, p.city, p.price)
	if err := r.clearSlots(senderID, func(s *Slots) {
		s.City = ""
		s.MaxPrice = nil
	}); err != nil {
		log.Printf("resolver: clearing slots for %q failed: %v", senderID, err)
	}
	return reply, nil
}

func (r *Resolver) priceSearch(senderID string, p turnParams) (string, error) {
	hotels, err := r.hotels.Search("", p.price, true)
	if err != nil {
		return replyStoreFailure, fmt.Errorf("price search: %w", err)
	}

	reply := formatHotelList(hotels, "", p.price)
	if err := r.clearSlots(senderID, func(s *Slots) {
		s.MaxPrice = nil
	}); err != nil {
		log.Printf("resolver: clearing slots for %q failed: %v", senderID, err)
	}
	return reply, nil
}

func (r *Resolver) capacityIntent(senderID string, p turnParams) (string, error) {
	if p.partySize == 0 {
		return replyAskPartySize, nil
	}

	reply := fmt.Sprintf("For %d %s I would recommend a %s. In which city should I look for hotels?",
		p.partySize, pluralPeople(p.partySize), roomTypeLabel(p.partySize))

	if err := r.clearSlots(senderID, func(s *Slots) {
		s.PartySize = 0
	}); err != nil {
		log.Printf("resolver: clearing slots for %q failed: %v", senderID, err)
	}
	return reply, nil
}

func (r *Resolver) clearSlots(senderID string, clear func(*Slots)) error {
	slots, err := r.slots.Get(senderID)
	if err != nil {
		return err
	}
	clear(&slots)
	return r.slots.Put(senderID, slots)
}

const (
	replyAskCity = "In which city would you like to find a hotel? (for example: Paris, Lyon, Nice...)"

	replyAskPartySize = "For how many people do you need a room?"

	replyStoreFailure = "Sorry, something went wrong while searching for hotels. Please try again in a moment."
)

// formatHotelList renders the reply for a search result. Lines follow the
// "name (N⭐): P€" shape; an empty result states which criteria applied.
func formatHotelList(hotels []HotelWithPrice, city string, maxPrice *float64) string {
	criteria := describeCriteria(city, maxPrice)

	if len(hotels) == 0 {
		return fmt.Sprintf("Sorry, no hotel matches your search%s.", criteria)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the hotels available%s:\n", criteria)
	for _, h := range hotels {
		fmt.Fprintf(&b, "- %s (%d⭐): %s€\n", h.Name, h.Stars, formatPrice(h.AvgPrice))
	}
	return strings.TrimRight(b.String(), "\n")
}

func describeCriteria(city string, maxPrice *float64) string {
	var parts []string
	if city != "" {
		parts = append(parts, fmt.Sprintf(" in %s", city))
	}
	if maxPrice != nil {
		parts = append(parts, fmt.Sprintf(" under %s€", formatPrice(*maxPrice)))
	}
	return strings.Join(parts, "")
}

func pluralPeople(n int) string {
	if n == 1 {
		return "person"
	}
	return "people"
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
