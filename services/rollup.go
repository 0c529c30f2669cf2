package services

import (
	"fmt"
	"strings"

	"xplore-backend/models"
)

// BedLine is a RoomAssignment with its bed type resolved, the shape both
// the editor and the public page consume.
type BedLine struct {
	ID          uint   `json:"id"`
	BedTypeID   uint   `json:"bedTypeId"`
	BedTypeName string `json:"bedTypeName"`
	SleepsCount int    `json:"sleepsCount"`
	Quantity    int    `json:"quantity"`
}

// SpaceView is a Space with its type resolved and its bed lines attached.
// Capacity and Label are filled by the projector helpers, never stored.
type SpaceView struct {
	ID            uint      `json:"id"`
	SpaceTypeID   uint      `json:"spaceTypeId"`
	SpaceTypeName string    `json:"spaceTypeName"`
	SpaceTypeIcon string    `json:"spaceTypeIcon"`
	CustomName    *string   `json:"customName"`
	DisplayOrder  int       `json:"displayOrder"`
	PhotoURL      string    `json:"photoUrl"`
	Beds          []BedLine `json:"beds"`
	Capacity      int       `json:"capacity"`
	Label         string    `json:"label"`
}

type RoomsSummaryEntry struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
	Icon  string `json:"icon"`
}

type Rollup struct {
	TotalBeds     int                 `json:"totalBeds"`
	TotalCapacity int                 `json:"totalCapacity"`
	RoomsSummary  []RoomsSummaryEntry `json:"roomsSummary"`
}

// BuildRollup derives the bed-count/capacity figures for one property from
// its spaces in display order. This is the single shared implementation:
// the public detail endpoint, the booking header and the admin editor all
// call it — the arithmetic must never be re-derived per view.
//
// Spaces without a single bed line are excluded from RoomsSummary (they
// contribute zero to the totals either way). Summary entries keep
// first-encounter order over the display-order scan; no alphabetical
// resort. Bed lines whose bed type no longer resolves are skipped.
func BuildRollup(spaces []SpaceView) Rollup {
	rollup := Rollup{RoomsSummary: []RoomsSummaryEntry{}}
	seen := map[string]int{} // space type name -> index into RoomsSummary

	for _, sp := range spaces {
		capacity := SpaceCapacity(sp.Beds)
		beds := 0
		for _, line := range sp.Beds {
			if line.BedTypeName == "" {
				continue
			}
			beds += line.Quantity
		}
		if beds == 0 {
			continue
		}

		rollup.TotalBeds += beds
		rollup.TotalCapacity += capacity

		if idx, ok := seen[sp.SpaceTypeName]; ok {
			rollup.RoomsSummary[idx].Total++
		} else {
			seen[sp.SpaceTypeName] = len(rollup.RoomsSummary)
			icon := sp.SpaceTypeIcon
			if icon == "" {
				icon = IconForSpaceType(sp.SpaceTypeName)
			}
			rollup.RoomsSummary = append(rollup.RoomsSummary, RoomsSummaryEntry{
				Name:  sp.SpaceTypeName,
				Total: 1,
				Icon:  icon,
			})
		}
	}

	return rollup
}

// SpaceCapacity is the live badge shown next to each space in the editor.
func SpaceCapacity(beds []BedLine) int {
	total := 0
	for _, line := range beds {
		if line.BedTypeName == "" {
			continue
		}
		total += line.Quantity * line.SleepsCount
	}
	return total
}

// LabelFor computes the display name of a space from the live ordered
// sibling list: the custom name when set, otherwise "{type} {index+1}"
// using the space's position among its siblings. The label is a view-level
// value — persisting it would go stale on every reorder or delete.
func LabelFor(space SpaceView, orderedSiblings []SpaceView) string {
	if space.CustomName != nil && strings.TrimSpace(*space.CustomName) != "" {
		return *space.CustomName
	}
	for i, sib := range orderedSiblings {
		if sib.ID == space.ID {
			return fmt.Sprintf("%s %d", space.SpaceTypeName, i+1)
		}
	}
	return space.SpaceTypeName
}

// IconForSpaceType is the fallback used when the catalog entry carries no
// icon slug.
func IconForSpaceType(name string) string {
	switch strings.ToLower(name) {
	case "quarto", "bedroom", "suíte", "suite":
		return "bed"
	case "sala de estar", "sala", "living room":
		return "sofa"
	case "cozinha", "kitchen":
		return "utensils"
	case "banheiro", "bathroom":
		return "bath"
	case "varanda", "balcony":
		return "sun"
	default:
		return "home"
	}
}

// NewSpaceView resolves one Space row plus its preloaded assignments into
// the shared view shape. Label stays empty until FillLabels runs over the
// whole ordered list.
func NewSpaceView(space models.Space, beds []models.RoomAssignment) SpaceView {
	lines := make([]BedLine, 0, len(beds))
	for _, b := range beds {
		lines = append(lines, BedLine{
			ID:          b.ID,
			BedTypeID:   b.BedTypeID,
			BedTypeName: b.BedType.Name,
			SleepsCount: b.BedType.SleepsCount,
			Quantity:    b.Quantity,
		})
	}
	view := SpaceView{
		ID:            space.ID,
		SpaceTypeID:   space.SpaceTypeID,
		SpaceTypeName: space.SpaceType.Name,
		SpaceTypeIcon: space.SpaceType.Icon,
		CustomName:    space.CustomName,
		DisplayOrder:  space.DisplayOrder,
		PhotoURL:      space.PhotoURL,
		Beds:          lines,
	}
	view.Capacity = SpaceCapacity(lines)
	return view
}

// FillLabels recomputes every label in place; call after any mutation that
// changes order or membership.
func FillLabels(spaces []SpaceView) {
	for i := range spaces {
		spaces[i].Label = LabelFor(spaces[i], spaces)
	}
}
