package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/logging"
)

// DefaultNavigationEpsilon is the minimum center offset, in pixels, for a
// pane to count as lying in the requested direction.
const DefaultNavigationEpsilon = 1.0

// Direction is a navigation vector with exactly one non-zero axis.
type Direction struct {
	DX, DY int
}

var (
	NavLeft  = Direction{DX: -1}
	NavRight = Direction{DX: 1}
	NavUp    = Direction{DY: -1}
	NavDown  = Direction{DY: 1}
)

// ParseDirection maps "left", "right", "up" or "down" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return NavLeft, nil
	case "right":
		return NavRight, nil
	case "up":
		return NavUp, nil
	case "down":
		return NavDown, nil
	default:
		return Direction{}, fmt.Errorf("unknown direction %q", s)
	}
}

func (d Direction) String() string {
	switch d {
	case NavLeft:
		return "left"
	case NavRight:
		return "right"
	case NavUp:
		return "up"
	case NavDown:
		return "down"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// NavigateFocusUseCase picks the pane to focus when moving in a direction,
// using the on-screen geometry of the tab's panes.
type NavigateFocusUseCase struct {
	geometry port.Geometry
	epsilon  float64
}

// NewNavigateFocusUseCase creates a navigation use case. A non-positive
// epsilon selects DefaultNavigationEpsilon.
func NewNavigateFocusUseCase(geometry port.Geometry, epsilon float64) *NavigateFocusUseCase {
	if epsilon <= 0 {
		epsilon = DefaultNavigationEpsilon
	}
	return &NavigateFocusUseCase{geometry: geometry, epsilon: epsilon}
}

// SetEpsilon replaces the minimum center offset, as after a config reload.
// A non-positive value selects DefaultNavigationEpsilon.
func (uc *NavigateFocusUseCase) SetEpsilon(epsilon float64) {
	if epsilon <= 0 {
		epsilon = DefaultNavigationEpsilon
	}
	uc.epsilon = epsilon
}

// NavigateFocusInput contains parameters for directional navigation.
type NavigateFocusInput struct {
	Tab       *entity.Tab
	From      *entity.Pane
	Direction Direction
}

// Execute returns the pane nearest to From in the given direction, or nil
// when there is none. Candidates are panes whose center lies beyond epsilon
// on the direction's side; the nearest center by squared distance wins, and
// ties go to the first pane in traversal order.
func (uc *NavigateFocusUseCase) Execute(ctx context.Context, input NavigateFocusInput) *entity.Pane {
	log := logging.FromContext(ctx)
	if input.Tab == nil || input.From == nil || uc.geometry == nil {
		return nil
	}
	if (input.Direction.DX == 0) == (input.Direction.DY == 0) {
		log.Debug().Str("direction", input.Direction.String()).Msg("invalid navigation direction")
		return nil
	}

	activeRect, ok := uc.geometry.Bounds(input.From)
	if !ok || activeRect.Empty() {
		log.Debug().Msg("navigation skipped: active pane not laid out")
		return nil
	}
	ax, ay := activeRect.Center()

	var (
		best     *entity.Pane
		bestDist = math.MaxFloat64
	)
	for _, p := range input.Tab.Panes() {
		if p == input.From {
			continue
		}
		r, ok := uc.geometry.Bounds(p)
		if !ok || r.Empty() {
			continue
		}
		cx, cy := r.Center()
		relX, relY := cx-ax, cy-ay

		if !uc.inDirection(relX, relY, input.Direction) {
			continue
		}

		dist := relX*relX + relY*relY
		if dist < bestDist {
			bestDist = dist
			best = p
		}
	}

	if best == nil {
		log.Debug().Str("direction", input.Direction.String()).Msg("no pane in direction")
		return nil
	}

	log.Debug().
		Str("from", string(input.From.ID)).
		Str("to", string(best.ID)).
		Str("direction", input.Direction.String()).
		Msg("navigation target found")
	return best
}

func (uc *NavigateFocusUseCase) inDirection(relX, relY float64, d Direction) bool {
	switch {
	case d.DX > 0:
		return relX > uc.epsilon
	case d.DX < 0:
		return relX < -uc.epsilon
	case d.DY > 0:
		return relY > uc.epsilon
	case d.DY < 0:
		return relY < -uc.epsilon
	default:
		return false
	}
}
