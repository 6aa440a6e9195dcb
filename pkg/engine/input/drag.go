package input

import "math"

// DragCode translates a pointer position into a drag code relative to the
// center of the player's cell. A code is produced only once the displacement
// along either axis exceeds one cell; the larger of |dx| and |dy| picks the
// axis (ties go vertical) and its sign picks the direction. Screen y grows
// downwards. ok is false while the pointer is still within range.
//
// Moving the player moves the reference center, so a continuous drag yields at
// most one step per cell of displacement.
func DragCode(pointerX, pointerY, centerX, centerY, cellSize float64) (code string, ok bool) {
	dx := pointerX - centerX
	dy := pointerY - centerY
	absDx := math.Abs(dx)
	absDy := math.Abs(dy)

	if absDx <= cellSize && absDy <= cellSize {
		return "", false
	}

	if absDx > absDy {
		if dx > 0 {
			return "drag_right", true
		}
		return "drag_left", true
	}

	if dy > 0 {
		return "drag_down", true
	}
	return "drag_up", true
}

// DragIntent maps a pointer position straight to an Intent using DragCode
func DragIntent(pointerX, pointerY, centerX, centerY, cellSize float64) Intent {
	code, ok := DragCode(pointerX, pointerY, centerX, centerY, cellSize)
	if !ok {
		return Intent{Action: ActionNone}
	}
	return MapToIntent(DebouncedInput{Device: DevicePointer, Code: code})
}
