package game

import "errors"

// ErrEmptyTaskText rejects task creation with empty or whitespace-only text.
var ErrEmptyTaskText = errors.New("task text is required")

// ErrPetSleeping rejects task completion while the pet is hibernating.
// Deleting tasks is always allowed; only completion is gated.
var ErrPetSleeping = errors.New("pet is sleeping")
