package game_constants

// Category values the catalog buckets by. Games outside this set still show
// up in listings but are not counted in any category bucket.
const (
	CategoryEscape    = "escape"
	CategoryAdventure = "adventure"
	CategoryPuzzle    = "puzzle"
	CategoryHorror    = "horror"
	CategoryTeam      = "team"
)

// Categories in display order.
var Categories = []string{
	CategoryEscape,
	CategoryAdventure,
	CategoryPuzzle,
	CategoryHorror,
	CategoryTeam,
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

const (
	StatusAvailableNow   = "available_now"
	StatusPreReservation = "pre_reservation"
)

// FilterAll is the no-op value for category/difficulty/status filters.
const FilterAll = "all"

const (
	MinPlayers     = 1
	DefaultPlayers = 2
	OTPLength      = 6
)
