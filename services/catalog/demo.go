package catalog

import (
	game_constants "questbook/constants/game"
	"questbook/models"
)

// demoGames is the built-in sample catalog served when DEMO_FALLBACK is on
// and the API is unreachable. Strictly for local development and demos.
func demoGames(lang string) []models.Game {
	type text struct{ title, description string }
	texts := map[string][2]text{
		"en": {
			{"Prison Escape", "A thrilling escape room experience. Use logic and teamwork to break free!"},
			{"Zombie Apocalypse", "Survive the zombie world! Find the cure and save humanity."},
		},
		"es": {
			{"Escape de la Prisión", "Una emocionante experiencia de escape. ¡Usa la lógica y el trabajo en equipo para liberarte!"},
			{"Apocalipsis Zombi", "¡Sobrevive al mundo zombi! Encuentra la cura y salva a la humanidad."},
		},
		"uk": {
			{"Втеча з В'язниці", "Захопливий досвід кімнати втечі. Використовуйте логіку та командну роботу!"},
			{"Зомбі Апокаліпсис", "Виживіть у світі зомбі! Знайдіть ліки та врятуйте людство."},
		},
	}

	t, ok := texts[lang]
	if !ok {
		t = texts["en"]
	}

	return []models.Game{
		{
			ID:                1,
			Title:             t[0].title,
			Description:       t[0].description,
			Category:          game_constants.CategoryEscape,
			Difficulty:        game_constants.DifficultyMedium,
			Status:            game_constants.StatusAvailableNow,
			Image:             "/images/prison-escape.jpg",
			Price:             25.00,
			MaxPlayers:        6,
			Duration:          60,
			WorkingHoursStart: "10:00",
			WorkingHoursEnd:   "22:00",
			IsFeatured:        true,
			IsActive:          true,
		},
		{
			ID:                2,
			Title:             t[1].title,
			Description:       t[1].description,
			Category:          game_constants.CategoryHorror,
			Difficulty:        game_constants.DifficultyHard,
			Status:            game_constants.StatusAvailableNow,
			Image:             "/images/zombie-apocalypse.jpg",
			Price:             30.00,
			MaxPlayers:        8,
			Duration:          90,
			WorkingHoursStart: "12:00",
			WorkingHoursEnd:   "23:00",
			IsFeatured:        true,
			IsActive:          true,
		},
	}
}
