// Package vocab holds the static study content: the vocabulary word list and
// the per-unit question bank, plus the selection helpers the quiz and sprint
// game are built on.
package vocab

import "github.com/fun2learn/satvocab/internal/models"

// units is the graded question bank. Unit ids key UserRecord.UnitProgress.
var units = []models.Unit{
	{
		ID:    1,
		Title: "Unit 1",
		Questions: []models.Question{
			{
				ID:   1,
				Text: "Some fans feel that sports events are exciting only when the competitors are of equal ability, making the outcome of the game ______.",
				Options: []models.Option{
					{Label: "A", Text: "assured"},
					{Label: "B", Text: "questionable"},
					{Label: "C", Text: "foreseen"},
					{Label: "D", Text: "uncertain"},
				},
				Answer: "B",
			},
			{
				ID:   2,
				Text: "The consumer advocate claimed that while drug manufacturers tout the supposed advantages of their proprietary brands, generic versions of the same medications are often equally _______.",
				Options: []models.Option{
					{Label: "A", Text: "efficacious"},
					{Label: "B", Text: "innocuous"},
					{Label: "C", Text: "prohibitive"},
					{Label: "D", Text: "counterproductive"},
				},
				Answer: "A",
			},
			{
				ID:   3,
				Text: "The bearded dragon lizard is a voracious eater, so _____ that it will consume as many insects as possible.",
				Options: []models.Option{
					{Label: "A", Text: "cannibalistic"},
					{Label: "B", Text: "slovenly"},
					{Label: "C", Text: "insatiable"},
					{Label: "D", Text: "unpalatable"},
				},
				Answer: "C",
			},
			{
				ID:   4,
				Text: "Because drummer Tony Williams paved the way for later jazz-fusion musicians, he is considered a ______ of that style.",
				Options: []models.Option{
					{Label: "A", Text: "connoisseur"},
					{Label: "B", Text: "revivalist"},
					{Label: "C", Text: "beneficiary"},
					{Label: "D", Text: "progenitor"},
				},
				Answer: "D",
			},
			{
				ID:   5,
				Text: "The politician's speech to the crowd was composed of nothing but ________, a bitter railing against the party's opponents.",
				Options: []models.Option{
					{Label: "A", Text: "digressions"},
					{Label: "B", Text: "diatribes"},
					{Label: "C", Text: "platitudes"},
					{Label: "D", Text: "acclamations"},
				},
				Answer: "B",
			},
			{
				ID:   6,
				Text: "Favoring economy of expression in writing, the professor urged students toward a spare rather than an ______ prose style.",
				Options: []models.Option{
					{Label: "A", Text: "ornate"},
					{Label: "B", Text: "opinionated"},
					{Label: "C", Text: "academic"},
					{Label: "D", Text: "straightforward"},
				},
				Answer: "A",
			},
			{
				ID:   7,
				Text: "The new antifungal agent has such varied uses, from treating Dutch elm disease to rescuing water-damaged works of art from molds, that it is considered one of the more ____ antibiotics.",
				Options: []models.Option{
					{Label: "A", Text: "explicit"},
					{Label: "B", Text: "precipitous"},
					{Label: "C", Text: "versatile"},
					{Label: "D", Text: "discriminating"},
				},
				Answer: "C",
			},
			{
				ID:   8,
				Text: "Physical exercise often has a ______ effect, releasing emotional tension and refreshing the spirit.",
				Options: []models.Option{
					{Label: "A", Text: "pejorative"},
					{Label: "B", Text: "debilitating"},
					{Label: "C", Text: "cathartic"},
					{Label: "D", Text: "retentive"},
				},
				Answer: "C",
			},
			{
				ID:   9,
				Text: "Because rap and hip-hop offer such ______ commentary on contemporary issues, they are often said to be sharp-edged musical genres.",
				Options: []models.Option{
					{Label: "A", Text: "nebulous"},
					{Label: "B", Text: "trenchant"},
					{Label: "C", Text: "circumspect"},
					{Label: "D", Text: "prosaic"},
				},
				Answer: "B",
			},
			{
				ID:   10,
				Text: "As a child, Mary _____ her stringent upbringing; however, as she grew older she began to appreciate her grandmother's strict discipline.",
				Options: []models.Option{
					{Label: "A", Text: "condoned"},
					{Label: "B", Text: "despised"},
					{Label: "C", Text: "embraced"},
					{Label: "D", Text: "extolled"},
				},
				Answer: "B",
			},
		},
	},
	{
		ID:    2,
		Title: "Unit 2",
		Questions: []models.Question{
			{
				ID:   1,
				Text: "At first the children were _____, but as the morning progressed they began to laugh and talk eagerly.",
				Options: []models.Option{
					{Label: "A", Text: "ostentatious"},
					{Label: "B", Text: "myopic"},
					{Label: "C", Text: "solicitous"},
					{Label: "D", Text: "reticent"},
				},
				Answer: "D",
			},
			{
				ID:   2,
				Text: "Oren missed the play's overarching significance, focusing instead on details so minor that they would best be described as _______.",
				Options: []models.Option{
					{Label: "A", Text: "pragmatic"},
					{Label: "B", Text: "indelible"},
					{Label: "C", Text: "moribund"},
					{Label: "D", Text: "petty"},
				},
				Answer: "D",
			},
			{
				ID:   3,
				Text: "Her political success came from her ______ vision of the nation, a vision that included and drew strength from every social constituency.",
				Options: []models.Option{
					{Label: "A", Text: "mystical"},
					{Label: "B", Text: "restricted"},
					{Label: "C", Text: "conventional"},
					{Label: "D", Text: "comprehensive"},
				},
				Answer: "D",
			},
			{
				ID:   4,
				Text: "As one would expect, the reclusive poet _____ public appearances and invasions of privacy.",
				Options: []models.Option{
					{Label: "A", Text: "endorsed"},
					{Label: "B", Text: "neglected"},
					{Label: "C", Text: "invited"},
					{Label: "D", Text: "detested"},
				},
				Answer: "D",
			},
			{
				ID:   5,
				Text: "In the classroom, Carol was unusually ____; on the playground, however, she became as intractable as the other children.",
				Options: []models.Option{
					{Label: "A", Text: "optimistic"},
					{Label: "B", Text: "magnanimous"},
					{Label: "C", Text: "taciturn"},
					{Label: "D", Text: "docile"},
				},
				Answer: "C",
			},
			{
				ID:   6,
				Text: "Bubble gum is not a topic usually treated seriously, so it is appropriate that this new book tracing the cultural history of bubble gum has a _____ tone.",
				Options: []models.Option{
					{Label: "A", Text: "morbid"},
					{Label: "B", Text: "pedantic"},
					{Label: "C", Text: "flippant"},
					{Label: "D", Text: "reticent"},
				},
				Answer: "C",
			},
			{
				ID:   7,
				Text: "Jamake Highwater manages to touch on the arts of almost every American Indian nation in one reasonably sized book that makes up for its occasional lack of _____ with its remarkable inclusiveness.",
				Options: []models.Option{
					{Label: "A", Text: "loftiness"},
					{Label: "B", Text: "uniqueness"},
					{Label: "C", Text: "profundity"},
					{Label: "D", Text: "width"},
				},
				Answer: "C",
			},
			{
				ID:   8,
				Text: "Though Judd is typically ______ and reserved in social gatherings, at last night's reception he spoke and acted with uncharacteristic eloquence.",
				Options: []models.Option{
					{Label: "A", Text: "loquacious"},
					{Label: "B", Text: "diplomatic"},
					{Label: "C", Text: "diffident"},
					{Label: "D", Text: "disaffected"},
				},
				Answer: "C",
			},
			{
				ID:   9,
				Text: "Fanatically committed to one political cause, Anderson was a _______, maintaining an exclusively partisan outlook.",
				Options: []models.Option{
					{Label: "A", Text: "zealot"},
					{Label: "B", Text: "patriot"},
					{Label: "C", Text: "prodigal"},
					{Label: "D", Text: "recluse"},
				},
				Answer: "A",
			},
			{
				ID:   10,
				Text: "The author's theory about modern design had an enormous impact when first published, but as influential as it was then, it is now clearly _______.",
				Options: []models.Option{
					{Label: "A", Text: "erudite"},
					{Label: "B", Text: "impressive"},
					{Label: "C", Text: "outdated"},
					{Label: "D", Text: "masterful"},
				},
				Answer: "C",
			},
		},
	},
	{
		ID:    3,
		Title: "Unit 3",
		Questions: []models.Question{
			{
				ID:   1,
				Text: "Pablo Picasso was _____ youth: his extraordinary artistic talent was obvious at a very early age.",
				Options: []models.Option{
					{Label: "A", Text: "an articulate"},
					{Label: "B", Text: "an immature"},
					{Label: "C", Text: "a precocious"},
					{Label: "D", Text: "a callow"},
				},
				Answer: "C",
			},
			{
				ID:   2,
				Text: "Jared has the habits of _____: he lives simply and donates most of his income to local charities.",
				Options: []models.Option{
					{Label: "A", Text: "skeptic"},
					{Label: "B", Text: "dilettante"},
					{Label: "C", Text: "insurgent"},
					{Label: "D", Text: "ascetic"},
				},
				Answer: "D",
			},
			{
				ID:   3,
				Text: "The simple and direct images in Dorothea Lange's photographs provide _____ reflection of a bygone social milieu.",
				Options: []models.Option{
					{Label: "A", Text: "an intricate"},
					{Label: "B", Text: "a candid"},
					{Label: "C", Text: "an ostentatious"},
					{Label: "D", Text: "a fictional"},
				},
				Answer: "B",
			},
			{
				ID:   4,
				Text: "Kate's impulsive nature and sudden whims led her friends to label her ______.",
				Options: []models.Option{
					{Label: "A", Text: "capricious"},
					{Label: "B", Text: "loquacious"},
					{Label: "C", Text: "dispassionate"},
					{Label: "D", Text: "decorous"},
				},
				Answer: "A",
			},
			{
				ID:   5,
				Text: "Neurosurgeon Alexa Canady maintained that choosing a career was a visceral decision rather than _______ judgment; that is, it was not so much rational as instinctive.",
				Options: []models.Option{
					{Label: "A", Text: "an emotional"},
					{Label: "B", Text: "a chance"},
					{Label: "C", Text: "an intuitive"},
					{Label: "D", Text: "a deliberate"},
				},
				Answer: "D",
			},
		},
	},
}

// Units returns every unit in id order. Callers must not modify the result.
func Units() []models.Unit {
	return units
}

// FindUnit returns the unit with the given id.
func FindUnit(id int) (models.Unit, bool) {
	for _, u := range units {
		if u.ID == id {
			return u, true
		}
	}
	return models.Unit{}, false
}
