package vocab

import "github.com/fun2learn/satvocab/internal/models"

// wordList is the flashcard and sprint-game vocabulary. Words double as the
// identifiers stored in UserRecord.SavedWords.
var wordList = []models.WordItem{
	{Word: "arcane", Meaning: "Known or understood by only a few; mysterious or obscure."},
	{Word: "ascetic", Meaning: "A person who practices severe self-discipline and abstains from indulgence."},
	{Word: "belie", Meaning: "To give a false impression of; to contradict."},
	{Word: "candid", Meaning: "Truthful and straightforward; frank."},
	{Word: "capricious", Meaning: "Given to sudden changes of mood or behavior; impulsive."},
	{Word: "cathartic", Meaning: "Providing relief through the release of strong emotions."},
	{Word: "circumspect", Meaning: "Wary and unwilling to take risks; cautious."},
	{Word: "diatribe", Meaning: "A bitter, abusive attack in speech or writing."},
	{Word: "diffident", Meaning: "Modest or shy because of a lack of self-confidence."},
	{Word: "docile", Meaning: "Ready to accept control or instruction; submissive."},
	{Word: "efficacious", Meaning: "Effective; producing the intended result."},
	{Word: "erudite", Meaning: "Having or showing great knowledge or learning."},
	{Word: "flippant", Meaning: "Not showing proper seriousness; glib."},
	{Word: "innocuous", Meaning: "Not harmful or offensive."},
	{Word: "insatiable", Meaning: "Impossible to satisfy."},
	{Word: "loquacious", Meaning: "Tending to talk a great deal; garrulous."},
	{Word: "nebulous", Meaning: "Unclear, vague, or ill-defined."},
	{Word: "ornate", Meaning: "Elaborately or excessively decorated."},
	{Word: "precocious", Meaning: "Having developed abilities at an earlier age than usual."},
	{Word: "progenitor", Meaning: "An originator of an artistic, intellectual, or political movement."},
	{Word: "prosaic", Meaning: "Lacking imagination or excitement; commonplace."},
	{Word: "reticent", Meaning: "Not revealing one's thoughts or feelings readily; reserved."},
	{Word: "taciturn", Meaning: "Habitually silent or uncommunicative."},
	{Word: "trenchant", Meaning: "Sharp, incisive, and keenly effective in expression."},
	{Word: "versatile", Meaning: "Able to adapt to many different functions or activities."},
	{Word: "voracious", Meaning: "Having a very eager appetite; devouring greedily."},
	{Word: "zealot", Meaning: "A person who is fanatically committed to a cause."},
}

// Words returns the full word list. Callers must not modify the result.
func Words() []models.WordItem {
	return wordList
}

// FindWord returns the word item for the given identifier.
func FindWord(word string) (models.WordItem, bool) {
	for _, w := range wordList {
		if w.Word == word {
			return w, true
		}
	}
	return models.WordItem{}, false
}
