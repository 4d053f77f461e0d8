package quiz

// jurassicQuestions is the canonical seed set: nine questions, three per
// difficulty, in the order clients have come to rely on.
var jurassicQuestions = []Question{
	{
		Question:    "Ano ang panahon kung kailan namuhay ang mga dinosaur?",
		Options:     []string{"Jurassic", "Cenozoic", "Precambrian", "Holocene"},
		AnswerIndex: 0,
		Difficulty:  DifficultyEasy,
		Theme:       ThemeJurassic,
	},
	{
		Question:    "Alin sa mga ito ang isang carnivorous dinosaur?",
		Options:     []string{"Triceratops", "Brachiosaurus", "Stegosaurus", "Tyrannosaurus Rex"},
		AnswerIndex: 3,
		Difficulty:  DifficultyEasy,
		Theme:       ThemeJurassic,
	},
	{
		Question:    "Ano ang tawag sa taong nag-aaral ng fossils?",
		Options:     []string{"Archaeologist", "Paleontologist", "Geologist", "Biologist"},
		AnswerIndex: 1,
		Difficulty:  DifficultyEasy,
		Theme:       ThemeJurassic,
	},
	{
		Question:    "Anong uri ng dinosaur si Velociraptor?",
		Options:     []string{"Herbivore", "Carnivore", "Omnivore", "Insectivore"},
		AnswerIndex: 1,
		Difficulty:  DifficultyMedium,
		Theme:       ThemeJurassic,
	},
	{
		Question:    "Saan natagpuan ang unang fossil ng Archaeopteryx?",
		Options:     []string{"China", "Germany", "USA", "Argentina"},
		AnswerIndex: 1,
		Difficulty:  DifficultyMedium,
		Theme:       ThemeJurassic,
	},
	{
		Question:    "Anong katangian ang tumutulong sa mga sauropods na kumain ng matataas na halaman?",
		Options:     []string{"Mahahabang leeg", "Matutulis na ngipin", "Malalaking pakpak", "Matitibay na sungay"},
		AnswerIndex: 0,
		Difficulty:  DifficultyMedium,
		Theme:       ThemeJurassic,
	},
	{
		Question:    "Alin ang mas nauna: Triassic, Jurassic, o Cretaceous?",
		Options:     []string{"Jurassic", "Cretaceous", "Triassic", "Pare-pareho"},
		AnswerIndex: 2,
		Difficulty:  DifficultyHard,
		Theme:       ThemeJurassic,
	},
	{
		Question:    "Ano ang pangunahing teorya sa pagkalipol ng mga dinosaur?",
		Options:     []string{"Pagbaha", "Pagputok ng bulkan", "Pagbangga ng asteroid", "Matinding lamig"},
		AnswerIndex: 2,
		Difficulty:  DifficultyHard,
		Theme:       ThemeJurassic,
	},
	{
		Question:    "Anong fossil resin ang madalas nakabihag ng mga insekto mula pa noong sinaunang panahon?",
		Options:     []string{"Tar", "Amber", "Coal", "Quartz"},
		AnswerIndex: 1,
		Difficulty:  DifficultyHard,
		Theme:       ThemeJurassic,
	},
}

// SeedQuestions returns a copy of the canonical question set.
func SeedQuestions() []Question {
	out := make([]Question, len(jurassicQuestions))
	copy(out, jurassicQuestions)
	return out
}
