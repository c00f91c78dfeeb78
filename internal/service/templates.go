package service

// Статические шаблоны локальной генерации. Загружаются один раз при старте
// процесса и не изменяются.

// characterTemplate описывает шаблон персонажа для одного жанра.
type characterTemplate struct {
	Name        string
	Default     string // тема-заглушка, если извлеченных тем не хватило
	Description string
}

// genreCharacterTemplates - шаблоны протагониста по жанрам.
// Для жанров вне этого набора используется defaultProtagonist.
var genreCharacterTemplates = map[string]characterTemplate{
	"fantasy": {
		Name:        "Aria the Scholar",
		Default:     "Knowledge",
		Description: "A brilliant young mage who specializes in ancient texts and forgotten spells.",
	},
	"sci-fi": {
		Name:        "Dr. Alex Nova",
		Default:     "Discovery",
		Description: "A quantum physicist whose curiosity leads to groundbreaking discoveries.",
	},
	"mystery": {
		Name:        "Detective Riley Kane",
		Default:     "Investigation",
		Description: "A sharp-minded investigator with an eye for hidden patterns.",
	},
}

// defaultProtagonist - шаблон протагониста для неизвестных жанров.
var defaultProtagonist = characterTemplate{
	Name:        "Morgan",
	Default:     "Learning",
	Description: "A determined individual on a journey of discovery.",
}

// genreMentorNames - имена наставников по жанрам, по умолчанию "Dr. Williams".
var genreMentorNames = map[string]string{
	"fantasy": "Professor Thornwick",
	"sci-fi":  "Captain Chen",
}

const defaultMentorName = "Dr. Williams"

// genreAntagonistNames - имена антагонистов по жанрам, по умолчанию "The Unknown".
var genreAntagonistNames = map[string]string{
	"fantasy": "Shadow of Doubt",
	"sci-fi":  "The Algorithm",
}

const defaultAntagonistName = "The Unknown"

// narrativeTemplate - три массива фраз, из которых локальная стратегия
// случайно выбирает по одной: завязка, сюжетный элемент, конфликт.
type narrativeTemplate struct {
	Openings     []string
	PlotElements []string
	Conflicts    []string
}

// genreNarrativeTemplates - наборы фраз по жанрам. Для жанров вне набора
// используется набор "fantasy".
var genreNarrativeTemplates = map[string]narrativeTemplate{
	"fantasy": {
		Openings: []string{
			"In the mystical realm of",
			"Long ago in a forgotten kingdom where",
			"Deep within the enchanted forest of",
		},
		PlotElements: []string{
			"a young apprentice discovers",
			"an ancient prophecy reveals",
			"a magical artifact holds the key to",
		},
		Conflicts: []string{
			"dark forces threaten to",
			"an evil sorcerer seeks to",
			"the balance between worlds",
		},
	},
	"sci-fi": {
		Openings: []string{
			"In the year 2287, aboard the starship",
			"On a distant planet where",
			"In a future where technology",
		},
		PlotElements: []string{
			"a groundbreaking discovery",
			"an alien signal contains",
			"a quantum experiment reveals",
		},
		Conflicts: []string{
			"threatens the fabric of reality",
			"could destroy civilization",
			"challenges everything we know",
		},
	},
	"mystery": {
		Openings: []string{
			"Detective Sarah Chen arrived at",
			"The fog-shrouded campus of",
			"In the quiet halls of",
		},
		PlotElements: []string{
			"strange patterns emerged",
			"hidden connections revealed",
			"a series of clues pointed to",
		},
		Conflicts: []string{
			"a conspiracy that went deeper",
			"secrets that someone would kill to protect",
			"a truth that changed everything",
		},
	},
}

// narrativeTemplateFor возвращает набор фраз для жанра,
// по умолчанию - набор "fantasy".
func narrativeTemplateFor(genreID string) narrativeTemplate {
	if tpl, ok := genreNarrativeTemplates[genreID]; ok {
		return tpl
	}
	return genreNarrativeTemplates["fantasy"]
}
