package catalog

// concepts is the full catalogue, keyed by id. Defined once here; nothing
// mutates it at runtime.
var concepts = map[string]Concept{
	// Technology
	"llm": {
		ID: "llm", Title: "What is an LLM?",
		Category: CategoryTechnology, Difficulty: DifficultyEasy, ReadTimeMinutes: 3,
		Description: "Like a super-smart robot friend that reads lots of books!",
		Icon:        "brain",
	},
	"wifi": {
		ID: "wifi", Title: "How does WiFi work?",
		Category: CategoryTechnology, Difficulty: DifficultyEasy, ReadTimeMinutes: 4,
		Description: "Invisible highways for your messages and videos!",
		Icon:        "wifi",
	},
	"whatsapp": {
		ID: "whatsapp", Title: "Sending a WhatsApp Message",
		Category: CategoryTechnology, Difficulty: DifficultyEasy, ReadTimeMinutes: 3,
		Description: "A magical journey your message takes around the world!",
		Icon:        "mobile",
	},
	"smartphone": {
		ID: "smartphone", Title: "How Smartphones Work",
		Category: CategoryTechnology, Difficulty: DifficultyMedium, ReadTimeMinutes: 5,
		Description: "A tiny computer in your pocket!",
		Icon:        "mobile",
	},
	"internet": {
		ID: "internet", Title: "What is the Internet?",
		Category: CategoryTechnology, Difficulty: DifficultyEasy, ReadTimeMinutes: 4,
		Description: "The biggest library in the world!",
		Icon:        "laptop",
	},

	// Finance
	"credit-card": {
		ID: "credit-card", Title: "How Credit Cards Work",
		Category: CategoryFinance, Difficulty: DifficultyEasy, ReadTimeMinutes: 4,
		Description: "Like borrowing a toy from a friend, but you pay them back later!",
		Icon:        "credit-card",
	},
	"interest": {
		ID: "interest", Title: "Why Banks Charge Interest",
		Category: CategoryFinance, Difficulty: DifficultyMedium, ReadTimeMinutes: 5,
		Description: "Payment for using someone else's piggy bank money!",
		Icon:        "money",
	},
	"inflation": {
		ID: "inflation", Title: "What is Inflation?",
		Category: CategoryFinance, Difficulty: DifficultyMedium, ReadTimeMinutes: 4,
		Description: "When your pocket money buys less candy than before!",
		Icon:        "coins",
	},
	"banking": {
		ID: "banking", Title: "How Banks Work",
		Category: CategoryFinance, Difficulty: DifficultyEasy, ReadTimeMinutes: 4,
		Description: "Special places that keep your money safe!",
		Icon:        "money",
	},
	"cryptocurrency": {
		ID: "cryptocurrency", Title: "What is Cryptocurrency?",
		Category: CategoryFinance, Difficulty: DifficultyHard, ReadTimeMinutes: 6,
		Description: "Digital money that lives in computers!",
		Icon:        "coins",
	},

	// Science
	"immune-system": {
		ID: "immune-system", Title: "How Our Body Fights Germs",
		Category: CategoryScience, Difficulty: DifficultyEasy, ReadTimeMinutes: 5,
		Description: "Tiny superhero soldiers protecting your body castle!",
		Icon:        "heart",
	},
	"photosynthesis": {
		ID: "photosynthesis", Title: "How Plants Make Food",
		Category: CategoryScience, Difficulty: DifficultyEasy, ReadTimeMinutes: 4,
		Description: "Plants are like tiny chefs cooking with sunlight!",
		Icon:        "seedling",
	},
	"sleep": {
		ID: "sleep", Title: "Why We Need Sleep",
		Category: CategoryScience, Difficulty: DifficultyEasy, ReadTimeMinutes: 3,
		Description: "Your brain's special cleaning and repair time!",
		Icon:        "smile",
	},
	"dna": {
		ID: "dna", Title: "What is DNA?",
		Category: CategoryScience, Difficulty: DifficultyMedium, ReadTimeMinutes: 5,
		Description: "The instruction book inside every living thing!",
		Icon:        "dna",
	},
	"gravity": {
		ID: "gravity", Title: "How Gravity Works",
		Category: CategoryScience, Difficulty: DifficultyEasy, ReadTimeMinutes: 4,
		Description: "The invisible force that keeps us on Earth!",
		Icon:        "graduation-cap",
	},

	// Psychology
	"confirmation-bias": {
		ID: "confirmation-bias", Title: "Confirmation Bias",
		Category: CategoryPsychology, Difficulty: DifficultyMedium, ReadTimeMinutes: 4,
		Description: "Why we only hear what we want to hear!",
		Icon:        "brain",
	},
	"exam-nerves": {
		ID: "exam-nerves", Title: "Why We Feel Nervous",
		Category: CategoryPsychology, Difficulty: DifficultyEasy, ReadTimeMinutes: 3,
		Description: "Your body's alarm system trying to help you!",
		Icon:        "heart",
	},
	"procrastination": {
		ID: "procrastination", Title: "Why People Procrastinate",
		Category: CategoryPsychology, Difficulty: DifficultyMedium, ReadTimeMinutes: 5,
		Description: "When your brain wants to play instead of work!",
		Icon:        "puzzle",
	},
	"memory": {
		ID: "memory", Title: "How Memory Works",
		Category: CategoryPsychology, Difficulty: DifficultyMedium, ReadTimeMinutes: 4,
		Description: "Your brain's amazing storage system!",
		Icon:        "brain",
	},
	"dreams": {
		ID: "dreams", Title: "Why Do We Dream?",
		Category: CategoryPsychology, Difficulty: DifficultyEasy, ReadTimeMinutes: 4,
		Description: "Your brain's movie theater while you sleep!",
		Icon:        "smile",
	},
}

// categoryEmojis maps each category to its display glyph.
var categoryEmojis = map[Category]string{
	CategoryTechnology: "💻",
	CategoryFinance:    "💰",
	CategoryScience:    "🧬",
	CategoryPsychology: "🧠",
}

// categoryColors maps each category to an opaque theme token the
// presentation layer resolves.
var categoryColors = map[Category]string{
	CategoryTechnology: "purple",
	CategoryFinance:    "orange",
	CategoryScience:    "green",
	CategoryPsychology: "pink",
}

// DifficultyColor returns the theme token for a difficulty badge.
func DifficultyColor(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "green"
	case DifficultyMedium:
		return "yellow"
	case DifficultyHard:
		return "orange"
	}
	return "green"
}
