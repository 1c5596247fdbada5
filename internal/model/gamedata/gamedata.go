package gamedata

// Race describes a playable ancestry in the creation wizard.
type Race struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	AttributeModifiers map[string]int `json:"attributeModifiers"`
	Abilities          []string       `json:"abilities"`
	Traits             []string       `json:"traits"`
}

// ClassAbility is one class feature unlocked at a level.
type ClassAbility struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
}

// Class describes a playable vocation.
type Class struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	PrimaryAttribute  string         `json:"primaryAttribute"`
	Abilities         []ClassAbility `json:"abilities"`
	StartingEquipment []string       `json:"startingEquipment"`
}

// Background describes a character's life before adventuring.
type Background struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Description              string   `json:"description"`
	SkillBonuses             []string `json:"skillBonuses"`
	Traits                   []string `json:"traits"`
	SuggestedCharacteristics []string `json:"suggestedCharacteristics"`
}

// Races returns the static race catalog served to the creation wizard.
func Races() []Race {
	return []Race{
		{
			ID:                 "human",
			Name:               "Human",
			Description:        "Versatile and ambitious, humans are the most common folk in the realms.",
			AttributeModifiers: map[string]int{"might": 1, "finesse": 1, "constitution": 1, "intellect": 1, "wisdom": 1, "presence": 1},
			Abilities:          []string{"Adaptability", "Versatile"},
			Traits:             []string{"Quick Learner", "Ambitious"},
		},
		{
			ID:                 "elf",
			Name:               "Elf",
			Description:        "Graceful and long-lived, elves are magical beings with a strong connection to nature.",
			AttributeModifiers: map[string]int{"finesse": 2, "intellect": 1, "wisdom": 1},
			Abilities:          []string{"Keen Senses", "Fey Ancestry"},
			Traits:             []string{"Trance", "Graceful"},
		},
		{
			ID:                 "dwarf",
			Name:               "Dwarf",
			Description:        "Sturdy and traditional, dwarves are known for their craftsmanship and resilience.",
			AttributeModifiers: map[string]int{"constitution": 2, "might": 1, "wisdom": 1},
			Abilities:          []string{"Dwarven Resilience", "Stonecunning"},
			Traits:             []string{"Darkvision", "Craftsmanship"},
		},
		{
			ID:                 "dragonborn",
			Name:               "Dragonborn",
			Description:        "Proud warriors with draconic heritage, capable of breathing elemental energy.",
			AttributeModifiers: map[string]int{"might": 2, "presence": 1},
			Abilities:          []string{"Breath Weapon", "Draconic Resistance"},
			Traits:             []string{"Imposing Presence", "Honor-bound"},
		},
		{
			ID:                 "halfling",
			Name:               "Halfling",
			Description:        "Small but brave folk, known for their luck and tendency to avoid danger.",
			AttributeModifiers: map[string]int{"finesse": 2, "wisdom": 1},
			Abilities:          []string{"Lucky", "Nimble"},
			Traits:             []string{"Brave", "Hospitable"},
		},
	}
}

// Classes returns the static class catalog.
func Classes() []Class {
	return []Class{
		{
			ID:               "warrior",
			Name:             "Warrior",
			Description:      "Masters of combat with exceptional skill at arms and armor.",
			PrimaryAttribute: "might",
			Abilities: []ClassAbility{
				{Name: "Combat Prowess", Description: "Gain advantage on attack rolls once per combat.", Level: 1},
				{Name: "Defensive Stance", Description: "Reduce incoming damage by 3 as a reaction.", Level: 2},
			},
			StartingEquipment: []string{"Longsword", "Shield", "Chainmail", "Explorer's Pack"},
		},
		{
			ID:               "mage",
			Name:             "Mage",
			Description:      "Scholars of the arcane who can bend reality with powerful spells.",
			PrimaryAttribute: "intellect",
			Abilities: []ClassAbility{
				{Name: "Arcane Recovery", Description: "Regain some spell slots during a short rest.", Level: 1},
				{Name: "Elemental Attunement", Description: "Choose one element to enhance related spells.", Level: 2},
			},
			StartingEquipment: []string{"Spellbook", "Staff", "Scholar's Pack", "Arcane Focus"},
		},
		{
			ID:               "rogue",
			Name:             "Rogue",
			Description:      "Skilled infiltrators and precise strikers who excel at deception and stealth.",
			PrimaryAttribute: "finesse",
			Abilities: []ClassAbility{
				{Name: "Sneak Attack", Description: "Deal extra damage when you have advantage on attack rolls.", Level: 1},
				{Name: "Uncanny Dodge", Description: "Halve damage from an attack as a reaction.", Level: 2},
			},
			StartingEquipment: []string{"Shortsword", "Dagger", "Leather Armor", "Thieves' Tools"},
		},
		{
			ID:               "cleric",
			Name:             "Cleric",
			Description:      "Divine spellcasters who channel the power of their deity to heal and protect.",
			PrimaryAttribute: "wisdom",
			Abilities: []ClassAbility{
				{Name: "Divine Channel", Description: "Call upon your deity's power to create magical effects.", Level: 1},
				{Name: "Healing Touch", Description: "Your healing spells are more effective.", Level: 2},
			},
			StartingEquipment: []string{"Mace", "Shield", "Holy Symbol", "Healer's Kit"},
		},
		{
			ID:               "ranger",
			Name:             "Ranger",
			Description:      "Wilderness experts who blend martial prowess with nature magic.",
			PrimaryAttribute: "finesse",
			Abilities: []ClassAbility{
				{Name: "Natural Explorer", Description: "You are particularly adept at traveling through one type of terrain.", Level: 1},
				{Name: "Hunter's Mark", Description: "Mark a creature to deal extra damage to it.", Level: 2},
			},
			StartingEquipment: []string{"Longbow", "Quiver of Arrows", "Two Shortswords", "Explorer's Pack"},
		},
	}
}

// Backgrounds returns the static background catalog.
func Backgrounds() []Background {
	return []Background{
		{
			ID:                       "noble",
			Name:                     "Noble",
			Description:              "You were born into a family of power and privilege.",
			SkillBonuses:             []string{"Etiquette", "History"},
			Traits:                   []string{"Influential Connections", "Refined Manners"},
			SuggestedCharacteristics: []string{"Arrogant", "Honorable", "Ambitious"},
		},
		{
			ID:                       "scholar",
			Name:                     "Scholar",
			Description:              "You spent years studying in libraries and universities.",
			SkillBonuses:             []string{"Arcana", "Investigation"},
			Traits:                   []string{"Comprehensive Education", "Research Skills"},
			SuggestedCharacteristics: []string{"Curious", "Analytical", "Detached"},
		},
		{
			ID:                       "soldier",
			Name:                     "Soldier",
			Description:              "You served in an army or militia, learning the art of war.",
			SkillBonuses:             []string{"Athletics", "Intimidation"},
			Traits:                   []string{"Military Rank", "Tactical Training"},
			SuggestedCharacteristics: []string{"Disciplined", "Loyal", "Hardened"},
		},
		{
			ID:                       "criminal",
			Name:                     "Criminal",
			Description:              "You lived a life outside the law, whether by choice or necessity.",
			SkillBonuses:             []string{"Deception", "Stealth"},
			Traits:                   []string{"Criminal Contact", "Streetwise"},
			SuggestedCharacteristics: []string{"Suspicious", "Resourceful", "Secretive"},
		},
		{
			ID:                       "outlander",
			Name:                     "Outlander",
			Description:              "You grew up in the wilds, far from civilization.",
			SkillBonuses:             []string{"Survival", "Nature"},
			Traits:                   []string{"Wanderer", "Hunter-Gatherer"},
			SuggestedCharacteristics: []string{"Independent", "Wary of Civilization", "Connected to Nature"},
		},
	}
}
