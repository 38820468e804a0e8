package catalog

import "benkhawiya-backend/internal/models"

// Static practice content, grouped by proficiency level.
var healingPractices = map[string][]models.PracticeEntry{
	models.LevelBeginner: {
		{
			ID:       "reconnection_breathing",
			Name:     "Reconnection Breathing",
			Duration: 5,
			Steps: []string{
				"Find a comfortable seated position",
				"Close your eyes and take 3 deep breaths",
				"Breathe in: I honor my ancestors",
				"Breathe out: I release fragmentation",
				"Breathe in: I am whole",
				"Breathe out: I am connected",
				"Continue for 5 minutes, maintaining awareness",
			},
			Focus:    "Spiritual continuity repair",
			Benefits: []string{"Grounding", "Ancestral connection", "Present moment awareness"},
		},
		{
			ID:       "ancestral_grounding",
			Name:     "Ancestral Grounding",
			Duration: 7,
			Steps: []string{
				"Stand or sit with feet firmly on the ground",
				"Feel your connection to the earth beneath you",
				"Imagine roots extending from your feet to ancestral lands",
				"Draw strength and wisdom from those who came before",
				"Feel the continuity of life through your being",
				"Express gratitude for this sacred connection",
			},
			Focus:    "Cognitive discontinuity healing",
			Benefits: []string{"Stability", "Cultural continuity", "Personal identity strength"},
		},
	},
	models.LevelIntermediate: {
		{
			ID:       "identity_integration",
			Name:     "Identity Integration Practice",
			Duration: 10,
			Steps: []string{
				"Sit comfortably with journal and pen nearby",
				"Acknowledge the different fragments of your identity",
				"Welcome each part with compassion and understanding",
				"Weave them into a cohesive whole through visualization",
				"Honor the beauty and strength of your complete self",
				"Write down insights, commitments, and affirmations",
			},
			Focus:    "Identity fragmentation repair",
			Benefits: []string{"Self-acceptance", "Identity coherence", "Personal empowerment"},
		},
	},
	models.LevelAdvanced: {
		{
			ID:       "intergenerational_healing",
			Name:     "Intergenerational Healing Meditation",
			Duration: 15,
			Steps: []string{
				"Create a sacred space with intention",
				"Connect with your ancestral lineage through breath",
				"Visualize healing light passing through generations",
				"Release inherited trauma with compassion",
				"Embrace inherited strengths and wisdom",
				"Set intentions for future generations",
			},
			Focus:    "Transgenerational healing work",
			Benefits: []string{"Lineage healing", "Trauma release", "Generational blessing"},
		},
	},
}
