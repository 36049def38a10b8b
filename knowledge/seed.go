package knowledge

// SeedItems returns the built-in knowledge table: psychological support
// topics followed by astronomy/space-operations topics. The order matters,
// since search ties are broken by insertion order.
func SeedItems() []ContextItem {
	return []ContextItem{
		{
			Category:    "psychological",
			Subcategory: "stress_management",
			Title:       "Stress Recognition in Space",
			Content:     "Astronauts experience unique stressors including isolation, confinement, and mission pressure. Signs include increased heart rate, sleep disturbances, and changes in communication patterns. Early recognition is crucial for mission success.",
			Keywords:    []string{"stress", "pressure", "anxiety", "overwhelmed", "tension", "worry", "down", "sad", "depressed", "low", "mood", "angry", "anger", "mad", "furious", "irritated", "frustrated"},
			Priority:    5,
		},
		{
			Category:    "psychological",
			Subcategory: "sleep_health",
			Title:       "Sleep Disruption in Space",
			Content:     "Space environment disrupts circadian rhythms due to 16 sunrises/sunsets per day. Sleep quality affects cognitive performance, mood, and decision-making. Maintaining regular sleep schedules is critical for astronaut well-being.",
			Keywords:    []string{"sleep", "insomnia", "tired", "fatigue", "exhausted", "rest", "circadian", "can't sleep", "sleepless", "awake"},
			Priority:    4,
		},
		{
			Category:    "psychological",
			Subcategory: "isolation_effects",
			Title:       "Isolation and Confinement Effects",
			Content:     "Long-duration space missions create psychological challenges including social isolation, sensory deprivation, and limited personal space. These can lead to mood changes, irritability, and decreased motivation.",
			Keywords:    []string{"isolation", "lonely", "alone", "confined", "trapped", "social", "connection"},
			Priority:    4,
		},
		{
			Category:    "psychological",
			Subcategory: "coping_strategies",
			Title:       "Space-Adapted Coping Strategies",
			Content:     "Effective coping strategies for astronauts include mindfulness exercises, virtual reality relaxation, music therapy, exercise routines, and maintaining communication with Earth. Personal hobbies and creative activities help maintain mental health.",
			Keywords:    []string{"coping", "relaxation", "mindfulness", "exercise", "hobbies", "therapy", "meditation"},
			Priority:    3,
		},
		{
			Category:    "psychological",
			Subcategory: "team_dynamics",
			Title:       "Crew Team Dynamics",
			Content:     "Small crew environments require excellent communication, conflict resolution, and mutual support. Team cohesion directly impacts mission success and individual psychological well-being.",
			Keywords:    []string{"team", "crew", "communication", "conflict", "support", "cooperation", "relationships"},
			Priority:    3,
		},
		{
			Category:    "astronomy",
			Subcategory: "nutrition_health",
			Title:       "Nutrition and Health in Space",
			Content:     "Space nutrition is critical for astronaut health and performance. Food must be specially prepared for microgravity, and proper nutrition helps maintain physical and mental well-being during long missions.",
			Keywords:    []string{"hungry", "food", "nutrition", "eating", "meal", "hunger", "diet", "nutritional"},
			Priority:    3,
		},
		{
			Category:    "astronomy",
			Subcategory: "space_environment",
			Title:       "Space Environment Challenges",
			Content:     "Space presents unique challenges: microgravity affects body systems, radiation exposure, extreme temperatures, and the psychological impact of seeing Earth from space (overview effect).",
			Keywords:    []string{"space", "microgravity", "radiation", "temperature", "environment", "earth", "overview"},
			Priority:    4,
		},
		{
			Category:    "astronomy",
			Subcategory: "mission_phases",
			Title:       "Space Mission Phases",
			Content:     "Space missions have distinct phases: pre-launch training, launch, orbital operations, and return. Each phase presents different psychological challenges and requires different support strategies.",
			Keywords:    []string{"mission", "launch", "orbit", "return", "training", "phases", "operations"},
			Priority:    3,
		},
		{
			Category:    "astronomy",
			Subcategory: "communication_delays",
			Title:       "Communication Delays in Deep Space",
			Content:     "Deep space missions face significant communication delays with Earth (up to 20+ minutes each way). This requires astronauts to be more autonomous and self-reliant for psychological support.",
			Keywords:    []string{"communication", "delay", "earth", "autonomous", "deep space", "contact"},
			Priority:    3,
		},
		{
			Category:    "astronomy",
			Subcategory: "life_support",
			Title:       "Life Support Systems",
			Content:     "Spacecraft life support systems provide oxygen, water, and waste management. Understanding these systems helps astronauts feel more secure and in control of their environment.",
			Keywords:    []string{"life support", "oxygen", "water", "systems", "environmental", "control"},
			Priority:    2,
		},
		{
			Category:    "astronomy",
			Subcategory: "emergency_procedures",
			Title:       "Emergency Response in Space",
			Content:     "Space missions require extensive emergency training. Astronauts must remain calm and follow procedures during emergencies, which can be psychologically challenging.",
			Keywords:    []string{"emergency", "procedures", "safety", "training", "crisis", "response"},
			Priority:    4,
		},
	}
}
