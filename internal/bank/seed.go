package bank

// Seed returns the built-in bank tables. These cover the standard
// teaching contexts so the generator works without the source workbook;
// a loaded workbook replaces them entirely.
func Seed() Tables {
	return Tables{
		Metadata:      seedMetadata(),
		Compatibility: seedCompatibility(),
		Templates:     seedTemplates(),
		Stems:         seedStems(),
		Durations:     seedDurations(),
		Presentations: seedPresentations(),
		Comparisons:   seedComparisons(),
	}
}

func seedMetadata() []ContextDescriptor {
	return []ContextDescriptor{
		{
			ID: "server_tips", Name: "Server Tips",
			ValueMin: 20, ValueMax: 150, TypicalMean: 85,
			Unit: "$", UnitPosition: UnitPrefix, DisplayAs: DisplayCurrency,
			Category: "money", Description: "Tips earned per shift by a restaurant server",
		},
		{
			ID: "test_scores", Name: "Test Scores",
			ValueMin: 50, ValueMax: 100, TypicalMean: 75,
			Unit: "%", UnitPosition: UnitSuffix, DisplayAs: DisplayPercent,
			Category: "school", Description: "Percentage scores on class tests",
		},
		{
			ID: "heart_rate", Name: "Resting Heart Rate",
			ValueMin: 55, ValueMax: 110, TypicalMean: 72,
			Unit: "bpm", UnitPosition: UnitSuffix, DisplayAs: DisplayGeneric,
			Category: "health", Description: "Resting heart rate readings in beats per minute",
		},
		{
			ID: "daily_temperature", Name: "Daily High Temperature",
			ValueMin: 12, ValueMax: 34, TypicalMean: 24,
			Unit: "°C", UnitPosition: UnitSuffix, DisplayAs: DisplayTemperature,
			Category: "weather", Description: "Daily high temperatures during summer",
		},
		{
			ID: "concert_attendance", Name: "Concert Attendance",
			ValueMin: 150, ValueMax: 1200, TypicalMean: 600,
			Unit: "people", UnitPosition: UnitSuffix, DisplayAs: DisplayCount,
			Category: "events", Description: "Nightly attendance counts at a venue",
		},
		{
			ID: "property_values", Name: "Property Values",
			ValueMin: 200000, ValueMax: 800000, TypicalMean: 420000,
			Unit: "$", UnitPosition: UnitPrefix, DisplayAs: DisplayThousands,
			Category: "money", Description: "Listed home prices, shown in thousands of dollars",
		},
		{
			ID: "commute_distance", Name: "Commute Distance",
			ValueMin: 2, ValueMax: 60, TypicalMean: 18,
			Unit: "km", UnitPosition: UnitSuffix, DisplayAs: DisplayLength,
			Category: "travel", Description: "One-way commute distances",
		},
		{
			ID: "package_mass", Name: "Package Mass",
			ValueMin: 0.5, ValueMax: 20, TypicalMean: 5,
			Unit: "kg", UnitPosition: UnitSuffix, DisplayAs: DisplayMass,
			Category: "shipping", Description: "Masses of packages shipped per day",
		},
	}
}

func seedCompatibility() []CompatibilityRecord {
	return []CompatibilityRecord{
		{
			ContextID: "server_tips",
			Calculate: true, MissingValue: true, MissingCount: true, Compare: true,
			EffectAdd: true, EffectRemove: true, WordProblem: true, Estimation: true,
		},
		{
			ContextID: "test_scores",
			Calculate: true, MissingValue: true, MissingCount: true, Compare: true,
			EffectAdd: true, EffectRemove: true, WordProblem: true, Estimation: false,
			Notes: "estimating a test score has no pedagogical value",
		},
		{
			ContextID: "heart_rate",
			Calculate: true, MissingValue: true, MissingCount: false, Compare: true,
			EffectAdd: false, EffectRemove: true, WordProblem: true, Estimation: false,
			Notes: "a heart rate cannot be added on demand",
		},
		{
			ContextID: "daily_temperature",
			Calculate: true, MissingValue: false, MissingCount: false, Compare: true,
			EffectAdd: false, EffectRemove: true, WordProblem: true, Estimation: true,
			Notes: "nobody drives the weather toward a target mean",
		},
		{
			ContextID: "concert_attendance",
			Calculate: true, MissingValue: false, MissingCount: true, Compare: true,
			EffectAdd: false, EffectRemove: false, WordProblem: true, Estimation: true,
			Notes: "attendance cannot be driven toward a target value",
		},
		{
			ContextID: "property_values",
			Calculate: true, MissingValue: false, MissingCount: false, Compare: true,
			EffectAdd: true, EffectRemove: true, WordProblem: true, Estimation: true,
			Notes: "home prices are observed, not chosen",
		},
		{
			ContextID: "commute_distance",
			Calculate: true, MissingValue: true, MissingCount: true, Compare: true,
			EffectAdd: true, EffectRemove: true, WordProblem: true, Estimation: true,
		},
		{
			ContextID: "package_mass",
			Calculate: true, MissingValue: true, MissingCount: true, Compare: true,
			EffectAdd: true, EffectRemove: true, WordProblem: false, Estimation: false,
		},
	}
}

func seedTemplates() []NarrativeTemplate {
	return []NarrativeTemplate{
		// server_tips
		{
			ContextID: "server_tips", Level: LevelMinimal, Type: TemplateComplete,
			Template: "{name} works as a server and received the following tips over {duration}: {data} {question}",
			UsesName: true,
		},
		{
			ContextID: "server_tips", Level: LevelMinimal, Type: TemplateComplete,
			Template: "A server recorded these tips over {duration}: {data} {question}",
		},
		{
			ContextID: "server_tips", Level: LevelStandard, Type: TemplateIntro,
			Template: "{name} works as a server at a restaurant in {city} and tracked tips over {duration}.",
			UsesName: true, UsesLocation: true,
		},
		{
			ContextID: "server_tips", Level: LevelStandard, Type: TemplateMotivation,
			Template: "{pronoun_possessive} goal is to set aside part of each shift's tips for savings.",
			UsesName: true,
		},
		{
			ContextID: "server_tips", Level: LevelRich, Type: TemplateIntro,
			Template: "{name} has worked as a server for two years at a busy restaurant in {city}.",
			UsesName: true, UsesLocation: true,
		},
		{
			ContextID: "server_tips", Level: LevelRich, Type: TemplateBackground,
			Template: "Last month {pronoun} averaged {previous_amount} in tips per shift and wants to do better this month.",
			UsesName: true,
		},
		{
			ContextID: "server_tips", Level: LevelRich, Type: TemplateMotivation,
			Template: "{pronoun} is saving for a trip and wants to know whether the recent shifts are on track.",
			UsesName: true,
		},

		// test_scores
		{
			ContextID: "test_scores", Level: LevelMinimal, Type: TemplateComplete,
			Template: "{name} recorded scores for {duration} in {course}: {data} {question}",
			UsesName: true, UsesCourse: true,
		},
		{
			ContextID: "test_scores", Level: LevelStandard, Type: TemplateIntro,
			Template: "{name} teaches {course} and recorded results over {duration}.",
			UsesName: true, UsesCourse: true,
		},
		{
			ContextID: "test_scores", Level: LevelStandard, Type: TemplateMotivation,
			Template: "The results decide which students need extra review before the final exam.",
		},
		{
			ContextID: "test_scores", Level: LevelRich, Type: TemplateIntro,
			Template: "{name} teaches {course} at a school in {city}.",
			UsesName: true, UsesCourse: true, UsesLocation: true,
		},
		{
			ContextID: "test_scores", Level: LevelRich, Type: TemplateBackground,
			Template: "On the previous unit test the class average was {previous_amount}.",
		},
		{
			ContextID: "test_scores", Level: LevelRich, Type: TemplateMotivation,
			Template: "{pronoun} wants to report the class standing at the next staff meeting.",
			UsesName: true,
		},

		// heart_rate
		{
			ContextID: "heart_rate", Level: LevelMinimal, Type: TemplateComplete,
			Template: "{name} measured a resting heart rate each morning for {duration}: {data} {question}",
			UsesName: true,
		},
		{
			ContextID: "heart_rate", Level: LevelStandard, Type: TemplateIntro,
			Template: "{name} started a new training plan and measured a resting heart rate every morning for {duration}.",
			UsesName: true,
		},
		{
			ContextID: "heart_rate", Level: LevelStandard, Type: TemplateMotivation,
			Template: "A falling resting heart rate is a sign the training is working.",
		},
		{
			ContextID: "heart_rate", Level: LevelRich, Type: TemplateIntro,
			Template: "{name} is training for a half marathon in {city} and tracks fitness with a watch.",
			UsesName: true, UsesLocation: true,
		},
		{
			ContextID: "heart_rate", Level: LevelRich, Type: TemplateBackground,
			Template: "Before starting the plan, {pronoun_possessive} resting heart rate averaged {previous_amount}.",
			UsesName: true,
		},
		{
			ContextID: "heart_rate", Level: LevelRich, Type: TemplateMotivation,
			Template: "The coach asked for a summary of the readings at the next check-in.",
		},

		// daily_temperature
		{
			ContextID: "daily_temperature", Level: LevelMinimal, Type: TemplateComplete,
			Template: "Daily high temperatures in {city} over {duration} were: {data} {question}",
			UsesLocation: true,
		},
		{
			ContextID: "daily_temperature", Level: LevelStandard, Type: TemplateIntro,
			Template: "A weather station in {city} recorded the daily high temperature for {duration}.",
			UsesLocation: true,
		},
		{
			ContextID: "daily_temperature", Level: LevelRich, Type: TemplateIntro,
			Template: "{name} writes the weather column for a newspaper in {city}.",
			UsesName: true, UsesLocation: true,
		},
		{
			ContextID: "daily_temperature", Level: LevelRich, Type: TemplateMotivation,
			Template: "This week's column compares the recent stretch of weather with the seasonal normal.",
		},

		// concert_attendance
		{
			ContextID: "concert_attendance", Level: LevelMinimal, Type: TemplateComplete,
			Template: "Nightly attendance at {venue} over {duration} was: {data} {question}",
			UsesVenue: true,
		},
		{
			ContextID: "concert_attendance", Level: LevelStandard, Type: TemplateIntro,
			Template: "{name} manages {venue} in {city} and tracked attendance over {duration}.",
			UsesName: true, UsesVenue: true, UsesLocation: true,
		},
		{
			ContextID: "concert_attendance", Level: LevelStandard, Type: TemplateMotivation,
			Template: "The booking agency wants attendance figures before confirming next season's acts.",
		},
		{
			ContextID: "concert_attendance", Level: LevelRich, Type: TemplateIntro,
			Template: "{name} has managed {venue} in {city} for five seasons.",
			UsesName: true, UsesVenue: true, UsesLocation: true,
		},
		{
			ContextID: "concert_attendance", Level: LevelRich, Type: TemplateMotivation,
			Template: "Ticket revenue depends directly on typical attendance, so the numbers matter for next year's budget.",
		},

		// property_values
		{
			ContextID: "property_values", Level: LevelMinimal, Type: TemplateComplete,
			Template: "A real estate agent in {city} listed homes at these prices: {data} {question}",
			UsesLocation: true,
		},
		{
			ContextID: "property_values", Level: LevelStandard, Type: TemplateIntro,
			Template: "{name} is a real estate agent in {city} who compiled recent sale prices.",
			UsesName: true, UsesLocation: true,
		},
		{
			ContextID: "property_values", Level: LevelRich, Type: TemplateIntro,
			Template: "{name} prepares a quarterly market report for buyers in {city}.",
			UsesName: true, UsesLocation: true,
		},
		{
			ContextID: "property_values", Level: LevelRich, Type: TemplateMotivation,
			Template: "Clients ask what a typical home in the area actually costs.",
		},

		// commute_distance
		{
			ContextID: "commute_distance", Level: LevelMinimal, Type: TemplateComplete,
			Template: "{name} recorded one-way commute distances for {duration}: {data} {question}",
			UsesName: true,
		},
		{
			ContextID: "commute_distance", Level: LevelStandard, Type: TemplateIntro,
			Template: "{name} started {job} this summer and logged the commute for {duration}.",
			UsesName: true, UsesJob: true,
		},
		{
			ContextID: "commute_distance", Level: LevelRich, Type: TemplateIntro,
			Template: "{name} took a new job in {city} and is deciding whether to keep driving or switch to transit.",
			UsesName: true, UsesLocation: true,
		},
		{
			ContextID: "commute_distance", Level: LevelRich, Type: TemplateMotivation,
			Template: "The decision depends on how far a typical trip actually is.",
		},

		// package_mass
		{
			ContextID: "package_mass", Level: LevelMinimal, Type: TemplateComplete,
			Template: "A courier weighed packages over {duration}: {data} {question}",
		},
		{
			ContextID: "package_mass", Level: LevelStandard, Type: TemplateIntro,
			Template: "{name} runs a shipping desk and weighed each outgoing package over {duration}.",
			UsesName: true,
		},
		{
			ContextID: "package_mass", Level: LevelRich, Type: TemplateIntro,
			Template: "{name} manages shipping for a mail-order company in {city}.",
			UsesName: true, UsesLocation: true,
		},
		{
			ContextID: "package_mass", Level: LevelRich, Type: TemplateMotivation,
			Template: "The courier contract charges by average package mass, so the figure affects next year's rates.",
		},
	}
}

func seedStems() []SentenceStem {
	stems := []SentenceStem{
		// Context-specific question stems.
		{ContextID: "server_tips", Type: StemQuestion, Variation: "calculate",
			Text: "Calculate the mean tip per shift."},
		{ContextID: "server_tips", Type: StemQuestion, Variation: "missing_value",
			Text: "What tip is needed on the next shift to reach the target mean?"},
		{ContextID: "server_tips", Type: StemQuestion, Variation: StemAnyVariation,
			Text: "Answer using the tips shown."},
		{ContextID: "test_scores", Type: StemQuestion, Variation: "calculate",
			Text: "Calculate the mean score."},
		{ContextID: "test_scores", Type: StemQuestion, Variation: "compare",
			Text: "Compare the mean scores for the two tests."},
		{ContextID: "heart_rate", Type: StemQuestion, Variation: "calculate",
			Text: "Calculate the mean resting heart rate."},
		{ContextID: "concert_attendance", Type: StemQuestion, Variation: "calculate",
			Text: "Calculate the mean nightly attendance."},
		{ContextID: "daily_temperature", Type: StemQuestion, Variation: "calculate",
			Text: "Calculate the mean daily high temperature."},
		{ContextID: "property_values", Type: StemQuestion, Variation: "calculate",
			Text: "Calculate the mean listed price."},
		{ContextID: "commute_distance", Type: StemQuestion, Variation: "calculate",
			Text: "Calculate the mean commute distance."},
		{ContextID: "package_mass", Type: StemQuestion, Variation: "calculate",
			Text: "Calculate the mean package mass."},
	}

	// Every context gets a generic data-intro phrasing pool.
	dataIntros := []string{
		"The values recorded were:",
		"The recorded values were:",
		"The results were:",
	}
	for _, ctx := range []string{
		"server_tips", "test_scores", "heart_rate", "daily_temperature",
		"concert_attendance", "property_values", "commute_distance", "package_mass",
	} {
		for _, text := range dataIntros {
			stems = append(stems, SentenceStem{
				ContextID: ctx, Type: StemDataIntro, Variation: StemAnyVariation, Text: text,
			})
		}
	}
	return stems
}

func seedDurations() []DurationLabel {
	return []DurationLabel{
		{ContextID: "server_tips", Singular: "shift", Plural: "shifts"},
		{ContextID: "test_scores", Singular: "test", Plural: "tests"},
		{ContextID: "heart_rate", Singular: "morning", Plural: "mornings"},
		{ContextID: "daily_temperature", Singular: "day", Plural: "days"},
		{ContextID: "concert_attendance", Singular: "night", Plural: "nights"},
		{ContextID: "commute_distance", Singular: "trip", Plural: "trips"},
		{ContextID: "package_mass", Singular: "day", Plural: "days"},
		// property_values intentionally has no duration labels; callers
		// fall back to the "{n} values" form.
	}
}

func seedPresentations() []DataPresentation {
	return []DataPresentation{
		{ContextID: "server_tips", Format: PresentationList, Label: "Shift"},
		{ContextID: "server_tips", Format: PresentationInline},
		{ContextID: "test_scores", Format: PresentationList, Label: "Test"},
		{ContextID: "heart_rate", Format: PresentationList, Label: "Day"},
		{ContextID: "daily_temperature", Format: PresentationList, Label: "Day"},
		{ContextID: "concert_attendance", Format: PresentationList, Label: "Night"},
		{ContextID: "property_values", Format: PresentationInline},
		{ContextID: "commute_distance", Format: PresentationList, Label: "Trip"},
		{ContextID: "package_mass", Format: PresentationList, Label: "Day"},
	}
}

func seedComparisons() []ComparisonPhrase {
	return []ComparisonPhrase{
		{ContextID: "server_tips", Phrase: "Did the mean tip increase, decrease, or stay the same?"},
		{ContextID: "test_scores", Phrase: "Did the class mean increase, decrease, or stay the same?"},
		{ContextID: "heart_rate", Phrase: "Did the mean resting heart rate increase, decrease, or stay the same?"},
		{ContextID: "daily_temperature", Phrase: "Did the mean high temperature increase, decrease, or stay the same?"},
		{ContextID: "concert_attendance", Phrase: "Did the mean attendance increase, decrease, or stay the same?"},
		{ContextID: "property_values", Phrase: "Did the mean price increase, decrease, or stay the same?"},
		{ContextID: "commute_distance", Phrase: "Did the mean distance increase, decrease, or stay the same?"},
		{ContextID: "package_mass", Phrase: "Did the mean mass increase, decrease, or stay the same?"},
	}
}
